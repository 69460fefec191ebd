/*
mapper0 (NROM)
没有bank切换，PRG 16KB或32KB，16KB时在$8000和$C000各出现一次
*/

package nes

/**
CPU地址按8KB分块:

0: [$0000, $2000) cpu 内存
1: [$2000, $4000) PPU 寄存器
2: [$4000, $6000) pAPU寄存器以及扩展区域
3: [$6000, $8000) 存档用SRAM区，测试ROM在这里输出结果
剩下的全是 程序代码区 PRG-ROM [$8000, $0x10000)

$FFFA-FFFB = NMI
$FFFC-FFFD = RESET
$FFFE-FFFF = IRQ/BRK
*/

const (
	prgStart  = 0x8000
	prgWindow = 0x8000 // 32KB
	chrWindow = 0x2000 // 8KB
)

type Mapper0 struct {
	card *Cartridge
}

func NewMapper0(card *Cartridge) *Mapper0 {
	return &Mapper0{card}
}

// Install mirrors PRG every len(PRG) bytes across $8000-$FFFF and CHR every
// len(CHR) bytes across VRAM $0000-$1FFF. An empty CHR leaves VRAM as RAM.
func (mapper *Mapper0) Install(bus Poker, vram Poker) {
	prg := mapper.card.PRG
	for i := 0; i < prgWindow; i++ {
		bus.Poke(uint16(prgStart+i), prg[i%len(prg)])
	}

	chr := mapper.card.CHR
	if len(chr) == 0 {
		return
	}
	for i := 0; i < chrWindow; i++ {
		vram.Poke(uint16(i), chr[i%len(chr)])
	}
}
