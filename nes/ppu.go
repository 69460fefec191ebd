/*
PPU
负责时序(扫描线/点)、VBlank和NMI、$2000-$2007寄存器，以及一个只画背景的单色渲染
*/
package nes

import (
	"image"
	"image/color"
)

const (
	ScreenWidth  = 256
	ScreenHeight = 240

	dotsPerLine   = 341
	linesPerFrame = 262
	// DotsPerFrame is one full pass over every scanline and dot: 262 lines
	// (0-261) of 341 dots (0-340) make 89,342, not 261x341 = 89,001. The
	// PPU column of nestest.log follows 341 dots per line.
	DotsPerFrame = dotsPerLine * linesPerFrame

	vblankLine    = 241
	preRenderLine = 261
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Interrupter receives the NMI raised at the start of vblank.
type Interrupter interface {
	TriggerNMI()
}

type PPU struct {
	nmi      Interrupter
	Cycle    int // 0-340
	ScanLine int // 0-261
	Frame    int

	vram  [0x4000]byte // 图样表 + 名称表
	front *image.RGBA
	back  *image.RGBA

	frameReady bool

	// nmi状态
	nmiOccurred bool // VBlank期间为true
	nmiOutput   bool // $2000 D7，触发一次后解除

	// internal寄存器
	v uint16 // 当前VRAM地址 15bit
	t uint16 // 临时VRAM地址 15bit
	x byte   // X Scroll 3bit
	w byte   // 第一次还是第二次写的标记 1bit

	control      byte // $2000 PPUCTRL
	status       byte // $2002 PPUSTATUS
	bufferedData byte // $2007 延迟读
}

func NewPPU(nmi Interrupter) *PPU {
	ppu := &PPU{nmi: nmi}
	ppu.front = image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	ppu.back = image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	ppu.Reset()
	return ppu
}

func (ppu *PPU) Reset() {
	ppu.Cycle = 0
	ppu.ScanLine = 0
	ppu.Frame = 0
	ppu.frameReady = false
	ppu.nmiOccurred = false
	ppu.nmiOutput = false
	ppu.v, ppu.t, ppu.x, ppu.w = 0, 0, 0, 0
	ppu.control = 0
	ppu.status = 0
	ppu.bufferedData = 0
}

// Step advances one dot.
func (ppu *PPU) Step() {
	// 边沿触发：触发一次后要重新写$2000才会再次触发
	if ppu.nmiOccurred && ppu.nmiOutput {
		ppu.nmiOutput = false
		if ppu.nmi != nil {
			ppu.nmi.TriggerNMI()
		}
	}

	switch {
	case ppu.ScanLine == 0 && ppu.Cycle == 0:
		ppu.renderFrame()
		ppu.frameReady = true
	case ppu.ScanLine == vblankLine && ppu.Cycle == 1:
		ppu.status |= 0x80
		ppu.nmiOccurred = true
	case ppu.ScanLine == preRenderLine && ppu.Cycle == 1:
		// 清除VBlank、sprite 0 hit和sprite overflow
		ppu.status &^= 0xe0
		ppu.nmiOccurred = false
	}

	ppu.tick()
}

func (ppu *PPU) tick() {
	ppu.Cycle++
	if ppu.Cycle >= dotsPerLine {
		ppu.Cycle = 0
		ppu.ScanLine++
		if ppu.ScanLine >= linesPerFrame {
			ppu.ScanLine = 0
			ppu.Frame++
		}
	}
}

// FrameReady reports whether a frame completed since the last call.
func (ppu *PPU) FrameReady() bool {
	ready := ppu.frameReady
	ppu.frameReady = false
	return ready
}

// Buffer is the most recently completed frame.
func (ppu *PPU) Buffer() *image.RGBA {
	return ppu.front
}

// Peek reads VRAM without touching v or the read buffer.
func (ppu *PPU) Peek(addr uint16) byte {
	return ppu.vram[addr&0x3fff]
}

func (ppu *PPU) Poke(addr uint16, value byte) {
	ppu.vram[addr&0x3fff] = value
}

// OnRegisterRead implements the Device interface for $2000-$2007.
func (ppu *PPU) OnRegisterRead(addr uint16, raw byte) byte {
	switch addr {
	case 0x2002:
		return ppu.readStatus()
	case 0x2007:
		return ppu.readData()
	}
	return raw
}

// https://wiki.nesdev.org/w/index.php?title=PPU_registers
// OnRegisterWrite implements the Device interface for $2000-$2007.
func (ppu *PPU) OnRegisterWrite(addr uint16, value byte) {
	switch addr {
	case 0x2000:
		ppu.writeControl(value)
	case 0x2005:
		ppu.writeScroll(value)
	case 0x2006:
		ppu.writeAddress(value)
	case 0x2007:
		ppu.writeData(value)
	}
}

// https://github.com/dustpg/BlogFM/issues/15
func (ppu *PPU) writeControl(value byte) {
	ppu.control = value
	ppu.nmiOutput = value>>7 == 1
	// t: ....BA.. ........ = d: ......BA
	ppu.t = ppu.t&0xf3ff | uint16(value&0x03)<<10
}

// $2005 屏幕滚动 双写，只维护t/x/w，不参与渲染
func (ppu *PPU) writeScroll(value byte) {
	if ppu.w == 0 {
		ppu.t = ppu.t&0xffe0 | uint16(value)>>3
		ppu.x = value & 0x07
		ppu.w = 1
	} else {
		ppu.t = ppu.t&0x8fff | uint16(value&0x07)<<12
		ppu.t = ppu.t&0xfc1f | uint16(value&0xf8)<<2
		ppu.w = 0
	}
}

// $2006 显存指针 双写，先高后低
func (ppu *PPU) writeAddress(value byte) {
	if ppu.w == 0 {
		// t: ..FEDCBA ........ = d: ..FEDCBA
		// t: .X...... ........ = 0
		ppu.t = ppu.t&0x80ff | uint16(value&0x3f)<<8
		ppu.w = 1
	} else {
		// t: ....... ABCDEFGH <- d: ABCDEFGH
		// v: <...all bits...> <- t: <...all bits...>
		ppu.t = ppu.t&0xff00 | uint16(value)
		ppu.v = ppu.t
		ppu.w = 0
	}
}

// $2000的D2决定PPUDATA被访问后增加1还是32
func (ppu *PPU) increment() {
	if ppu.control&0x04 == 0 {
		ppu.v++
	} else {
		ppu.v += 32
	}
}

// $2007 读：返回上一次缓冲的值，再用当前地址重新填充
func (ppu *PPU) readData() byte {
	value := ppu.bufferedData
	ppu.bufferedData = ppu.Peek(ppu.v)
	ppu.increment()
	return value
}

func (ppu *PPU) writeData(value byte) {
	ppu.Poke(ppu.v, value)
	ppu.increment()
}

// $2002 读：返回读之前的状态，然后清VBlank、地址和w
func (ppu *PPU) readStatus() byte {
	result := ppu.status
	ppu.status &^= 0x80
	ppu.v = 0
	ppu.w = 0
	ppu.nmiOccurred = false
	return result
}

// 一个tile 16字节：前8字节是低位平面，后8字节是高位平面
func (ppu *PPU) drawTile(img *image.RGBA, table uint16, tile byte, px, py int) {
	addr := table + uint16(tile)*16
	for row := 0; row < 8; row++ {
		lo := ppu.Peek(addr + uint16(row))
		hi := ppu.Peek(addr + uint16(row) + 8)
		for col := 0; col < 8; col++ {
			shift := 7 - col
			c := black
			if (lo>>shift|hi>>shift)&1 == 1 {
				c = white
			}
			img.SetRGBA(px+col, py+row, c)
		}
	}
}

// 按名称表画32x30个tile的背景，画在后台缓冲，画完交换
func (ppu *PPU) renderFrame() {
	nameTable := 0x2000 + uint16(ppu.control&0x03)*0x400
	patternTable := uint16(ppu.control>>4&1) * 0x1000
	for ty := 0; ty < ScreenHeight/8; ty++ {
		for tx := 0; tx < ScreenWidth/8; tx++ {
			tile := ppu.Peek(nameTable + uint16(ty*32+tx))
			ppu.drawTile(ppu.back, patternTable, tile, tx*8, ty*8)
		}
	}
	ppu.front, ppu.back = ppu.back, ppu.front
}

// PatternTables draws both 128x128 pattern tables side by side.
func (ppu *PPU) PatternTables() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, 128))
	for table := 0; table < 2; table++ {
		for i := 0; i < 256; i++ {
			px := table*128 + i%16*8
			py := i / 16 * 8
			ppu.drawTile(img, uint16(table)*0x1000, byte(i), px, py)
		}
	}
	return img
}

/*
关于PPU地址分配
0x0000-0x0fff 图样表0
0x1000-0x1fff 图样表1
0x2000-0x23ff 名称表0，0x2400/0x2800/0x2c00 名称表1-3
每个名称表最后64字节是属性表，这里只画单色所以不用
一个名称表字节对应一个tile，值用来索引图样表中的16字节

关于时序
每帧0-261共262根扫描线，每个扫描线341个点
241线1点设置VBlank并触发NMI，261线1点清除
PPU时钟是CPU三倍
*/
