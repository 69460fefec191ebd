package nes

type Cartridge struct {
	PRG    []byte
	CHR    []byte // 为空表示使用CHR RAM
	Mirror byte   // 0 水平 1 垂直
	Mapper byte   // mapper种类
}

func NewCartridge(prg []byte, chr []byte, mapper byte, mirror byte) *Cartridge {
	return &Cartridge{PRG: prg, CHR: chr, Mirror: mirror, Mapper: mapper}
}
