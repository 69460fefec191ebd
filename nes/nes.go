package nes

import (
	"bytes"
	"fmt"
)

const (
	headerSize = 16
	prgUnit    = 0x4000 // 16KB
	chrUnit    = 0x2000 // 8KB
)

var nesMagic = []byte("NES\x1a")

// LoadNESRom parses an iNES image. Nothing is installed anywhere; a
// rejected image leaves no state behind.
func LoadNESRom(data []byte) (*Cartridge, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}
	if !bytes.Equal(data[0:4], nesMagic) {
		return nil, ErrInvalidMagic
	}

	flag := data[6]
	flag2 := data[7]
	sizes := data[9]

	// byte9 低4位是PRG块数的高位，高4位是CHR块数的高位，0xF表示指数写法，不支持
	if sizes&0x0f == 0x0f {
		return nil, ErrUnsupportedPRGSize
	}
	if sizes>>4 == 0x0f {
		return nil, ErrUnsupportedCHRSize
	}
	if sizes&0x04 != 0 || flag&0x04 != 0 {
		return nil, ErrTrainer
	}

	prgNum := int(data[4]) | int(sizes&0x0f)<<8 // PRG块数目 一块大小为 16KB
	chrNum := int(data[5]) | int(sizes>>4)<<8   // CHR块数目 一块大小为 8KB
	if prgNum == 0 {
		return nil, ErrNoPRG
	}

	prgSize := prgNum * prgUnit
	chrSize := chrNum * chrUnit
	if len(data) < headerSize+prgSize+chrSize {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncated, headerSize+prgSize+chrSize, len(data))
	}

	prg := make([]byte, prgSize)
	copy(prg, data[headerSize:])
	chr := make([]byte, chrSize)
	copy(chr, data[headerSize+prgSize:])

	mirror := flag & 1
	mapper := flag>>4 | flag2&0xf0

	Logger("ROM: PRG-ROM: %d x 16kb, CHR-ROM: %d x 8kb, Mapper: %d", prgNum, chrNum, mapper)
	return NewCartridge(prg, chr, mapper, mirror), nil
}

/*
FLAG (byte 6)

76543210
||||||||
|||||||+- Mirroring: 0: 水平镜像 1: 垂直镜像
||||||+-- 1: 卡带上有没有带电池的 SRAM
|||||+--- 1: Trainer 标志
||||+---- 1: 4-Screen 模式
++++----- Mapper 号的低 4 bit

FLAG2 (byte 7)
76543210
||||||||
|||||||+- VS Unisystem，不需要了解
||||||+-- PlayChoice-10，不需要了解
||||++--- 如果为 2，代表 NES 2.0 格式
++++----- Mapper 号的高 4 bit
*/
