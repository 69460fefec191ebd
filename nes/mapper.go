package nes

import "fmt"

// Mapper places cartridge contents into the CPU and PPU address spaces.
type Mapper interface {
	// Install copies PRG into the CPU bus and CHR into VRAM.
	Install(bus Poker, vram Poker)
}

func NewMapper(card *Cartridge) (Mapper, error) {
	switch card.Mapper {
	case 0:
		return NewMapper0(card), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, card.Mapper)
}
