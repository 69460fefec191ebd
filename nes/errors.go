package nes

import (
	"errors"
	"strconv"

	"github.com/55utah/yane/translate"
)

var f = translate.From

// Every error below is fatal for the emulation session. The per-cycle loop has
// no recoverable error path: memory access, register side effects and the
// controller shift register accept every input byte.
var (
	// Cartridge errors, all returned before any CPU/PPU state exists.
	ErrInvalidMagic       = errors.New(f("not an iNES image"))
	ErrTruncated          = errors.New(f("iNES image truncated"))
	ErrUnsupportedPRGSize = errors.New(f("unsupported PRG size"))
	ErrUnsupportedCHRSize = errors.New(f("unsupported CHR size"))
	ErrTrainer            = errors.New(f("trainer area not supported"))
	ErrNoPRG              = errors.New(f("no PRG ROM"))
	ErrUnsupportedMapper  = errors.New(f("unsupported mapper"))

	// ErrImpliedAddressing is the panic value raised when an implied
	// instruction is asked for an effective address. Only a broken opcode
	// table can do that.
	ErrImpliedAddressing = errors.New(f("implied addressing has no operand address"))
)

// ErrUnsupportedOpcode is returned by CPU.Step for opcodes the instruction
// table does not implement.
type ErrUnsupportedOpcode struct {
	Opcode byte
	PC     uint16
	Cycles uint64
}

func (eo *ErrUnsupportedOpcode) Error() string {
	// 周期数不走本地化的数字分组，和trace里的CYC保持一致
	return f("unsupported opcode 0x%02X at 0x%04X after %s cycles", eo.Opcode, eo.PC, strconv.FormatUint(eo.Cycles, 10))
}

func (eo *ErrUnsupportedOpcode) Is(err error) (ok bool) {
	_, ok = err.(*ErrUnsupportedOpcode)
	return
}
