package nes

// Helpers shared by the tests in this package.

// romImage builds an iNES image. prg is padded to whole 16KB banks and chr
// to whole 8KB banks; an empty chr means CHR RAM.
type romImage struct {
	prg    []byte
	chr    []byte
	flags6 byte
	flags7 byte
	byte9  byte
}

func (r romImage) bytes() []byte {
	prgBanks := (len(r.prg) + prgUnit - 1) / prgUnit
	if prgBanks == 0 {
		prgBanks = 1
	}
	chrBanks := (len(r.chr) + chrUnit - 1) / chrUnit

	data := make([]byte, headerSize+prgBanks*prgUnit+chrBanks*chrUnit)
	copy(data, nesMagic)
	data[4] = byte(prgBanks)
	data[5] = byte(chrBanks)
	data[6] = r.flags6
	data[7] = r.flags7
	data[9] = r.byte9
	copy(data[headerSize:], r.prg)
	copy(data[headerSize+prgBanks*prgUnit:], r.chr)
	return data
}

// program is a 16KB PRG bank mapped at $8000 (and mirrored at $C000) with
// the reset vector pointing at $8000.
type program [prgUnit]byte

func newProgram() *program {
	p := &program{}
	p.vector(ResetVector, 0x8000)
	return p
}

// at stores code at a CPU address in $8000-$BFFF or its mirror.
func (p *program) at(addr uint16, code ...byte) *program {
	copy(p[int(addr)%prgUnit:], code)
	return p
}

func (p *program) vector(vec uint16, target uint16) *program {
	return p.at(vec, byte(target), byte(target>>8))
}

func (p *program) rom() []byte {
	return romImage{prg: p[:]}.bytes()
}

// newTestCPU returns a CPU on a bare bus with code at addr and the reset
// vector pointing at it.
func newTestCPU(addr uint16, code ...byte) (*CPU, *Bus) {
	bus := NewBus()
	bus.Poke(ResetVector, byte(addr))
	bus.Poke(ResetVector+1, byte(addr>>8))
	for i, b := range code {
		bus.Poke(addr+uint16(i), b)
	}
	return NewCPU(bus), bus
}

// steps runs n instructions and returns the cycles of the last one.
func steps(cpu *CPU, n int) int64 {
	var cycles int64
	for i := 0; i < n; i++ {
		c, err := cpu.Step()
		if err != nil {
			panic(err)
		}
		cycles = c
	}
	return cycles
}

type nmiCounter struct {
	count int
}

func (n *nmiCounter) TriggerNMI() {
	n.count++
}
