package nes

/*
CPU地址空间是一整块64KB的平坦内存，由Bus独占：
[$0000, $2000) RAM
[$2000, $2008) PPU 寄存器，读写时会通知PPU
[$4016]        手柄，读写时会通知手柄
[$8000, $10000) PRG-ROM，加载时写入
其他地址都当作普通RAM
*/

// Memory is anything the CPU can address.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// Peeker reads memory without triggering any device side effect.
type Peeker interface {
	Peek(addr uint16) byte
}

// Poker writes memory without triggering any device side effect. Cartridge
// loading goes through it.
type Poker interface {
	Poke(addr uint16, value byte)
}

// Device is a memory mapped peripheral. The bus always stores or fetches the
// raw byte first and then hands it to the device.
type Device interface {
	// OnRegisterRead receives the raw stored byte and returns the value the
	// CPU sees.
	OnRegisterRead(addr uint16, raw byte) byte
	OnRegisterWrite(addr uint16, value byte)
}

// Bus is the flat 64KiB CPU address space.
type Bus struct {
	ram   [0x10000]byte
	ppu   Device
	input Device
}

func NewBus() *Bus {
	return &Bus{}
}

// Connect attaches the devices behind 0x2000-0x2007 and 0x4016. Either may
// be nil, in which case the address behaves as plain RAM.
func (bus *Bus) Connect(ppu Device, input Device) {
	bus.ppu = ppu
	bus.input = input
}

func (bus *Bus) device(addr uint16) Device {
	switch {
	case addr >= 0x2000 && addr < 0x2008:
		return bus.ppu
	case addr == 0x4016:
		return bus.input
	}
	return nil
}

func (bus *Bus) Read(addr uint16) byte {
	value := bus.ram[addr]
	if d := bus.device(addr); d != nil {
		return d.OnRegisterRead(addr, value)
	}
	return value
}

func (bus *Bus) Write(addr uint16, value byte) {
	bus.ram[addr] = value
	if d := bus.device(addr); d != nil {
		d.OnRegisterWrite(addr, value)
	}
}

// Read16 reads a little endian word. The high byte comes from addr+1, which
// wraps from 0xFFFF to 0x0000.
func (bus *Bus) Read16(addr uint16) uint16 {
	return word(bus.Read(addr+1), bus.Read(addr))
}

func (bus *Bus) Peek(addr uint16) byte {
	return bus.ram[addr]
}

func (bus *Bus) Poke(addr uint16, value byte) {
	bus.ram[addr] = value
}

// word joins two bytes into a 16 bit value.
func word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
