package nes

import (
	"fmt"
	"image"
	"io"
	"time"
)

/**
这个模块作为cpu/ppu/bus/mapper/card/controller的封装
CPU和PPU只通过Bus和CPU的中断队列交互，全部在一个goroutine里驱动
*/

// DefaultFramePeriod is the NTSC frame rate.
const DefaultFramePeriod = time.Second / 60

type Console struct {
	CPU         *CPU
	PPU         *PPU
	Bus         *Bus
	Card        *Cartridge
	Controller1 *Controller
	Mapper      Mapper

	trace       io.Writer
	startPC     uint16
	hasStartPC  bool
	framePeriod time.Duration
}

// NewConsole parses the iNES image and powers the console on. A rejected
// image returns before any CPU or PPU state is created.
func NewConsole(data []byte, options ...Option) (*Console, error) {
	card, err := LoadNESRom(data)
	if err != nil {
		return nil, err
	}
	mapper, err := NewMapper(card)
	if err != nil {
		return nil, err
	}

	console := &Console{Card: card, Mapper: mapper, framePeriod: DefaultFramePeriod}
	if err := console.setOptions(options...); err != nil {
		return nil, err
	}

	console.Bus = NewBus()
	console.CPU = NewCPU(console.Bus)
	console.PPU = NewPPU(console.CPU)
	console.Controller1 = NewController()
	console.Bus.Connect(console.PPU, console.Controller1)
	mapper.Install(console.Bus, console.PPU)

	console.Reset()
	return console, nil
}

func (console *Console) Reset() {
	console.CPU.Reset()
	if console.hasStartPC {
		console.CPU.PC = console.startPC
	}
	console.PPU.Reset()
	// 复位的7个CPU周期里PPU已经走了21个点
	console.PPU.Cycle = int(console.CPU.Cycles) * 3
	Logger("reset: PC=%04X", console.CPU.PC)
}

// Step runs one CPU step and the three PPU dots per CPU cycle that go with it.
func (console *Console) Step() (int64, error) {
	if console.trace != nil && console.CPU.pendingInterrupt() == interruptNone {
		fmt.Fprintln(console.trace, console.Trace())
	}

	// PPU的时钟是CPU三倍
	cpuCycles, err := console.CPU.Step()
	if err != nil {
		return 0, err
	}
	for i := int64(0); i < cpuCycles*3; i++ {
		console.PPU.Step()
	}
	return cpuCycles, nil
}

// StepFrame steps until the PPU completes a frame.
func (console *Console) StepFrame() (int64, error) {
	var total int64
	for {
		cycles, err := console.Step()
		total += cycles
		if err != nil {
			return total, err
		}
		if console.PPU.FrameReady() {
			return total, nil
		}
	}
}

// StepSeconds runs for the given amount of emulated time.
func (console *Console) StepSeconds(seconds float64) error {
	cycles := int64(CPUFrequency * seconds)
	for cycles > 0 {
		n, err := console.Step()
		if err != nil {
			return err
		}
		cycles -= n
	}
	return nil
}

func (console *Console) KeyDown(b Button) {
	console.Controller1.KeyDown(b)
}

func (console *Console) KeyUp(b Button) {
	console.Controller1.KeyUp(b)
}

func (console *Console) Buffer() *image.RGBA {
	return console.PPU.Buffer()
}

func (console *Console) PatternTables() *image.RGBA {
	return console.PPU.PatternTables()
}

// Trace is the CPU trace line with the PPU position added, as in nestest.log.
func (console *Console) Trace() string {
	cpu := console.CPU
	return fmt.Sprintf("%s%s PPU:%3d,%3d CYC:%d",
		cpu.disassemble(), cpu.registers(), console.PPU.ScanLine, console.PPU.Cycle, cpu.Cycles)
}
