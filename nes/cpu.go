package nes

/*
CPU模块，对外需要以下接口：
Step   执行一条指令，或者处理一个挂起的中断
Reset  从RESET向量读取PC
Interrupt/TriggerNMI/TriggerIRQ  中断进入队列，下一次Step时处理
*/

// 各中断的地址信息，2byte
const (
	// NMI中断
	NMIVector = 0xfffa
	// 每次启动触发
	ResetVector = 0xfffc
	// IRQ/BRK共用中断地址
	IRQVector = 0xfffe
)

const CPUFrequency = 1789773

// 中断和复位的固定周期
const interruptCycles = 7

// Interrupt is a kind of pending interrupt.
type Interrupt byte

const (
	interruptNone Interrupt = iota
	InterruptNMI
	InterruptIRQ
)

func (i Interrupt) String() string {
	switch i {
	case InterruptNMI:
		return "NMI"
	case InterruptIRQ:
		return "IRQ"
	}
	return "none"
}

// AddressBus is what the CPU is wired to. Peek is only used for tracing.
type AddressBus interface {
	Memory
	Peeker
	Read16(addr uint16) uint16
}

type CPU struct {
	AddressBus
	Cycles     uint64
	PC         uint16
	SP         byte // 堆栈寄存器
	A          byte
	X          byte
	Y          byte
	C          byte // 8个状态FLAG C - 进位标志
	Z          byte // Z - 结果为零标志
	I          byte // I - 中断屏蔽
	D          byte // D - 十进制，NES上无效
	B          byte // BRK
	U          byte // 未使用，总是1
	V          byte // 溢出标志，计算结果产生溢出
	N          byte // 负标志，结果为负
	interrupts []Interrupt
}

// 指令执行需要的信息
type stepInfo struct {
	address uint16
	pc      uint16
	mode    byte
}

func NewCPU(bus AddressBus) *CPU {
	cpu := &CPU{AddressBus: bus}
	cpu.Reset()
	return cpu
}

func (cpu *CPU) Reset() {
	cpu.PC = cpu.Read16(ResetVector)
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	// 栈指针初始化为$FD即指向$1FD
	cpu.SP = 0xfd
	cpu.SetFlags(0x24)
	// 复位序列本身占7个周期
	cpu.Cycles = interruptCycles
	cpu.interrupts = cpu.interrupts[:0]
}

// 这里模拟cpu的bug，读取16位数据
// 例如JMP ($10FF), 理论上讲是读取$10FF和$1100这两个字节的数据, 但是实际上是读取的$10FF和$1000这两个字节的数据.
func (cpu *CPU) read16bug(addr uint16) uint16 {
	hi := addr&0xff00 | uint16(byte(addr)+1)
	return word(cpu.Read(hi), cpu.Read(addr))
}

// 栈操作：压栈 SP指针向0x00靠近，越界直接回绕
func (cpu *CPU) push(value byte) {
	cpu.Write(0x100|uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) push16(value uint16) {
	cpu.push(byte(value >> 8))
	cpu.push(byte(value))
}

func (cpu *CPU) pull() byte {
	cpu.SP++
	return cpu.Read(0x100 | uint16(cpu.SP))
}

func (cpu *CPU) pull16() uint16 {
	lo := cpu.pull()
	hi := cpu.pull()
	return word(hi, lo)
}

func (cpu *CPU) setZN(value byte) {
	cpu.Z = boolBit(value == 0)
	cpu.N = value >> 7
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Flags packs the status register.
func (cpu *CPU) Flags() byte {
	return cpu.C | cpu.Z<<1 | cpu.I<<2 | cpu.D<<3 | cpu.B<<4 | cpu.U<<5 | cpu.V<<6 | cpu.N<<7
}

func (cpu *CPU) SetFlags(p byte) {
	cpu.C = p & 1
	cpu.Z = p >> 1 & 1
	cpu.I = p >> 2 & 1
	cpu.D = p >> 3 & 1
	cpu.B = p >> 4 & 1
	cpu.U = p >> 5 & 1
	cpu.V = p >> 6 & 1
	cpu.N = p >> 7 & 1
}

// 压栈时B和U两位总是置1
func (cpu *CPU) pushFlags() {
	cpu.push(cpu.Flags() | 0x30)
}

// 出栈时忽略B，U总是1
func (cpu *CPU) pullFlags() {
	cpu.SetFlags(cpu.pull()&0xef | 0x20)
}

// Interrupt queues an interrupt for the next instruction boundary.
func (cpu *CPU) Interrupt(kind Interrupt) {
	cpu.interrupts = append(cpu.interrupts, kind)
}

func (cpu *CPU) TriggerNMI() {
	cpu.Interrupt(InterruptNMI)
}

func (cpu *CPU) TriggerIRQ() {
	cpu.Interrupt(InterruptIRQ)
}

// 队列里NMI优先；I置位时IRQ被丢弃
func (cpu *CPU) pendingInterrupt() Interrupt {
	kind := interruptNone
	for _, i := range cpu.interrupts {
		if i == InterruptNMI {
			return InterruptNMI
		}
		if i == InterruptIRQ && cpu.I == 0 {
			kind = InterruptIRQ
		}
	}
	return kind
}

// irq/nmi/brk实现类似
func (cpu *CPU) enterInterrupt(vector uint16) {
	cpu.push16(cpu.PC)
	cpu.pushFlags()
	cpu.I = 1
	cpu.PC = cpu.Read16(vector)
	cpu.Cycles += interruptCycles
}

// 判断地址是否跨页, 跨页则返回true
func pageDiff(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// resolve 计算操作数地址，跨页且指令对跨页敏感时加1个周期
// 参考这里： https://github.com/dustpg/BlogFM/issues/9
func (cpu *CPU) resolve(opcode byte) uint16 {
	pc := cpu.PC
	indexed := func(base uint16, index byte) uint16 {
		address := base + uint16(index)
		if instructionPageCycles[opcode] == 1 && pageDiff(base, address) {
			cpu.Cycles++
		}
		return address
	}

	switch instructionModes[opcode] {
	case modeAbsolute:
		return cpu.Read16(pc + 1)
	case modeAbsoluteX:
		return indexed(cpu.Read16(pc+1), cpu.X)
	case modeAbsoluteY:
		return indexed(cpu.Read16(pc+1), cpu.Y)
	case modeImmediate, modeRelative:
		// 操作数就在指令后面
		return pc + 1
	case modeIndexedIndirect:
		// 零页内回绕
		return cpu.read16bug(uint16(cpu.Read(pc+1) + cpu.X))
	case modeIndirect:
		return cpu.read16bug(cpu.Read16(pc + 1))
	case modeIndirectIndexed:
		return indexed(cpu.read16bug(uint16(cpu.Read(pc+1))), cpu.Y)
	case modeZeroPage:
		return uint16(cpu.Read(pc + 1))
	case modeZeroPageX:
		return uint16(cpu.Read(pc+1) + cpu.X)
	case modeZeroPageY:
		return uint16(cpu.Read(pc+1) + cpu.Y)
	}
	panic(ErrImpliedAddressing)
}

// Step 执行一个指令：读指令-寻址-执行-计算时钟数。
// 有挂起的中断时，这一步改为进入中断。
func (cpu *CPU) Step() (int64, error) {
	start := cpu.Cycles

	if len(cpu.interrupts) > 0 {
		kind := cpu.pendingInterrupt()
		cpu.interrupts = cpu.interrupts[:0]
		switch kind {
		case InterruptNMI:
			cpu.enterInterrupt(NMIVector)
			return int64(cpu.Cycles - start), nil
		case InterruptIRQ:
			cpu.enterInterrupt(IRQVector)
			return int64(cpu.Cycles - start), nil
		}
	}

	opcode := cpu.Read(cpu.PC)
	handler := instructions[opcode]
	if handler == nil {
		err := &ErrUnsupportedOpcode{Opcode: opcode, PC: cpu.PC, Cycles: cpu.Cycles}
		Logger("%v", err)
		return 0, err
	}

	info := stepInfo{pc: cpu.PC, mode: instructionModes[opcode]}
	if info.mode != modeImplied && info.mode != modeAccumulator {
		info.address = cpu.resolve(opcode)
	}
	cpu.Cycles += uint64(instructionCycles[opcode])

	handler(cpu, &info)

	// 跳转类指令已经预先减去了自身长度
	cpu.PC += uint16(instructionSizes[opcode])

	return int64(cpu.Cycles - start), nil
}
