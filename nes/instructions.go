package nes

// 寻址方式
const (
	_ = iota
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeAccumulator
	modeImmediate
	modeImplied
	modeIndexedIndirect
	modeIndirect
	modeIndirectIndexed
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
)

// 以下表格由init按opcodes填充，没有实现的(非官方)指令留空
var (
	instructions          [256]func(*CPU, *stepInfo)
	instructionModes      [256]byte
	instructionSizes      [256]byte // 每个指令字节大小
	instructionCycles     [256]byte // 基础周期数，不包括额外的周期
	instructionPageCycles [256]byte // 跨page是否加1个周期
	instructionNames      [256]string
)

type opcode struct {
	code   byte
	name   string
	mode   byte
	size   byte
	cycles byte
	page   byte
	run    func(*CPU, *stepInfo)
}

// 151条官方指令
var opcodes = []opcode{
	{0x69, "ADC", modeImmediate, 2, 2, 0, (*CPU).adc},
	{0x65, "ADC", modeZeroPage, 2, 3, 0, (*CPU).adc},
	{0x75, "ADC", modeZeroPageX, 2, 4, 0, (*CPU).adc},
	{0x6D, "ADC", modeAbsolute, 3, 4, 0, (*CPU).adc},
	{0x7D, "ADC", modeAbsoluteX, 3, 4, 1, (*CPU).adc},
	{0x79, "ADC", modeAbsoluteY, 3, 4, 1, (*CPU).adc},
	{0x61, "ADC", modeIndexedIndirect, 2, 6, 0, (*CPU).adc},
	{0x71, "ADC", modeIndirectIndexed, 2, 5, 1, (*CPU).adc},

	{0x29, "AND", modeImmediate, 2, 2, 0, (*CPU).and},
	{0x25, "AND", modeZeroPage, 2, 3, 0, (*CPU).and},
	{0x35, "AND", modeZeroPageX, 2, 4, 0, (*CPU).and},
	{0x2D, "AND", modeAbsolute, 3, 4, 0, (*CPU).and},
	{0x3D, "AND", modeAbsoluteX, 3, 4, 1, (*CPU).and},
	{0x39, "AND", modeAbsoluteY, 3, 4, 1, (*CPU).and},
	{0x21, "AND", modeIndexedIndirect, 2, 6, 0, (*CPU).and},
	{0x31, "AND", modeIndirectIndexed, 2, 5, 1, (*CPU).and},

	{0x0A, "ASL", modeAccumulator, 1, 2, 0, (*CPU).asl},
	{0x06, "ASL", modeZeroPage, 2, 5, 0, (*CPU).asl},
	{0x16, "ASL", modeZeroPageX, 2, 6, 0, (*CPU).asl},
	{0x0E, "ASL", modeAbsolute, 3, 6, 0, (*CPU).asl},
	{0x1E, "ASL", modeAbsoluteX, 3, 7, 0, (*CPU).asl},

	{0x90, "BCC", modeRelative, 2, 2, 0, (*CPU).bcc},
	{0xB0, "BCS", modeRelative, 2, 2, 0, (*CPU).bcs},
	{0xF0, "BEQ", modeRelative, 2, 2, 0, (*CPU).beq},
	{0x30, "BMI", modeRelative, 2, 2, 0, (*CPU).bmi},
	{0xD0, "BNE", modeRelative, 2, 2, 0, (*CPU).bne},
	{0x10, "BPL", modeRelative, 2, 2, 0, (*CPU).bpl},
	{0x50, "BVC", modeRelative, 2, 2, 0, (*CPU).bvc},
	{0x70, "BVS", modeRelative, 2, 2, 0, (*CPU).bvs},

	{0x24, "BIT", modeZeroPage, 2, 3, 0, (*CPU).bit},
	{0x2C, "BIT", modeAbsolute, 3, 4, 0, (*CPU).bit},

	{0x00, "BRK", modeImplied, 1, 7, 0, (*CPU).brk},

	{0x18, "CLC", modeImplied, 1, 2, 0, (*CPU).clc},
	{0xD8, "CLD", modeImplied, 1, 2, 0, (*CPU).cld},
	{0x58, "CLI", modeImplied, 1, 2, 0, (*CPU).cli},
	{0xB8, "CLV", modeImplied, 1, 2, 0, (*CPU).clv},

	{0xC9, "CMP", modeImmediate, 2, 2, 0, (*CPU).cmp},
	{0xC5, "CMP", modeZeroPage, 2, 3, 0, (*CPU).cmp},
	{0xD5, "CMP", modeZeroPageX, 2, 4, 0, (*CPU).cmp},
	{0xCD, "CMP", modeAbsolute, 3, 4, 0, (*CPU).cmp},
	{0xDD, "CMP", modeAbsoluteX, 3, 4, 1, (*CPU).cmp},
	{0xD9, "CMP", modeAbsoluteY, 3, 4, 1, (*CPU).cmp},
	{0xC1, "CMP", modeIndexedIndirect, 2, 6, 0, (*CPU).cmp},
	{0xD1, "CMP", modeIndirectIndexed, 2, 5, 1, (*CPU).cmp},

	{0xE0, "CPX", modeImmediate, 2, 2, 0, (*CPU).cpx},
	{0xE4, "CPX", modeZeroPage, 2, 3, 0, (*CPU).cpx},
	{0xEC, "CPX", modeAbsolute, 3, 4, 0, (*CPU).cpx},

	{0xC0, "CPY", modeImmediate, 2, 2, 0, (*CPU).cpy},
	{0xC4, "CPY", modeZeroPage, 2, 3, 0, (*CPU).cpy},
	{0xCC, "CPY", modeAbsolute, 3, 4, 0, (*CPU).cpy},

	{0xC6, "DEC", modeZeroPage, 2, 5, 0, (*CPU).dec},
	{0xD6, "DEC", modeZeroPageX, 2, 6, 0, (*CPU).dec},
	{0xCE, "DEC", modeAbsolute, 3, 6, 0, (*CPU).dec},
	{0xDE, "DEC", modeAbsoluteX, 3, 7, 0, (*CPU).dec},

	{0xCA, "DEX", modeImplied, 1, 2, 0, (*CPU).dex},
	{0x88, "DEY", modeImplied, 1, 2, 0, (*CPU).dey},

	{0x49, "EOR", modeImmediate, 2, 2, 0, (*CPU).eor},
	{0x45, "EOR", modeZeroPage, 2, 3, 0, (*CPU).eor},
	{0x55, "EOR", modeZeroPageX, 2, 4, 0, (*CPU).eor},
	{0x4D, "EOR", modeAbsolute, 3, 4, 0, (*CPU).eor},
	{0x5D, "EOR", modeAbsoluteX, 3, 4, 1, (*CPU).eor},
	{0x59, "EOR", modeAbsoluteY, 3, 4, 1, (*CPU).eor},
	{0x41, "EOR", modeIndexedIndirect, 2, 6, 0, (*CPU).eor},
	{0x51, "EOR", modeIndirectIndexed, 2, 5, 1, (*CPU).eor},

	{0xE6, "INC", modeZeroPage, 2, 5, 0, (*CPU).inc},
	{0xF6, "INC", modeZeroPageX, 2, 6, 0, (*CPU).inc},
	{0xEE, "INC", modeAbsolute, 3, 6, 0, (*CPU).inc},
	{0xFE, "INC", modeAbsoluteX, 3, 7, 0, (*CPU).inc},

	{0xE8, "INX", modeImplied, 1, 2, 0, (*CPU).inx},
	{0xC8, "INY", modeImplied, 1, 2, 0, (*CPU).iny},

	{0x4C, "JMP", modeAbsolute, 3, 3, 0, (*CPU).jmp},
	{0x6C, "JMP", modeIndirect, 3, 5, 0, (*CPU).jmp},
	{0x20, "JSR", modeAbsolute, 3, 6, 0, (*CPU).jsr},

	{0xA9, "LDA", modeImmediate, 2, 2, 0, (*CPU).lda},
	{0xA5, "LDA", modeZeroPage, 2, 3, 0, (*CPU).lda},
	{0xB5, "LDA", modeZeroPageX, 2, 4, 0, (*CPU).lda},
	{0xAD, "LDA", modeAbsolute, 3, 4, 0, (*CPU).lda},
	{0xBD, "LDA", modeAbsoluteX, 3, 4, 1, (*CPU).lda},
	{0xB9, "LDA", modeAbsoluteY, 3, 4, 1, (*CPU).lda},
	{0xA1, "LDA", modeIndexedIndirect, 2, 6, 0, (*CPU).lda},
	{0xB1, "LDA", modeIndirectIndexed, 2, 5, 1, (*CPU).lda},

	{0xA2, "LDX", modeImmediate, 2, 2, 0, (*CPU).ldx},
	{0xA6, "LDX", modeZeroPage, 2, 3, 0, (*CPU).ldx},
	{0xB6, "LDX", modeZeroPageY, 2, 4, 0, (*CPU).ldx},
	{0xAE, "LDX", modeAbsolute, 3, 4, 0, (*CPU).ldx},
	{0xBE, "LDX", modeAbsoluteY, 3, 4, 1, (*CPU).ldx},

	{0xA0, "LDY", modeImmediate, 2, 2, 0, (*CPU).ldy},
	{0xA4, "LDY", modeZeroPage, 2, 3, 0, (*CPU).ldy},
	{0xB4, "LDY", modeZeroPageX, 2, 4, 0, (*CPU).ldy},
	{0xAC, "LDY", modeAbsolute, 3, 4, 0, (*CPU).ldy},
	{0xBC, "LDY", modeAbsoluteX, 3, 4, 1, (*CPU).ldy},

	{0x4A, "LSR", modeAccumulator, 1, 2, 0, (*CPU).lsr},
	{0x46, "LSR", modeZeroPage, 2, 5, 0, (*CPU).lsr},
	{0x56, "LSR", modeZeroPageX, 2, 6, 0, (*CPU).lsr},
	{0x4E, "LSR", modeAbsolute, 3, 6, 0, (*CPU).lsr},
	{0x5E, "LSR", modeAbsoluteX, 3, 7, 0, (*CPU).lsr},

	{0xEA, "NOP", modeImplied, 1, 2, 0, (*CPU).nop},

	{0x09, "ORA", modeImmediate, 2, 2, 0, (*CPU).ora},
	{0x05, "ORA", modeZeroPage, 2, 3, 0, (*CPU).ora},
	{0x15, "ORA", modeZeroPageX, 2, 4, 0, (*CPU).ora},
	{0x0D, "ORA", modeAbsolute, 3, 4, 0, (*CPU).ora},
	{0x1D, "ORA", modeAbsoluteX, 3, 4, 1, (*CPU).ora},
	{0x19, "ORA", modeAbsoluteY, 3, 4, 1, (*CPU).ora},
	{0x01, "ORA", modeIndexedIndirect, 2, 6, 0, (*CPU).ora},
	{0x11, "ORA", modeIndirectIndexed, 2, 5, 1, (*CPU).ora},

	{0x48, "PHA", modeImplied, 1, 3, 0, (*CPU).pha},
	{0x08, "PHP", modeImplied, 1, 3, 0, (*CPU).php},
	{0x68, "PLA", modeImplied, 1, 4, 0, (*CPU).pla},
	{0x28, "PLP", modeImplied, 1, 4, 0, (*CPU).plp},

	{0x2A, "ROL", modeAccumulator, 1, 2, 0, (*CPU).rol},
	{0x26, "ROL", modeZeroPage, 2, 5, 0, (*CPU).rol},
	{0x36, "ROL", modeZeroPageX, 2, 6, 0, (*CPU).rol},
	{0x2E, "ROL", modeAbsolute, 3, 6, 0, (*CPU).rol},
	{0x3E, "ROL", modeAbsoluteX, 3, 7, 0, (*CPU).rol},

	{0x6A, "ROR", modeAccumulator, 1, 2, 0, (*CPU).ror},
	{0x66, "ROR", modeZeroPage, 2, 5, 0, (*CPU).ror},
	{0x76, "ROR", modeZeroPageX, 2, 6, 0, (*CPU).ror},
	{0x6E, "ROR", modeAbsolute, 3, 6, 0, (*CPU).ror},
	{0x7E, "ROR", modeAbsoluteX, 3, 7, 0, (*CPU).ror},

	{0x40, "RTI", modeImplied, 1, 6, 0, (*CPU).rti},
	{0x60, "RTS", modeImplied, 1, 6, 0, (*CPU).rts},

	{0xE9, "SBC", modeImmediate, 2, 2, 0, (*CPU).sbc},
	{0xE5, "SBC", modeZeroPage, 2, 3, 0, (*CPU).sbc},
	{0xF5, "SBC", modeZeroPageX, 2, 4, 0, (*CPU).sbc},
	{0xED, "SBC", modeAbsolute, 3, 4, 0, (*CPU).sbc},
	{0xFD, "SBC", modeAbsoluteX, 3, 4, 1, (*CPU).sbc},
	{0xF9, "SBC", modeAbsoluteY, 3, 4, 1, (*CPU).sbc},
	{0xE1, "SBC", modeIndexedIndirect, 2, 6, 0, (*CPU).sbc},
	{0xF1, "SBC", modeIndirectIndexed, 2, 5, 1, (*CPU).sbc},

	{0x38, "SEC", modeImplied, 1, 2, 0, (*CPU).sec},
	{0xF8, "SED", modeImplied, 1, 2, 0, (*CPU).sed},
	{0x78, "SEI", modeImplied, 1, 2, 0, (*CPU).sei},

	{0x85, "STA", modeZeroPage, 2, 3, 0, (*CPU).sta},
	{0x95, "STA", modeZeroPageX, 2, 4, 0, (*CPU).sta},
	{0x8D, "STA", modeAbsolute, 3, 4, 0, (*CPU).sta},
	{0x9D, "STA", modeAbsoluteX, 3, 5, 0, (*CPU).sta},
	{0x99, "STA", modeAbsoluteY, 3, 5, 0, (*CPU).sta},
	{0x81, "STA", modeIndexedIndirect, 2, 6, 0, (*CPU).sta},
	{0x91, "STA", modeIndirectIndexed, 2, 6, 0, (*CPU).sta},

	{0x86, "STX", modeZeroPage, 2, 3, 0, (*CPU).stx},
	{0x96, "STX", modeZeroPageY, 2, 4, 0, (*CPU).stx},
	{0x8E, "STX", modeAbsolute, 3, 4, 0, (*CPU).stx},

	{0x84, "STY", modeZeroPage, 2, 3, 0, (*CPU).sty},
	{0x94, "STY", modeZeroPageX, 2, 4, 0, (*CPU).sty},
	{0x8C, "STY", modeAbsolute, 3, 4, 0, (*CPU).sty},

	{0xAA, "TAX", modeImplied, 1, 2, 0, (*CPU).tax},
	{0xA8, "TAY", modeImplied, 1, 2, 0, (*CPU).tay},
	{0xBA, "TSX", modeImplied, 1, 2, 0, (*CPU).tsx},
	{0x8A, "TXA", modeImplied, 1, 2, 0, (*CPU).txa},
	{0x9A, "TXS", modeImplied, 1, 2, 0, (*CPU).txs},
	{0x98, "TYA", modeImplied, 1, 2, 0, (*CPU).tya},
}

func init() {
	for _, op := range opcodes {
		instructions[op.code] = op.run
		instructionModes[op.code] = op.mode
		instructionSizes[op.code] = op.size
		instructionCycles[op.code] = op.cycles
		instructionPageCycles[op.code] = op.page
		instructionNames[op.code] = op.name
	}
}

// LDA - load "A"
func (cpu *CPU) lda(info *stepInfo) {
	cpu.A = cpu.Read(info.address)
	cpu.setZN(cpu.A)
}

// LDX - load "X"
func (cpu *CPU) ldx(info *stepInfo) {
	cpu.X = cpu.Read(info.address)
	cpu.setZN(cpu.X)
}

// LDY - load "Y"
func (cpu *CPU) ldy(info *stepInfo) {
	cpu.Y = cpu.Read(info.address)
	cpu.setZN(cpu.Y)
}

func (cpu *CPU) sta(info *stepInfo) {
	cpu.Write(info.address, cpu.A)
}

func (cpu *CPU) stx(info *stepInfo) {
	cpu.Write(info.address, cpu.X)
}

func (cpu *CPU) sty(info *stepInfo) {
	cpu.Write(info.address, cpu.Y)
}

// A = A + b + C，进位取第8位，溢出看两个操作数和结果的符号位
func (cpu *CPU) addWithCarry(b byte) {
	a := cpu.A
	sum := uint16(a) + uint16(b) + uint16(cpu.C)
	result := byte(sum)
	cpu.C = byte(sum >> 8)
	cpu.V = (a ^ result) & (b ^ result) & 0x80 >> 7
	cpu.A = result
	cpu.setZN(result)
}

// ADC - add with carry
func (cpu *CPU) adc(info *stepInfo) {
	cpu.addWithCarry(cpu.Read(info.address))
}

// SBC - A = A - M - (1 - C)，等价于加上M的反码
func (cpu *CPU) sbc(info *stepInfo) {
	cpu.addWithCarry(^cpu.Read(info.address))
}

func (cpu *CPU) inc(info *stepInfo) {
	value := cpu.Read(info.address) + 1
	cpu.Write(info.address, value)
	cpu.setZN(value)
}

func (cpu *CPU) dec(info *stepInfo) {
	value := cpu.Read(info.address) - 1
	cpu.Write(info.address, value)
	cpu.setZN(value)
}

func (cpu *CPU) and(info *stepInfo) {
	cpu.A &= cpu.Read(info.address)
	cpu.setZN(cpu.A)
}

func (cpu *CPU) ora(info *stepInfo) {
	cpu.A |= cpu.Read(info.address)
	cpu.setZN(cpu.A)
}

func (cpu *CPU) eor(info *stepInfo) {
	cpu.A ^= cpu.Read(info.address)
	cpu.setZN(cpu.A)
}

func (cpu *CPU) inx(info *stepInfo) {
	cpu.X++
	cpu.setZN(cpu.X)
}

func (cpu *CPU) dex(info *stepInfo) {
	cpu.X--
	cpu.setZN(cpu.X)
}

func (cpu *CPU) iny(info *stepInfo) {
	cpu.Y++
	cpu.setZN(cpu.Y)
}

func (cpu *CPU) dey(info *stepInfo) {
	cpu.Y--
	cpu.setZN(cpu.Y)
}

func (cpu *CPU) tax(info *stepInfo) {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
}

func (cpu *CPU) txa(info *stepInfo) {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
}

func (cpu *CPU) tay(info *stepInfo) {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
}

func (cpu *CPU) tya(info *stepInfo) {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
}

func (cpu *CPU) tsx(info *stepInfo) {
	cpu.X = cpu.SP
	cpu.setZN(cpu.X)
}

// TXS 不影响标志位
func (cpu *CPU) txs(info *stepInfo) {
	cpu.SP = cpu.X
}

func (cpu *CPU) clc(info *stepInfo) { cpu.C = 0 }
func (cpu *CPU) sec(info *stepInfo) { cpu.C = 1 }
func (cpu *CPU) cld(info *stepInfo) { cpu.D = 0 }
func (cpu *CPU) sed(info *stepInfo) { cpu.D = 1 }
func (cpu *CPU) clv(info *stepInfo) { cpu.V = 0 }
func (cpu *CPU) cli(info *stepInfo) { cpu.I = 0 }
func (cpu *CPU) sei(info *stepInfo) { cpu.I = 1 }

func (cpu *CPU) compare(a, b byte) {
	cpu.setZN(a - b)
	cpu.C = boolBit(a >= b)
}

func (cpu *CPU) cmp(info *stepInfo) {
	cpu.compare(cpu.A, cpu.Read(info.address))
}

func (cpu *CPU) cpx(info *stepInfo) {
	cpu.compare(cpu.X, cpu.Read(info.address))
}

func (cpu *CPU) cpy(info *stepInfo) {
	cpu.compare(cpu.Y, cpu.Read(info.address))
}

// BIT - Z来自A&M，V和N直接取M的第6、7位
func (cpu *CPU) bit(info *stepInfo) {
	value := cpu.Read(info.address)
	cpu.Z = boolBit(cpu.A&value == 0)
	cpu.V = value >> 6 & 1
	cpu.N = value >> 7
}

// 移位指令共用：累加器模式直接改A，否则读-改-写内存
func (cpu *CPU) modify(info *stepInfo, op func(byte) byte) {
	if info.mode == modeAccumulator {
		cpu.A = op(cpu.A)
		cpu.setZN(cpu.A)
		return
	}
	value := op(cpu.Read(info.address))
	cpu.Write(info.address, value)
	cpu.setZN(value)
}

// ASL -- C <- |7|6|5|4|3|2|1|0| <- 0
func (cpu *CPU) asl(info *stepInfo) {
	cpu.modify(info, func(v byte) byte {
		cpu.C = v >> 7
		return v << 1
	})
}

// LSR -- 0 -> |7|6|5|4|3|2|1|0| -> C
func (cpu *CPU) lsr(info *stepInfo) {
	cpu.modify(info, func(v byte) byte {
		cpu.C = v & 1
		return v >> 1
	})
}

func (cpu *CPU) rol(info *stepInfo) {
	cpu.modify(info, func(v byte) byte {
		c := cpu.C
		cpu.C = v >> 7
		return v<<1 | c
	})
}

func (cpu *CPU) ror(info *stepInfo) {
	cpu.modify(info, func(v byte) byte {
		c := cpu.C
		cpu.C = v & 1
		return v>>1 | c<<7
	})
}

func (cpu *CPU) pha(info *stepInfo) {
	cpu.push(cpu.A)
}

func (cpu *CPU) pla(info *stepInfo) {
	cpu.A = cpu.pull()
	cpu.setZN(cpu.A)
}

func (cpu *CPU) php(info *stepInfo) {
	cpu.pushFlags()
}

func (cpu *CPU) plp(info *stepInfo) {
	cpu.pullFlags()
}

/*
	跳转类指令：Step在指令执行完后总是 PC += 指令长度，
	所以这里写入的是 目标地址 - 指令长度
*/

// JMP - Jump
func (cpu *CPU) jmp(info *stepInfo) {
	cpu.PC = info.address - 3
}

// JSR - 压入返回地址-1，也就是本指令最后一个字节
func (cpu *CPU) jsr(info *stepInfo) {
	cpu.push16(info.pc + 2)
	cpu.PC = info.address - 3
}

// RTS - 出栈地址+1返回，+1由Step完成
func (cpu *CPU) rts(info *stepInfo) {
	cpu.PC = cpu.pull16()
}

// RTI - Return from Interrupt
func (cpu *CPU) rti(info *stepInfo) {
	cpu.pullFlags()
	cpu.PC = cpu.pull16() - 1
}

// BRK 强制中断，压入PC+2，跳到IRQ向量
func (cpu *CPU) brk(info *stepInfo) {
	cpu.push16(info.pc + 2)
	cpu.pushFlags()
	cpu.I = 1
	cpu.PC = cpu.Read16(IRQVector) - 1
}

func (cpu *CPU) nop(info *stepInfo) {}

// 分支跳转：+1周期，目标和PC+2不在同一页再+1
func (cpu *CPU) branch(info *stepInfo) {
	cpu.Cycles++
	offset := uint16(cpu.Read(info.address))
	if offset&0x80 != 0 {
		offset |= 0xff00
	}
	next := info.pc + 2
	if pageDiff(next, next+offset) {
		cpu.Cycles++
	}
	cpu.PC += offset
}

func (cpu *CPU) bcc(info *stepInfo) {
	if cpu.C == 0 {
		cpu.branch(info)
	}
}

func (cpu *CPU) bcs(info *stepInfo) {
	if cpu.C != 0 {
		cpu.branch(info)
	}
}

func (cpu *CPU) beq(info *stepInfo) {
	if cpu.Z != 0 {
		cpu.branch(info)
	}
}

func (cpu *CPU) bne(info *stepInfo) {
	if cpu.Z == 0 {
		cpu.branch(info)
	}
}

func (cpu *CPU) bmi(info *stepInfo) {
	if cpu.N != 0 {
		cpu.branch(info)
	}
}

func (cpu *CPU) bpl(info *stepInfo) {
	if cpu.N == 0 {
		cpu.branch(info)
	}
}

func (cpu *CPU) bvc(info *stepInfo) {
	if cpu.V == 0 {
		cpu.branch(info)
	}
}

func (cpu *CPU) bvs(info *stepInfo) {
	if cpu.V != 0 {
		cpu.branch(info)
	}
}

/*
P 状态寄存器
BIT	名称	含义
0	C	进位标志，如果计算结果产生进位，则置 1
1	Z	零标志，如果结算结果为 0，则置 1
2	I	中断去使能标志，置 1 则可屏蔽掉 IRQ 中断
3	D	十进制模式，未使用
4	B	BRK，只存在于压栈的副本里
5	U	未使用，总是 1
6	V	溢出标志，如果结算结果产生了溢出，则置 1
7	N	负标志，如果计算结果为负，则置 1
*/
