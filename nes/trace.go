package nes

import (
	"fmt"
	"strings"
)

// Trace formats the instruction at PC the way nestest.log does:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Memory is only peeked, so tracing never triggers register side effects.
func (cpu *CPU) Trace() string {
	return fmt.Sprintf("%s%s CYC:%d", cpu.disassemble(), cpu.registers(), cpu.Cycles)
}

func (cpu *CPU) registers() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X", cpu.A, cpu.X, cpu.Y, cpu.Flags(), cpu.SP)
}

func (cpu *CPU) peek16(lo, hi uint16) uint16 {
	return word(cpu.Peek(hi), cpu.Peek(lo))
}

func (cpu *CPU) disassemble() string {
	pc := cpu.PC
	opcode := cpu.Peek(pc)
	size := int(instructionSizes[opcode])
	if size == 0 {
		size = 1
	}

	raw := make([]string, size)
	for i := range raw {
		raw[i] = fmt.Sprintf("%02X", cpu.Peek(pc+uint16(i)))
	}

	name := instructionNames[opcode]
	if name == "" {
		name = "???"
	}
	if operand := cpu.operand(opcode); operand != "" {
		name += " " + operand
	}
	return fmt.Sprintf("%04X  %-8s  %-32s", pc, strings.Join(raw, " "), name)
}

// operand renders the operand and the nestest annotations (effective address
// and the value currently stored there).
func (cpu *CPU) operand(opcode byte) string {
	pc := cpu.PC
	lo := cpu.Peek(pc + 1)
	abs := word(cpu.Peek(pc+2), lo)

	switch instructionModes[opcode] {
	case modeImmediate:
		return fmt.Sprintf("#$%02X", lo)
	case modeZeroPage:
		return fmt.Sprintf("$%02X = %02X", lo, cpu.Peek(uint16(lo)))
	case modeZeroPageX:
		addr := lo + cpu.X
		return fmt.Sprintf("$%02X,X @ %02X = %02X", lo, addr, cpu.Peek(uint16(addr)))
	case modeZeroPageY:
		addr := lo + cpu.Y
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", lo, addr, cpu.Peek(uint16(addr)))
	case modeAbsolute:
		if opcode == 0x4C || opcode == 0x20 {
			return fmt.Sprintf("$%04X", abs)
		}
		return fmt.Sprintf("$%04X = %02X", abs, cpu.Peek(abs))
	case modeAbsoluteX:
		addr := abs + uint16(cpu.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", abs, addr, cpu.Peek(addr))
	case modeAbsoluteY:
		addr := abs + uint16(cpu.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", abs, addr, cpu.Peek(addr))
	case modeIndirect:
		target := cpu.peek16(abs, abs&0xff00|uint16(byte(abs)+1))
		return fmt.Sprintf("($%04X) = %04X", abs, target)
	case modeIndexedIndirect:
		zp := lo + cpu.X
		addr := cpu.peek16(uint16(zp), uint16(zp+1))
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", lo, zp, addr, cpu.Peek(addr))
	case modeIndirectIndexed:
		base := cpu.peek16(uint16(lo), uint16(lo+1))
		addr := base + uint16(cpu.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", lo, base, addr, cpu.Peek(addr))
	case modeRelative:
		offset := uint16(lo)
		if offset&0x80 != 0 {
			offset |= 0xff00
		}
		return fmt.Sprintf("$%04X", pc+2+offset)
	case modeAccumulator:
		return "A"
	}
	return ""
}
