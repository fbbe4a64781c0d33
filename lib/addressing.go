package lib

/* https://www.masswerk.at/6502/6502_instruction_set.html
 * A = accumulator
 * abs = absolute
 * # = immediate
 * impl = implied
 * ind = indirect
 * rel = relative
 * zpg = zeropage
 */

type AddressingMode int

const (
    ModeImplied AddressingMode = iota
    ModeAccumulator
    ModeImmediate
    ModeZeroPage
    ModeZeroPageX
    ModeZeroPageY
    ModeAbsolute
    ModeAbsoluteX
    ModeAbsoluteY
    ModeIndirect
    ModeIndexedIndirectX
    ModeIndirectIndexedY
    ModeRelative
)

func (mode AddressingMode) String() string {
    switch mode {
        case ModeImplied: return "implied"
        case ModeAccumulator: return "accumulator"
        case ModeImmediate: return "immediate"
        case ModeZeroPage: return "zero"
        case ModeZeroPageX: return "zero,x"
        case ModeZeroPageY: return "zero,y"
        case ModeAbsolute: return "absolute"
        case ModeAbsoluteX: return "absolute,x"
        case ModeAbsoluteY: return "absolute,y"
        case ModeIndirect: return "indirect"
        case ModeIndexedIndirectX: return "(indirect,x)"
        case ModeIndirectIndexedY: return "(indirect),y"
        case ModeRelative: return "relative"
    }
    return "unknown"
}

/* number of bytes following the opcode */
func (mode AddressingMode) Operands() byte {
    switch mode {
        case ModeImplied, ModeAccumulator:
            return 0
        case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
             ModeIndexedIndirectX, ModeIndirectIndexedY, ModeRelative:
            return 1
        case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
            return 2
    }
    return 0
}

type OperandKind int

const (
    OperandNone OperandKind = iota
    OperandAccumulator
    OperandImmediate
    OperandAddress
)

/* the result of resolving an addressing mode. Either an immediate value, the
 * accumulator, or an effective address.
 */
type Operand struct {
    Kind OperandKind
    Value byte
    Address uint16
}

func immediateOperand(value byte) Operand {
    return Operand{Kind: OperandImmediate, Value: value}
}

func addressOperand(address uint16) Operand {
    return Operand{Kind: OperandAddress, Address: address}
}

/* the TL view of the operand */
func (operand Operand) Low() byte {
    switch operand.Kind {
        case OperandImmediate: return operand.Value
        case OperandAddress: return byte(operand.Address)
    }
    return 0
}

/* the TH view of the operand, 0 for immediates */
func (operand Operand) High() byte {
    if operand.Kind == OperandAddress {
        return byte(operand.Address >> 8)
    }
    return 0
}

func (cpu *CPU) fetchByte() byte {
    value := cpu.Memory.Load(cpu.PC)
    cpu.PC += 1
    return value
}

func (cpu *CPU) fetchWord() uint16 {
    low := uint16(cpu.fetchByte())
    high := uint16(cpu.fetchByte())
    return (high<<8) | low
}

/* read a pointer out of the zero page. keeping 'zero' as a byte makes the
 * high byte wrap around to 0x00 when zero is 0xff
 */
func (cpu *CPU) loadZeroPagePointer(zero byte) uint16 {
    low := uint16(cpu.Memory.Load(uint16(zero)))
    high := uint16(cpu.Memory.Load(uint16(zero + 1)))
    return (high<<8) | low
}

/* resolve consumes the operand bytes for the given mode, leaving PC one past
 * the last byte of the instruction. It never fails.
 */
func (cpu *CPU) resolve(mode AddressingMode) Operand {
    switch mode {
        case ModeImplied:
            return Operand{Kind: OperandNone}
        case ModeAccumulator:
            return Operand{Kind: OperandAccumulator}
        case ModeImmediate:
            return immediateOperand(cpu.fetchByte())
        case ModeZeroPage:
            return addressOperand(uint16(cpu.fetchByte()))
        case ModeZeroPageX:
            /* LDA $C0,X with X=$60 is $20, the carry is discarded */
            return addressOperand(uint16(cpu.fetchByte() + cpu.X))
        case ModeZeroPageY:
            return addressOperand(uint16(cpu.fetchByte() + cpu.Y))
        case ModeAbsolute:
            return addressOperand(cpu.fetchWord())
        case ModeAbsoluteX:
            return addressOperand(cpu.fetchWord() + uint16(cpu.X))
        case ModeAbsoluteY:
            return addressOperand(cpu.fetchWord() + uint16(cpu.Y))
        case ModeIndirect:
            return addressOperand(cpu.loadIndirect(cpu.fetchWord()))
        case ModeIndexedIndirectX:
            zero := cpu.fetchByte() + cpu.X
            return addressOperand(cpu.loadZeroPagePointer(zero))
        case ModeIndirectIndexedY:
            /* not wrapped to the zero page, can be anywhere in memory */
            zero := cpu.fetchByte()
            return addressOperand(cpu.loadZeroPagePointer(zero) + uint16(cpu.Y))
        case ModeRelative:
            offset := int8(cpu.fetchByte())
            return addressOperand(cpu.PC + uint16(offset))
    }

    return Operand{Kind: OperandNone}
}

/* JMP ($xxFF) on a real 6502 reads the high byte from $xx00 instead of
 * $xx00+0x100. That is only reproduced when the option is turned on.
 */
func (cpu *CPU) loadIndirect(pointer uint16) uint16 {
    if cpu.Options.IndirectPageWrap && pointer & 0xff == 0xff {
        low := uint16(cpu.Memory.Load(pointer))
        high := uint16(cpu.Memory.Load(pointer & 0xff00))
        return (high<<8) | low
    }

    return cpu.Memory.Load16(pointer)
}
