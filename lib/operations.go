package lib

import (
    "errors"
    "fmt"
)

var ErrNotImplemented = errors.New("operation not implemented")

type Operation int

const (
    OpUnknown Operation = iota
    OpADC
    OpAND
    OpASL
    OpBCC
    OpBCS
    OpBEQ
    OpBIT
    OpBMI
    OpBNE
    OpBPL
    OpBRK
    OpBVC
    OpBVS
    OpCLC
    OpCLD
    OpCLI
    OpCLV
    OpCMP
    OpCPX
    OpCPY
    OpDEC
    OpDEX
    OpDEY
    OpEOR
    OpINC
    OpINX
    OpINY
    OpJMP
    OpJSR
    OpLDA
    OpLDX
    OpLDY
    OpLSR
    OpNOP
    OpORA
    OpPHA
    OpPHP
    OpPLA
    OpPLP
    OpROL
    OpROR
    OpRTI
    OpRTS
    OpSBC
    OpSEC
    OpSED
    OpSEI
    OpSTA
    OpSTX
    OpSTY
    OpTAX
    OpTAY
    OpTSX
    OpTXA
    OpTXS
    OpTYA
)

var operationNames = [...]string{
    OpUnknown: "???",
    OpADC: "adc", OpAND: "and", OpASL: "asl", OpBCC: "bcc", OpBCS: "bcs",
    OpBEQ: "beq", OpBIT: "bit", OpBMI: "bmi", OpBNE: "bne", OpBPL: "bpl",
    OpBRK: "brk", OpBVC: "bvc", OpBVS: "bvs", OpCLC: "clc", OpCLD: "cld",
    OpCLI: "cli", OpCLV: "clv", OpCMP: "cmp", OpCPX: "cpx", OpCPY: "cpy",
    OpDEC: "dec", OpDEX: "dex", OpDEY: "dey", OpEOR: "eor", OpINC: "inc",
    OpINX: "inx", OpINY: "iny", OpJMP: "jmp", OpJSR: "jsr", OpLDA: "lda",
    OpLDX: "ldx", OpLDY: "ldy", OpLSR: "lsr", OpNOP: "nop", OpORA: "ora",
    OpPHA: "pha", OpPHP: "php", OpPLA: "pla", OpPLP: "plp", OpROL: "rol",
    OpROR: "ror", OpRTI: "rti", OpRTS: "rts", OpSBC: "sbc", OpSEC: "sec",
    OpSED: "sed", OpSEI: "sei", OpSTA: "sta", OpSTX: "stx", OpSTY: "sty",
    OpTAX: "tax", OpTAY: "tay", OpTSX: "tsx", OpTXA: "txa", OpTXS: "txs",
    OpTYA: "tya",
}

func (operation Operation) String() string {
    if operation < 0 || int(operation) >= len(operationNames) {
        return operationNames[OpUnknown]
    }
    return operationNames[operation]
}

/* the 8-bit input of an operation: the immediate value, the accumulator, or
 * whatever is in memory at the resolved address
 */
func (cpu *CPU) operandValue(operand Operand) byte {
    switch operand.Kind {
        case OperandImmediate: return operand.Value
        case OperandAccumulator: return cpu.A
        case OperandAddress: return cpu.Memory.Load(operand.Address)
    }
    return 0
}

/* write back the result of a read-modify-write operation */
func (cpu *CPU) storeOperand(operand Operand, value byte){
    switch operand.Kind {
        case OperandAccumulator:
            cpu.A = value
        case OperandAddress:
            cpu.Memory.Store(operand.Address, value)
    }
}

func (cpu *CPU) PushStack(value byte) {
    cpu.Memory.Store(StackBase + uint16(cpu.SP), value)
    cpu.SP -= 1
}

func (cpu *CPU) PopStack() byte {
    cpu.SP += 1
    return cpu.Memory.Load(StackBase + uint16(cpu.SP))
}

func (cpu *CPU) pushStack16(value uint16) {
    cpu.PushStack(byte(value >> 8))
    cpu.PushStack(byte(value))
}

func (cpu *CPU) popStack16() uint16 {
    low := uint16(cpu.PopStack())
    high := uint16(cpu.PopStack())
    return (high<<8) | low
}

func (cpu *CPU) loadA(value byte){
    cpu.A = value
    cpu.Status.setZN(value)
}

func (cpu *CPU) loadX(value byte){
    cpu.X = value
    cpu.Status.setZN(value)
}

func (cpu *CPU) loadY(value byte){
    cpu.Y = value
    cpu.Status.setZN(value)
}

/* carry is an unsigned >=, negative is bit 7 of the 8-bit difference */
func (cpu *CPU) doCompare(register byte, value byte){
    result := register - value
    cpu.Status.Carry = register >= value
    cpu.Status.Zero = register == value
    cpu.Status.Negative = result & 0x80 == 0x80
}

/* binary mode only, the decimal flag is ignored */
func (cpu *CPU) doAdc(value byte){
    var carryBit uint16
    if cpu.Status.Carry {
        carryBit = 1
    }

    sum := uint16(cpu.A) + uint16(value) + carryBit
    result := byte(sum)

    /* set overflow if both inputs have the same sign and the result has a
     * different one
     * http://www.6502.org/tutorials/vflag.html
     */
    cpu.Status.Overflow = (^(cpu.A ^ value) & (cpu.A ^ result) & 0x80) != 0
    cpu.Status.Carry = sum > 0xff
    cpu.loadA(result)
}

/* A - M - (1 - C) is the same as A + ^M + C */
func (cpu *CPU) doSbc(value byte){
    cpu.doAdc(^value)
}

func (cpu *CPU) doAsl(value byte) byte {
    out := value << 1
    cpu.Status.Carry = value & 0x80 == 0x80
    cpu.Status.setZN(out)
    return out
}

func (cpu *CPU) doLsr(value byte) byte {
    out := value >> 1
    cpu.Status.Carry = value & 1 == 1
    cpu.Status.setZN(out)
    return out
}

func (cpu *CPU) doRol(value byte) byte {
    var carryBit byte
    if cpu.Status.Carry {
        carryBit = 1
    }

    out := (value << 1) | carryBit
    cpu.Status.Carry = value & 0x80 == 0x80
    cpu.Status.setZN(out)
    return out
}

func (cpu *CPU) doRor(value byte) byte {
    var carryBit byte
    if cpu.Status.Carry {
        carryBit = 1
    }

    out := (value >> 1) | (carryBit << 7)
    cpu.Status.Carry = value & 1 == 1
    cpu.Status.setZN(out)
    return out
}

func (cpu *CPU) doBit(value byte){
    cpu.Status.Zero = cpu.A & value == 0
    cpu.Status.Negative = value & 0x80 == 0x80
    cpu.Status.Overflow = value & 0x40 == 0x40
}

func (cpu *CPU) branch(condition bool, operand Operand){
    if condition {
        cpu.PC = operand.Address
    }
}

/* modify the operand in place and store the result back */
func (cpu *CPU) readModifyWrite(operand Operand, operation func(byte) byte){
    cpu.storeOperand(operand, operation(cpu.operandValue(operand)))
}

func (cpu *CPU) execute(operation Operation, operand Operand) error {
    switch operation {
        case OpUnknown:
            return ErrNotImplemented

        case OpLDA: cpu.loadA(cpu.operandValue(operand))
        case OpLDX: cpu.loadX(cpu.operandValue(operand))
        case OpLDY: cpu.loadY(cpu.operandValue(operand))

        case OpSTA: cpu.Memory.Store(operand.Address, cpu.A)
        case OpSTX: cpu.Memory.Store(operand.Address, cpu.X)
        case OpSTY: cpu.Memory.Store(operand.Address, cpu.Y)

        case OpCMP: cpu.doCompare(cpu.A, cpu.operandValue(operand))
        case OpCPX: cpu.doCompare(cpu.X, cpu.operandValue(operand))
        case OpCPY: cpu.doCompare(cpu.Y, cpu.operandValue(operand))

        case OpINC:
            cpu.readModifyWrite(operand, func(value byte) byte {
                value += 1
                cpu.Status.setZN(value)
                return value
            })
        case OpDEC:
            cpu.readModifyWrite(operand, func(value byte) byte {
                value -= 1
                cpu.Status.setZN(value)
                return value
            })
        case OpINX: cpu.loadX(cpu.X + 1)
        case OpINY: cpu.loadY(cpu.Y + 1)
        case OpDEX: cpu.loadX(cpu.X - 1)
        case OpDEY: cpu.loadY(cpu.Y - 1)

        case OpAND: cpu.loadA(cpu.A & cpu.operandValue(operand))
        case OpORA: cpu.loadA(cpu.A | cpu.operandValue(operand))
        case OpEOR: cpu.loadA(cpu.A ^ cpu.operandValue(operand))
        case OpBIT: cpu.doBit(cpu.operandValue(operand))

        case OpADC: cpu.doAdc(cpu.operandValue(operand))
        case OpSBC: cpu.doSbc(cpu.operandValue(operand))

        case OpASL: cpu.readModifyWrite(operand, cpu.doAsl)
        case OpLSR: cpu.readModifyWrite(operand, cpu.doLsr)
        case OpROL: cpu.readModifyWrite(operand, cpu.doRol)
        case OpROR: cpu.readModifyWrite(operand, cpu.doRor)

        case OpPHA: cpu.PushStack(cpu.A)
        case OpPHP: cpu.PushStack(cpu.Status.Value())
        case OpPLA: cpu.loadA(cpu.PopStack())
        case OpPLP: cpu.Status.FromValue(cpu.PopStack())

        case OpCLC: cpu.Status.Carry = false
        case OpSEC: cpu.Status.Carry = true
        case OpCLD: cpu.Status.Decimal = false
        case OpSED: cpu.Status.Decimal = true
        case OpCLI: cpu.Status.InterruptDisable = false
        case OpSEI: cpu.Status.InterruptDisable = true
        case OpCLV: cpu.Status.Overflow = false

        case OpTAX: cpu.loadX(cpu.A)
        case OpTXA: cpu.loadA(cpu.X)
        case OpTAY: cpu.loadY(cpu.A)
        case OpTYA: cpu.loadA(cpu.Y)
        case OpTSX: cpu.loadX(cpu.SP)
        case OpTXS: cpu.SP = cpu.X

        case OpJMP: cpu.PC = operand.Address
        case OpJSR:
            /* the return address pushed is the last byte of the jsr */
            cpu.pushStack16(cpu.PC - 1)
            cpu.PC = operand.Address
        case OpRTS:
            cpu.PC = cpu.popStack16() + 1
        case OpRTI:
            cpu.Status.FromValue(cpu.PopStack())
            cpu.PC = cpu.popStack16()

        case OpBCC: cpu.branch(!cpu.Status.Carry, operand)
        case OpBCS: cpu.branch(cpu.Status.Carry, operand)
        case OpBNE: cpu.branch(!cpu.Status.Zero, operand)
        case OpBEQ: cpu.branch(cpu.Status.Zero, operand)
        case OpBPL: cpu.branch(!cpu.Status.Negative, operand)
        case OpBMI: cpu.branch(cpu.Status.Negative, operand)
        case OpBVC: cpu.branch(!cpu.Status.Overflow, operand)
        case OpBVS: cpu.branch(cpu.Status.Overflow, operand)

        /* pushing pc/status and jumping through the irq vector is not done
         * here, the break flag is what stops Run()
         */
        case OpBRK: cpu.Status.Break = true
        case OpNOP:

        default:
            return fmt.Errorf("%w: operation %d", ErrNotImplemented, int(operation))
    }

    return nil
}
