package lib

import (
    "bytes"
    "fmt"
)

/* a decoded instruction: the opcode and the raw bytes that follow it */
type Instruction struct {
    Name string
    Kind InstructionType
    Mode AddressingMode
    Operands []byte
    /* where the opcode was read from */
    Address uint16
}

func (instruction *Instruction) Length() uint16 {
    return 1 + uint16(len(instruction.Operands))
}

func (instruction *Instruction) OperandByte() (byte, error) {
    if len(instruction.Operands) != 1 {
        return 0, fmt.Errorf("dont have one operand for %v, only have %v", instruction.Name, len(instruction.Operands))
    }
    return instruction.Operands[0], nil
}

func (instruction *Instruction) OperandWord() (uint16, error) {
    if len(instruction.Operands) != 2 {
        return 0, fmt.Errorf("dont have two operands for %v, only have %v", instruction.Name, len(instruction.Operands))
    }
    high := instruction.Operands[1]
    low := instruction.Operands[0]
    return (uint16(high) << 8) | uint16(low), nil
}

func (instruction *Instruction) Equals(other Instruction) bool {
    return instruction.Name == other.Name &&
           instruction.Kind == other.Kind &&
           bytes.Equal(instruction.Operands, other.Operands)
}

func (instruction *Instruction) String() string {
    var out bytes.Buffer
    out.WriteString(fmt.Sprintf("%02X ", byte(instruction.Kind)))
    out.WriteString(instruction.Name)
    for _, operand := range instruction.Operands {
        out.WriteRune(' ')
        out.WriteString(fmt.Sprintf("0x%x", operand))
    }
    return out.String()
}

/* decode the instruction at the given address without changing any state */
func (cpu *CPU) PeekInstruction(address uint16) (Instruction, error) {
    kind := InstructionType(cpu.Memory.Load(address))
    description := cpu.table.Lookup(kind)
    if !description.Valid() {
        return Instruction{}, &UnknownOpcodeError{Opcode: byte(kind), PC: address}
    }

    operands := make([]byte, description.Operands())
    for i := range operands {
        operands[i] = cpu.Memory.Load(address + uint16(i + 1))
    }

    return Instruction{
        Name: description.Name,
        Kind: kind,
        Mode: description.Mode,
        Operands: operands,
        Address: address,
    }, nil
}
