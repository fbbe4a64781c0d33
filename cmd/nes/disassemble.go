package main

import (
    "errors"
    "fmt"
    "io"

    nes "github.com/kazzmir/nescore/lib"
)

/* print count instructions starting at address. Bytes that are not a known
 * opcode are shown as data and skipped one at a time.
 */
func Disassemble(cpu *nes.CPU, address uint16, count int, out io.Writer) error {
    for i := 0; i < count; i++ {
        instruction, err := cpu.PeekInstruction(address)
        if err != nil {
            var unknown *nes.UnknownOpcodeError
            if !errors.As(err, &unknown) {
                return err
            }
            _, err = fmt.Fprintf(out, "%04X  .byte $%02X\n", address, unknown.Opcode)
            if err != nil {
                return err
            }
            address += 1
            continue
        }

        _, err = fmt.Fprintf(out, "%04X  %v\n", address, formatInstruction(instruction))
        if err != nil {
            return err
        }
        address += instruction.Length()
    }

    return nil
}

/* assembler style operand syntax for each addressing mode */
func formatInstruction(instruction nes.Instruction) string {
    switch instruction.Mode {
        case nes.ModeImplied: return instruction.Name
        case nes.ModeAccumulator: return fmt.Sprintf("%v a", instruction.Name)
    }

    if len(instruction.Operands) == 1 {
        value := instruction.Operands[0]
        switch instruction.Mode {
            case nes.ModeImmediate: return fmt.Sprintf("%v #$%02X", instruction.Name, value)
            case nes.ModeZeroPage: return fmt.Sprintf("%v $%02X", instruction.Name, value)
            case nes.ModeZeroPageX: return fmt.Sprintf("%v $%02X,x", instruction.Name, value)
            case nes.ModeZeroPageY: return fmt.Sprintf("%v $%02X,y", instruction.Name, value)
            case nes.ModeIndexedIndirectX: return fmt.Sprintf("%v ($%02X,x)", instruction.Name, value)
            case nes.ModeIndirectIndexedY: return fmt.Sprintf("%v ($%02X),y", instruction.Name, value)
            case nes.ModeRelative:
                target := instruction.Address + instruction.Length() + uint16(int8(value))
                return fmt.Sprintf("%v $%04X", instruction.Name, target)
        }
    }

    word, err := instruction.OperandWord()
    if err != nil {
        return instruction.String()
    }

    switch instruction.Mode {
        case nes.ModeAbsolute: return fmt.Sprintf("%v $%04X", instruction.Name, word)
        case nes.ModeAbsoluteX: return fmt.Sprintf("%v $%04X,x", instruction.Name, word)
        case nes.ModeAbsoluteY: return fmt.Sprintf("%v $%04X,y", instruction.Name, word)
        case nes.ModeIndirect: return fmt.Sprintf("%v ($%04X)", instruction.Name, word)
    }

    return instruction.String()
}
