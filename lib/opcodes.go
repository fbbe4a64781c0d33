package lib

import (
    "fmt"
    "sync"
)

/* opcode references
 * https://www.masswerk.at/6502/6502_instruction_set.html
 * http://www.6502.org/tutorials/6502opcodes.html
 * http://wiki.nesdev.com/w/index.php/CPU_unofficial_opcodes
 *
 * Only the documented opcodes are in the table. Everything else decodes as an
 * unknown opcode.
 */

type InstructionType byte

const (
    Instruction_BRK              InstructionType = 0x00
    Instruction_ORA_indirect_x   InstructionType = 0x01
    Instruction_ORA_zero         InstructionType = 0x05
    Instruction_ASL_zero         InstructionType = 0x06
    Instruction_PHP              InstructionType = 0x08
    Instruction_ORA_immediate    InstructionType = 0x09
    Instruction_ASL_accumulator  InstructionType = 0x0a
    Instruction_ORA_absolute     InstructionType = 0x0d
    Instruction_ASL_absolute     InstructionType = 0x0e
    Instruction_BPL_relative     InstructionType = 0x10
    Instruction_ORA_indirect_y   InstructionType = 0x11
    Instruction_ORA_zero_x       InstructionType = 0x15
    Instruction_ASL_zero_x       InstructionType = 0x16
    Instruction_CLC              InstructionType = 0x18
    Instruction_ORA_absolute_y   InstructionType = 0x19
    Instruction_ORA_absolute_x   InstructionType = 0x1d
    Instruction_ASL_absolute_x   InstructionType = 0x1e
    Instruction_JSR_absolute     InstructionType = 0x20
    Instruction_AND_indirect_x   InstructionType = 0x21
    Instruction_BIT_zero         InstructionType = 0x24
    Instruction_AND_zero         InstructionType = 0x25
    Instruction_ROL_zero         InstructionType = 0x26
    Instruction_PLP              InstructionType = 0x28
    Instruction_AND_immediate    InstructionType = 0x29
    Instruction_ROL_accumulator  InstructionType = 0x2a
    Instruction_BIT_absolute     InstructionType = 0x2c
    Instruction_AND_absolute     InstructionType = 0x2d
    Instruction_ROL_absolute     InstructionType = 0x2e
    Instruction_BMI_relative     InstructionType = 0x30
    Instruction_AND_indirect_y   InstructionType = 0x31
    Instruction_AND_zero_x       InstructionType = 0x35
    Instruction_ROL_zero_x       InstructionType = 0x36
    Instruction_SEC              InstructionType = 0x38
    Instruction_AND_absolute_y   InstructionType = 0x39
    Instruction_AND_absolute_x   InstructionType = 0x3d
    Instruction_ROL_absolute_x   InstructionType = 0x3e
    Instruction_RTI              InstructionType = 0x40
    Instruction_EOR_indirect_x   InstructionType = 0x41
    Instruction_EOR_zero         InstructionType = 0x45
    Instruction_LSR_zero         InstructionType = 0x46
    Instruction_PHA              InstructionType = 0x48
    Instruction_EOR_immediate    InstructionType = 0x49
    Instruction_LSR_accumulator  InstructionType = 0x4a
    Instruction_JMP_absolute     InstructionType = 0x4c
    Instruction_EOR_absolute     InstructionType = 0x4d
    Instruction_LSR_absolute     InstructionType = 0x4e
    Instruction_BVC_relative     InstructionType = 0x50
    Instruction_EOR_indirect_y   InstructionType = 0x51
    Instruction_EOR_zero_x       InstructionType = 0x55
    Instruction_LSR_zero_x       InstructionType = 0x56
    Instruction_CLI              InstructionType = 0x58
    Instruction_EOR_absolute_y   InstructionType = 0x59
    Instruction_EOR_absolute_x   InstructionType = 0x5d
    Instruction_LSR_absolute_x   InstructionType = 0x5e
    Instruction_RTS              InstructionType = 0x60
    Instruction_ADC_indirect_x   InstructionType = 0x61
    Instruction_ADC_zero         InstructionType = 0x65
    Instruction_ROR_zero         InstructionType = 0x66
    Instruction_PLA              InstructionType = 0x68
    Instruction_ADC_immediate    InstructionType = 0x69
    Instruction_ROR_accumulator  InstructionType = 0x6a
    Instruction_JMP_indirect     InstructionType = 0x6c
    Instruction_ADC_absolute     InstructionType = 0x6d
    Instruction_ROR_absolute     InstructionType = 0x6e
    Instruction_BVS_relative     InstructionType = 0x70
    Instruction_ADC_indirect_y   InstructionType = 0x71
    Instruction_ADC_zero_x       InstructionType = 0x75
    Instruction_ROR_zero_x       InstructionType = 0x76
    Instruction_SEI              InstructionType = 0x78
    Instruction_ADC_absolute_y   InstructionType = 0x79
    Instruction_ADC_absolute_x   InstructionType = 0x7d
    Instruction_ROR_absolute_x   InstructionType = 0x7e
    Instruction_STA_indirect_x   InstructionType = 0x81
    Instruction_STY_zero         InstructionType = 0x84
    Instruction_STA_zero         InstructionType = 0x85
    Instruction_STX_zero         InstructionType = 0x86
    Instruction_DEY              InstructionType = 0x88
    Instruction_TXA              InstructionType = 0x8a
    Instruction_STY_absolute     InstructionType = 0x8c
    Instruction_STA_absolute     InstructionType = 0x8d
    Instruction_STX_absolute     InstructionType = 0x8e
    Instruction_BCC_relative     InstructionType = 0x90
    Instruction_STA_indirect_y   InstructionType = 0x91
    Instruction_STY_zero_x       InstructionType = 0x94
    Instruction_STA_zero_x       InstructionType = 0x95
    Instruction_STX_zero_y       InstructionType = 0x96
    Instruction_TYA              InstructionType = 0x98
    Instruction_STA_absolute_y   InstructionType = 0x99
    Instruction_TXS              InstructionType = 0x9a
    Instruction_STA_absolute_x   InstructionType = 0x9d
    Instruction_LDY_immediate    InstructionType = 0xa0
    Instruction_LDA_indirect_x   InstructionType = 0xa1
    Instruction_LDX_immediate    InstructionType = 0xa2
    Instruction_LDY_zero         InstructionType = 0xa4
    Instruction_LDA_zero         InstructionType = 0xa5
    Instruction_LDX_zero         InstructionType = 0xa6
    Instruction_TAY              InstructionType = 0xa8
    Instruction_LDA_immediate    InstructionType = 0xa9
    Instruction_TAX              InstructionType = 0xaa
    Instruction_LDY_absolute     InstructionType = 0xac
    Instruction_LDA_absolute     InstructionType = 0xad
    Instruction_LDX_absolute     InstructionType = 0xae
    Instruction_BCS_relative     InstructionType = 0xb0
    Instruction_LDA_indirect_y   InstructionType = 0xb1
    Instruction_LDY_zero_x       InstructionType = 0xb4
    Instruction_LDA_zero_x       InstructionType = 0xb5
    Instruction_LDX_zero_y       InstructionType = 0xb6
    Instruction_CLV              InstructionType = 0xb8
    Instruction_LDA_absolute_y   InstructionType = 0xb9
    Instruction_TSX              InstructionType = 0xba
    Instruction_LDY_absolute_x   InstructionType = 0xbc
    Instruction_LDA_absolute_x   InstructionType = 0xbd
    Instruction_LDX_absolute_y   InstructionType = 0xbe
    Instruction_CPY_immediate    InstructionType = 0xc0
    Instruction_CMP_indirect_x   InstructionType = 0xc1
    Instruction_CPY_zero         InstructionType = 0xc4
    Instruction_CMP_zero         InstructionType = 0xc5
    Instruction_DEC_zero         InstructionType = 0xc6
    Instruction_INY              InstructionType = 0xc8
    Instruction_CMP_immediate    InstructionType = 0xc9
    Instruction_DEX              InstructionType = 0xca
    Instruction_CPY_absolute     InstructionType = 0xcc
    Instruction_CMP_absolute     InstructionType = 0xcd
    Instruction_DEC_absolute     InstructionType = 0xce
    Instruction_BNE_relative     InstructionType = 0xd0
    Instruction_CMP_indirect_y   InstructionType = 0xd1
    Instruction_CMP_zero_x       InstructionType = 0xd5
    Instruction_DEC_zero_x       InstructionType = 0xd6
    Instruction_CLD              InstructionType = 0xd8
    Instruction_CMP_absolute_y   InstructionType = 0xd9
    Instruction_CMP_absolute_x   InstructionType = 0xdd
    Instruction_DEC_absolute_x   InstructionType = 0xde
    Instruction_CPX_immediate    InstructionType = 0xe0
    Instruction_SBC_indirect_x   InstructionType = 0xe1
    Instruction_CPX_zero         InstructionType = 0xe4
    Instruction_SBC_zero         InstructionType = 0xe5
    Instruction_INC_zero         InstructionType = 0xe6
    Instruction_INX              InstructionType = 0xe8
    Instruction_SBC_immediate    InstructionType = 0xe9
    Instruction_NOP              InstructionType = 0xea
    Instruction_CPX_absolute     InstructionType = 0xec
    Instruction_SBC_absolute     InstructionType = 0xed
    Instruction_INC_absolute     InstructionType = 0xee
    Instruction_BEQ_relative     InstructionType = 0xf0
    Instruction_SBC_indirect_y   InstructionType = 0xf1
    Instruction_SBC_zero_x       InstructionType = 0xf5
    Instruction_INC_zero_x       InstructionType = 0xf6
    Instruction_SED              InstructionType = 0xf8
    Instruction_SBC_absolute_y   InstructionType = 0xf9
    Instruction_SBC_absolute_x   InstructionType = 0xfd
    Instruction_INC_absolute_x   InstructionType = 0xfe
)

type InstructionDescription struct {
    Name string
    /* total size in bytes, including the opcode. 0 means the slot is empty */
    Length byte
    /* base cycle cost, page crossing and taken branch penalties are not counted */
    Cycles byte
    Mode AddressingMode
    Operation Operation
}

func (description InstructionDescription) Valid() bool {
    return description.Length != 0
}

func (description InstructionDescription) Operands() byte {
    if description.Length == 0 {
        return 0
    }
    return description.Length - 1
}

type InstructionTable [256]InstructionDescription

func (table *InstructionTable) Lookup(kind InstructionType) InstructionDescription {
    return table[kind]
}

func (table *InstructionTable) add(kind InstructionType, operation Operation, mode AddressingMode, cycles byte){
    if table[kind].Valid() {
        panic(fmt.Sprintf("internal error: opcode 0x%02x is already defined as %v", byte(kind), table[kind].Name))
    }

    table[kind] = InstructionDescription{
        Name: operation.String(),
        Length: 1 + mode.Operands(),
        Cycles: cycles,
        Mode: mode,
        Operation: operation,
    }
}

func makeInstructionTable() *InstructionTable {
    var table InstructionTable

    table.add(Instruction_ADC_immediate, OpADC, ModeImmediate, 2)
    table.add(Instruction_ADC_zero, OpADC, ModeZeroPage, 3)
    table.add(Instruction_ADC_zero_x, OpADC, ModeZeroPageX, 4)
    table.add(Instruction_ADC_absolute, OpADC, ModeAbsolute, 4)
    table.add(Instruction_ADC_absolute_x, OpADC, ModeAbsoluteX, 4)
    table.add(Instruction_ADC_absolute_y, OpADC, ModeAbsoluteY, 4)
    table.add(Instruction_ADC_indirect_x, OpADC, ModeIndexedIndirectX, 6)
    table.add(Instruction_ADC_indirect_y, OpADC, ModeIndirectIndexedY, 5)

    table.add(Instruction_AND_immediate, OpAND, ModeImmediate, 2)
    table.add(Instruction_AND_zero, OpAND, ModeZeroPage, 3)
    table.add(Instruction_AND_zero_x, OpAND, ModeZeroPageX, 4)
    table.add(Instruction_AND_absolute, OpAND, ModeAbsolute, 4)
    table.add(Instruction_AND_absolute_x, OpAND, ModeAbsoluteX, 4)
    table.add(Instruction_AND_absolute_y, OpAND, ModeAbsoluteY, 4)
    table.add(Instruction_AND_indirect_x, OpAND, ModeIndexedIndirectX, 6)
    table.add(Instruction_AND_indirect_y, OpAND, ModeIndirectIndexedY, 5)

    table.add(Instruction_ASL_accumulator, OpASL, ModeAccumulator, 2)
    table.add(Instruction_ASL_zero, OpASL, ModeZeroPage, 5)
    table.add(Instruction_ASL_zero_x, OpASL, ModeZeroPageX, 6)
    table.add(Instruction_ASL_absolute, OpASL, ModeAbsolute, 6)
    table.add(Instruction_ASL_absolute_x, OpASL, ModeAbsoluteX, 7)

    table.add(Instruction_BCC_relative, OpBCC, ModeRelative, 2)

    table.add(Instruction_BCS_relative, OpBCS, ModeRelative, 2)

    table.add(Instruction_BEQ_relative, OpBEQ, ModeRelative, 2)

    table.add(Instruction_BIT_zero, OpBIT, ModeZeroPage, 3)
    table.add(Instruction_BIT_absolute, OpBIT, ModeAbsolute, 4)

    table.add(Instruction_BMI_relative, OpBMI, ModeRelative, 2)

    table.add(Instruction_BNE_relative, OpBNE, ModeRelative, 2)

    table.add(Instruction_BPL_relative, OpBPL, ModeRelative, 2)

    table.add(Instruction_BRK, OpBRK, ModeImplied, 7)

    table.add(Instruction_BVC_relative, OpBVC, ModeRelative, 2)

    table.add(Instruction_BVS_relative, OpBVS, ModeRelative, 2)

    table.add(Instruction_CLC, OpCLC, ModeImplied, 2)

    table.add(Instruction_CLD, OpCLD, ModeImplied, 2)

    table.add(Instruction_CLI, OpCLI, ModeImplied, 2)

    table.add(Instruction_CLV, OpCLV, ModeImplied, 2)

    table.add(Instruction_CMP_immediate, OpCMP, ModeImmediate, 2)
    table.add(Instruction_CMP_zero, OpCMP, ModeZeroPage, 3)
    table.add(Instruction_CMP_zero_x, OpCMP, ModeZeroPageX, 4)
    table.add(Instruction_CMP_absolute, OpCMP, ModeAbsolute, 4)
    table.add(Instruction_CMP_absolute_x, OpCMP, ModeAbsoluteX, 4)
    table.add(Instruction_CMP_absolute_y, OpCMP, ModeAbsoluteY, 4)
    table.add(Instruction_CMP_indirect_x, OpCMP, ModeIndexedIndirectX, 6)
    table.add(Instruction_CMP_indirect_y, OpCMP, ModeIndirectIndexedY, 5)

    table.add(Instruction_CPX_immediate, OpCPX, ModeImmediate, 2)
    table.add(Instruction_CPX_zero, OpCPX, ModeZeroPage, 3)
    table.add(Instruction_CPX_absolute, OpCPX, ModeAbsolute, 4)

    table.add(Instruction_CPY_immediate, OpCPY, ModeImmediate, 2)
    table.add(Instruction_CPY_zero, OpCPY, ModeZeroPage, 3)
    table.add(Instruction_CPY_absolute, OpCPY, ModeAbsolute, 4)

    table.add(Instruction_DEC_zero, OpDEC, ModeZeroPage, 5)
    table.add(Instruction_DEC_zero_x, OpDEC, ModeZeroPageX, 6)
    table.add(Instruction_DEC_absolute, OpDEC, ModeAbsolute, 6)
    table.add(Instruction_DEC_absolute_x, OpDEC, ModeAbsoluteX, 7)

    table.add(Instruction_DEX, OpDEX, ModeImplied, 2)

    table.add(Instruction_DEY, OpDEY, ModeImplied, 2)

    table.add(Instruction_EOR_immediate, OpEOR, ModeImmediate, 2)
    table.add(Instruction_EOR_zero, OpEOR, ModeZeroPage, 3)
    table.add(Instruction_EOR_zero_x, OpEOR, ModeZeroPageX, 4)
    table.add(Instruction_EOR_absolute, OpEOR, ModeAbsolute, 4)
    table.add(Instruction_EOR_absolute_x, OpEOR, ModeAbsoluteX, 4)
    table.add(Instruction_EOR_absolute_y, OpEOR, ModeAbsoluteY, 4)
    table.add(Instruction_EOR_indirect_x, OpEOR, ModeIndexedIndirectX, 6)
    table.add(Instruction_EOR_indirect_y, OpEOR, ModeIndirectIndexedY, 5)

    table.add(Instruction_INC_zero, OpINC, ModeZeroPage, 5)
    table.add(Instruction_INC_zero_x, OpINC, ModeZeroPageX, 6)
    table.add(Instruction_INC_absolute, OpINC, ModeAbsolute, 6)
    table.add(Instruction_INC_absolute_x, OpINC, ModeAbsoluteX, 7)

    table.add(Instruction_INX, OpINX, ModeImplied, 2)

    table.add(Instruction_INY, OpINY, ModeImplied, 2)

    table.add(Instruction_JMP_absolute, OpJMP, ModeAbsolute, 3)
    table.add(Instruction_JMP_indirect, OpJMP, ModeIndirect, 5)

    table.add(Instruction_JSR_absolute, OpJSR, ModeAbsolute, 6)

    table.add(Instruction_LDA_immediate, OpLDA, ModeImmediate, 2)
    table.add(Instruction_LDA_zero, OpLDA, ModeZeroPage, 3)
    table.add(Instruction_LDA_zero_x, OpLDA, ModeZeroPageX, 4)
    table.add(Instruction_LDA_absolute, OpLDA, ModeAbsolute, 4)
    table.add(Instruction_LDA_absolute_x, OpLDA, ModeAbsoluteX, 4)
    table.add(Instruction_LDA_absolute_y, OpLDA, ModeAbsoluteY, 4)
    table.add(Instruction_LDA_indirect_x, OpLDA, ModeIndexedIndirectX, 6)
    table.add(Instruction_LDA_indirect_y, OpLDA, ModeIndirectIndexedY, 5)

    table.add(Instruction_LDX_immediate, OpLDX, ModeImmediate, 2)
    table.add(Instruction_LDX_zero, OpLDX, ModeZeroPage, 3)
    table.add(Instruction_LDX_zero_y, OpLDX, ModeZeroPageY, 4)
    table.add(Instruction_LDX_absolute, OpLDX, ModeAbsolute, 4)
    table.add(Instruction_LDX_absolute_y, OpLDX, ModeAbsoluteY, 4)

    table.add(Instruction_LDY_immediate, OpLDY, ModeImmediate, 2)
    table.add(Instruction_LDY_zero, OpLDY, ModeZeroPage, 3)
    table.add(Instruction_LDY_zero_x, OpLDY, ModeZeroPageX, 4)
    table.add(Instruction_LDY_absolute, OpLDY, ModeAbsolute, 4)
    table.add(Instruction_LDY_absolute_x, OpLDY, ModeAbsoluteX, 4)

    table.add(Instruction_LSR_accumulator, OpLSR, ModeAccumulator, 2)
    table.add(Instruction_LSR_zero, OpLSR, ModeZeroPage, 5)
    table.add(Instruction_LSR_zero_x, OpLSR, ModeZeroPageX, 6)
    table.add(Instruction_LSR_absolute, OpLSR, ModeAbsolute, 6)
    table.add(Instruction_LSR_absolute_x, OpLSR, ModeAbsoluteX, 7)

    table.add(Instruction_NOP, OpNOP, ModeImplied, 2)

    table.add(Instruction_ORA_immediate, OpORA, ModeImmediate, 2)
    table.add(Instruction_ORA_zero, OpORA, ModeZeroPage, 3)
    table.add(Instruction_ORA_zero_x, OpORA, ModeZeroPageX, 4)
    table.add(Instruction_ORA_absolute, OpORA, ModeAbsolute, 4)
    table.add(Instruction_ORA_absolute_x, OpORA, ModeAbsoluteX, 4)
    table.add(Instruction_ORA_absolute_y, OpORA, ModeAbsoluteY, 4)
    table.add(Instruction_ORA_indirect_x, OpORA, ModeIndexedIndirectX, 6)
    table.add(Instruction_ORA_indirect_y, OpORA, ModeIndirectIndexedY, 5)

    table.add(Instruction_PHA, OpPHA, ModeImplied, 3)

    table.add(Instruction_PHP, OpPHP, ModeImplied, 3)

    table.add(Instruction_PLA, OpPLA, ModeImplied, 4)

    table.add(Instruction_PLP, OpPLP, ModeImplied, 4)

    table.add(Instruction_ROL_accumulator, OpROL, ModeAccumulator, 2)
    table.add(Instruction_ROL_zero, OpROL, ModeZeroPage, 5)
    table.add(Instruction_ROL_zero_x, OpROL, ModeZeroPageX, 6)
    table.add(Instruction_ROL_absolute, OpROL, ModeAbsolute, 6)
    table.add(Instruction_ROL_absolute_x, OpROL, ModeAbsoluteX, 7)

    table.add(Instruction_ROR_accumulator, OpROR, ModeAccumulator, 2)
    table.add(Instruction_ROR_zero, OpROR, ModeZeroPage, 5)
    table.add(Instruction_ROR_zero_x, OpROR, ModeZeroPageX, 6)
    table.add(Instruction_ROR_absolute, OpROR, ModeAbsolute, 6)
    table.add(Instruction_ROR_absolute_x, OpROR, ModeAbsoluteX, 7)

    table.add(Instruction_RTI, OpRTI, ModeImplied, 6)

    table.add(Instruction_RTS, OpRTS, ModeImplied, 6)

    table.add(Instruction_SBC_immediate, OpSBC, ModeImmediate, 2)
    table.add(Instruction_SBC_zero, OpSBC, ModeZeroPage, 3)
    table.add(Instruction_SBC_zero_x, OpSBC, ModeZeroPageX, 4)
    table.add(Instruction_SBC_absolute, OpSBC, ModeAbsolute, 4)
    table.add(Instruction_SBC_absolute_x, OpSBC, ModeAbsoluteX, 4)
    table.add(Instruction_SBC_absolute_y, OpSBC, ModeAbsoluteY, 4)
    table.add(Instruction_SBC_indirect_x, OpSBC, ModeIndexedIndirectX, 6)
    table.add(Instruction_SBC_indirect_y, OpSBC, ModeIndirectIndexedY, 5)

    table.add(Instruction_SEC, OpSEC, ModeImplied, 2)

    table.add(Instruction_SED, OpSED, ModeImplied, 2)

    table.add(Instruction_SEI, OpSEI, ModeImplied, 2)

    table.add(Instruction_STA_zero, OpSTA, ModeZeroPage, 3)
    table.add(Instruction_STA_zero_x, OpSTA, ModeZeroPageX, 4)
    table.add(Instruction_STA_absolute, OpSTA, ModeAbsolute, 4)
    table.add(Instruction_STA_absolute_x, OpSTA, ModeAbsoluteX, 5)
    table.add(Instruction_STA_absolute_y, OpSTA, ModeAbsoluteY, 5)
    table.add(Instruction_STA_indirect_x, OpSTA, ModeIndexedIndirectX, 6)
    table.add(Instruction_STA_indirect_y, OpSTA, ModeIndirectIndexedY, 6)

    table.add(Instruction_STX_zero, OpSTX, ModeZeroPage, 3)
    table.add(Instruction_STX_zero_y, OpSTX, ModeZeroPageY, 4)
    table.add(Instruction_STX_absolute, OpSTX, ModeAbsolute, 4)

    table.add(Instruction_STY_zero, OpSTY, ModeZeroPage, 3)
    table.add(Instruction_STY_zero_x, OpSTY, ModeZeroPageX, 4)
    table.add(Instruction_STY_absolute, OpSTY, ModeAbsolute, 4)

    table.add(Instruction_TAX, OpTAX, ModeImplied, 2)

    table.add(Instruction_TAY, OpTAY, ModeImplied, 2)

    table.add(Instruction_TSX, OpTSX, ModeImplied, 2)

    table.add(Instruction_TXA, OpTXA, ModeImplied, 2)

    table.add(Instruction_TXS, OpTXS, ModeImplied, 2)

    table.add(Instruction_TYA, OpTYA, ModeImplied, 2)

    return &table
}

var instructionTable *InstructionTable
var instructionTableOnce sync.Once

/* Initialize builds the opcode table. It is safe to call more than once and
 * from multiple goroutines, the table is only ever built once and is never
 * modified afterwards.
 */
func Initialize() {
    instructionTableOnce.Do(func(){
        instructionTable = makeInstructionTable()
    })
}

func GetInstructionTable() *InstructionTable {
    Initialize()
    return instructionTable
}
