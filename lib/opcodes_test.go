package lib

import (
    "sync"
    "testing"
)

func TestInstructionTable(test *testing.T){
    table := GetInstructionTable()

    count := 0
    for i := 0; i < 256; i++ {
        description := table.Lookup(InstructionType(i))
        if !description.Valid() {
            if description.Operation != OpUnknown {
                test.Fatalf("empty slot 0x%x has an operation", i)
            }
            continue
        }

        count += 1
        if description.Length != 1 + description.Mode.Operands() {
            test.Fatalf("opcode 0x%x %v: length %v does not match mode %v", i, description.Name, description.Length, description.Mode)
        }

        if description.Operation == OpUnknown {
            test.Fatalf("opcode 0x%x has no operation", i)
        }

        if description.Name != description.Operation.String() {
            test.Fatalf("opcode 0x%x: name %v does not match operation %v", i, description.Name, description.Operation)
        }

        if description.Cycles < 2 || description.Cycles > 7 {
            test.Fatalf("opcode 0x%x: unlikely cycle count %v", i, description.Cycles)
        }
    }

    if count != 151 {
        test.Fatalf("expected 151 documented opcodes but found %v", count)
    }
}

func TestInstructionTableEntries(test *testing.T){
    table := GetInstructionTable()

    check := func(kind InstructionType, operation Operation, mode AddressingMode, length byte){
        description := table.Lookup(kind)
        if description.Operation != operation || description.Mode != mode || description.Length != length {
            test.Fatalf("opcode 0x%x: got %+v", byte(kind), description)
        }
    }

    check(Instruction_LDA_immediate, OpLDA, ModeImmediate, 2)
    check(Instruction_STA_absolute, OpSTA, ModeAbsolute, 3)
    check(Instruction_JMP_indirect, OpJMP, ModeIndirect, 3)
    check(Instruction_BRK, OpBRK, ModeImplied, 1)
    check(Instruction_BNE_relative, OpBNE, ModeRelative, 2)
    check(Instruction_ASL_accumulator, OpASL, ModeAccumulator, 1)
    check(Instruction_LDX_zero_y, OpLDX, ModeZeroPageY, 2)
    check(Instruction_LDA_indirect_y, OpLDA, ModeIndirectIndexedY, 2)
    check(Instruction_CMP_indirect_x, OpCMP, ModeIndexedIndirectX, 2)

    for _, illegal := range []byte{0x02, 0x03, 0x1a, 0x80, 0xff} {
        if table.Lookup(InstructionType(illegal)).Valid() {
            test.Fatalf("opcode 0x%x should not be defined", illegal)
        }
    }
}

func TestInitializeConcurrently(test *testing.T){
    var wait sync.WaitGroup
    tables := make([]*InstructionTable, 8)
    for i := 0; i < len(tables); i++ {
        wait.Add(1)
        go func(index int){
            defer wait.Done()
            tables[index] = GetInstructionTable()
        }(i)
    }
    wait.Wait()

    for _, table := range tables {
        if table != tables[0] {
            test.Fatalf("instruction table built more than once")
        }
    }
}
