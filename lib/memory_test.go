package lib

import (
    "testing"
)

func TestMemoryLoad16(test *testing.T){
    var memory Memory
    memory.Store(0x1000, 0xcd)
    memory.Store(0x1001, 0xab)
    if memory.Load16(0x1000) != 0xabcd {
        test.Fatalf("expected 0xabcd but was 0x%x", memory.Load16(0x1000))
    }

    memory.Store(0xffff, 0x11)
    memory.Store(0x0000, 0x22)
    if memory.Load16(0xffff) != 0x2211 {
        test.Fatalf("expected the read to wrap to 0x0000 but got 0x%x", memory.Load16(0xffff))
    }
}

func TestMemoryCopyWraps(test *testing.T){
    var memory Memory
    memory.Copy(0xfffe, []byte{1, 2, 3})
    if memory.Load(0xfffe) != 1 || memory.Load(0xffff) != 2 || memory.Load(0) != 3 {
        test.Fatalf("copy did not wrap around the address space")
    }

    memory.Clear()
    for i := 0; i < MemorySize; i++ {
        if memory[i] != 0 {
            test.Fatalf("memory at 0x%x not cleared", i)
        }
    }
}

func TestPeekInstruction(test *testing.T){
    cpu := NewCPU(Options{})
    cpu.Memory.Copy(0x700, []byte{0x6c, 0xff, 0x20, 0x02})

    instruction, err := cpu.PeekInstruction(0x700)
    if err != nil {
        test.Fatalf("could not decode: %v", err)
    }

    if instruction.Kind != Instruction_JMP_indirect || instruction.Length() != 3 || instruction.Address != 0x700 {
        test.Fatalf("unexpected instruction %v", instruction.String())
    }

    if instruction.String() != "6C jmp 0xff 0x20" {
        test.Fatalf("unexpected string '%v'", instruction.String())
    }

    if _, err := instruction.OperandByte(); err == nil {
        test.Fatalf("expected an error asking for one operand of a two byte instruction")
    }

    if cpu.PC != 0 {
        test.Fatalf("peek must not move PC")
    }

    _, err = cpu.PeekInstruction(0x703)
    if err == nil {
        test.Fatalf("expected an error for opcode 0x02")
    }
}
