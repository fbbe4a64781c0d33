package lib

import (
    "testing"
)

func TestResolveAdvancesPC(test *testing.T){
    modes := []AddressingMode{
        ModeImplied, ModeAccumulator, ModeImmediate, ModeZeroPage, ModeZeroPageX,
        ModeZeroPageY, ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect,
        ModeIndexedIndirectX, ModeIndirectIndexedY, ModeRelative,
    }

    for _, mode := range modes {
        cpu := NewCPU(Options{})
        cpu.PC = 0x3000
        cpu.resolve(mode)
        if cpu.PC != 0x3000 + uint16(mode.Operands()) {
            test.Fatalf("mode %v: expected PC 0x%x but was 0x%x", mode, 0x3000 + uint16(mode.Operands()), cpu.PC)
        }
    }
}

func TestResolveImmediate(test *testing.T){
    cpu := NewCPU(Options{})
    cpu.PC = 0x3000
    cpu.WriteByte(0x3000, 0x42)

    operand := cpu.resolve(ModeImmediate)
    if operand.Kind != OperandImmediate || operand.Value != 0x42 {
        test.Fatalf("expected immediate 0x42 but got %+v", operand)
    }

    if operand.Low() != 0x42 || operand.High() != 0 {
        test.Fatalf("expected TL=42 TH=00 but got %02x %02x", operand.Low(), operand.High())
    }
}

func TestResolveZeroPageWrap(test *testing.T){
    cpu := NewCPU(Options{})
    cpu.PC = 0x3000
    cpu.WriteByte(0x3000, 0xc0)
    cpu.X = 0x60

    operand := cpu.resolve(ModeZeroPageX)
    if operand.Address != 0x20 {
        test.Fatalf("expected zero page address to wrap to 0x20 but was 0x%x", operand.Address)
    }

    cpu.PC = 0x3000
    cpu.Y = 0xff
    operand = cpu.resolve(ModeZeroPageY)
    if operand.Address != 0xbf {
        test.Fatalf("expected zero page address 0xbf but was 0x%x", operand.Address)
    }
}

func TestResolveAbsolute(test *testing.T){
    cpu := NewCPU(Options{})
    cpu.PC = 0x3000
    cpu.Memory.Copy(0x3000, []byte{0x34, 0x12})
    cpu.X = 0x10
    cpu.Y = 0xff

    if operand := cpu.resolve(ModeAbsolute); operand.Address != 0x1234 {
        test.Fatalf("expected 0x1234 but was 0x%x", operand.Address)
    }

    cpu.PC = 0x3000
    if operand := cpu.resolve(ModeAbsoluteX); operand.Address != 0x1244 {
        test.Fatalf("expected 0x1244 but was 0x%x", operand.Address)
    }

    /* indexing may cross into the next page */
    cpu.PC = 0x3000
    if operand := cpu.resolve(ModeAbsoluteY); operand.Address != 0x1333 {
        test.Fatalf("expected 0x1333 but was 0x%x", operand.Address)
    }
}

func TestResolveIndirectIndexed(test *testing.T){
    cpu := NewCPU(Options{})
    cpu.PC = 0x3000
    cpu.WriteByte(0x3000, 0x66)
    cpu.WriteByte(0x66, 0x55)
    cpu.WriteByte(0x67, 0x66)
    cpu.Y = 0x32

    operand := cpu.resolve(ModeIndirectIndexedY)
    cpu.latch(operand)

    if cpu.TL != 0x87 || cpu.TH != 0x66 {
        test.Fatalf("expected TL=87 TH=66 but was TL=%02x TH=%02x", cpu.TL, cpu.TH)
    }
}

func TestResolveIndexedIndirect(test *testing.T){
    cpu := NewCPU(Options{})
    cpu.PC = 0x3000
    cpu.WriteByte(0x3000, 0xfe)
    cpu.X = 0x01
    /* pointer at 0xff with its high byte read from 0x00 */
    cpu.WriteByte(0xff, 0x78)
    cpu.WriteByte(0x00, 0x56)

    operand := cpu.resolve(ModeIndexedIndirectX)
    if operand.Address != 0x5678 {
        test.Fatalf("expected 0x5678 but was 0x%x", operand.Address)
    }
}

func TestResolveRelative(test *testing.T){
    cpu := NewCPU(Options{})
    cpu.PC = 0x3000
    cpu.WriteByte(0x3000, 0xfe)

    /* -2 from the byte after the offset lands back on the branch */
    operand := cpu.resolve(ModeRelative)
    if operand.Address != 0x2fff {
        test.Fatalf("expected 0x2fff but was 0x%x", operand.Address)
    }

    cpu.PC = 0x3000
    cpu.WriteByte(0x3000, 0x10)
    operand = cpu.resolve(ModeRelative)
    if operand.Address != 0x3011 {
        test.Fatalf("expected 0x3011 but was 0x%x", operand.Address)
    }
}

func TestIndirectPageWrap(test *testing.T){
    setup := func(cpu *CPU){
        cpu.PC = 0x3000
        cpu.Memory.Copy(0x3000, []byte{0xff, 0x20})
        cpu.WriteByte(0x20ff, 0x34)
        cpu.WriteByte(0x2100, 0x12)
        cpu.WriteByte(0x2000, 0x56)
    }

    plain := NewCPU(Options{})
    setup(plain)
    if operand := plain.resolve(ModeIndirect); operand.Address != 0x1234 {
        test.Fatalf("expected 0x1234 without page wrap but was 0x%x", operand.Address)
    }

    wrap := NewCPU(Options{IndirectPageWrap: true})
    setup(wrap)
    if operand := wrap.resolve(ModeIndirect); operand.Address != 0x5634 {
        test.Fatalf("expected 0x5634 with page wrap but was 0x%x", operand.Address)
    }
}
