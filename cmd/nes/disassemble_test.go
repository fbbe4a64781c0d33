package main

import (
    "bytes"
    "strings"
    "testing"

    nes "github.com/kazzmir/nescore/lib"
)

func TestDisassemble(test *testing.T){
    program := []byte{
        0xa9, 0x01,       // lda #$01
        0x8d, 0x00, 0x02, // sta $0200
        0xb1, 0x66,       // lda ($66),y
        0x0a,             // asl a
        0x02,             // not an opcode
        0xd0, 0xf5,       // bne
        0x6c, 0xfc, 0xff, // jmp ($fffc)
        0x00,             // brk
    }

    cpu := nes.NewCPU(nes.Options{})
    cpu.Memory.Copy(0x8000, program)

    var out bytes.Buffer
    err := Disassemble(cpu, 0x8000, 8, &out)
    if err != nil {
        test.Fatalf("could not disassemble: %v", err)
    }

    expected := []string{
        "8000  lda #$01",
        "8002  sta $0200",
        "8005  lda ($66),y",
        "8007  asl a",
        "8008  .byte $02",
        "8009  bne $8000",
        "800B  jmp ($FFFC)",
        "800E  brk",
    }

    lines := strings.Split(strings.TrimSpace(out.String()), "\n")
    if len(lines) != len(expected) {
        test.Fatalf("expected %v lines but got %v:\n%v", len(expected), len(lines), out.String())
    }

    for i := range expected {
        if lines[i] != expected[i] {
            test.Fatalf("line %v: expected '%v' but got '%v'", i, expected[i], lines[i])
        }
    }
}
