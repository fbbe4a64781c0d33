package lib

import (
    "bytes"
    "errors"
    "strings"
    "testing"

    "github.com/fatih/color"
)

func TestTracer(test *testing.T){
    color.NoColor = true

    var out bytes.Buffer
    tracer := MakeTracer(&out)

    cpu := NewCPU(Options{})
    cpu.AddObserver(tracer)
    cpu.Memory.Copy(0xc000, []byte{0xa9, 0x10, 0x00})
    cpu.PC = 0xc000

    err := cpu.Run()
    if err != nil {
        test.Fatalf("could not run: %v", err)
    }

    lines := strings.Split(strings.TrimSpace(out.String()), "\n")
    if len(lines) != 2 {
        test.Fatalf("expected 2 lines of trace but got %v: %v", len(lines), out.String())
    }

    expected := "C000  A9 10     LDA  A:00 X:00 Y:00 P:04 SP:FD CYC:0"
    if lines[0] != expected {
        test.Fatalf("unexpected trace line\n'%v'\nexpected\n'%v'", lines[0], expected)
    }

    if !strings.HasPrefix(lines[1], "C002  00        BRK  A:10") {
        test.Fatalf("unexpected trace line '%v'", lines[1])
    }

    if tracer.Steps() != 2 {
        test.Fatalf("expected 2 steps but was %v", tracer.Steps())
    }
}

func TestTracerUnknown(test *testing.T){
    color.NoColor = true

    var out bytes.Buffer
    tracer := MakeTracer(&out)
    tracer.Skip = 1

    cpu := NewCPU(Options{})
    cpu.AddObserver(tracer)
    cpu.Memory.Copy(0x0600, []byte{0xea, 0xea, 0x02})
    cpu.PC = 0x0600

    err := cpu.Run()
    var unknown *UnknownOpcodeError
    if !errors.As(err, &unknown) {
        test.Fatalf("expected an unknown opcode but got %v", err)
    }
    tracer.Unknown(unknown)

    lines := strings.Split(strings.TrimSpace(out.String()), "\n")
    if len(lines) != 2 || !strings.HasPrefix(lines[0], "0601  EA") {
        test.Fatalf("unexpected trace %v", out.String())
    }

    if lines[1] != "0602  02        ???" {
        test.Fatalf("unexpected unknown line '%v'", lines[1])
    }
}
