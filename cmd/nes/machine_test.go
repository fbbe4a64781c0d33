package main

import (
    "bytes"
    "context"
    "errors"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/kazzmir/nescore/cmd/nes/common"
    nes "github.com/kazzmir/nescore/lib"

    "github.com/fatih/color"
)

/* a one block NROM image with the program at 0x8000 and the reset vector pointing at it */
func writeRom(test *testing.T, program []byte) string {
    image := make([]byte, 16 + nes.ProgramBlockSize)
    copy(image, []byte{'N', 'E', 'S', 0x1a, 1, 0, 0, 0})
    copy(image[16:], program)
    image[16 + nes.ProgramBlockSize - 4] = 0x00
    image[16 + nes.ProgramBlockSize - 3] = 0x80

    path := filepath.Join(test.TempDir(), "test.nes")
    err := os.WriteFile(path, image, 0644)
    if err != nil {
        test.Fatalf("could not write rom: %v", err)
    }
    return path
}

func TestRunRom(test *testing.T){
    color.NoColor = true

    path := writeRom(test, []byte{
        0xa9, 0x05,       // lda #$05
        0x18,             // clc
        0x69, 0x03,       // adc #$03
        0x85, 0x10,       // sta $10
        0x00,             // brk
    })

    var trace bytes.Buffer
    config := common.DefaultConfigData()
    result, err := RunRom(context.Background(), path, config, &trace, 0, false)
    if err != nil {
        test.Fatalf("could not run rom: %v", err)
    }

    if result.Err != nil {
        test.Fatalf("rom did not finish cleanly: %v", result.Err)
    }

    if result.Steps != 5 || result.CPU.A != 8 || result.CPU.ReadByte(0x10) != 8 {
        test.Fatalf("unexpected result %v", result.String())
    }

    if result.CPU.ReadByte(0xc000) != 0xa9 {
        test.Fatalf("expected the program to be mirrored at 0xc000")
    }

    lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
    if len(lines) != 5 || !strings.HasPrefix(lines[0], "8000  A9 05") {
        test.Fatalf("unexpected trace:\n%v", trace.String())
    }
}

func TestRunRomLimit(test *testing.T){
    /* jmp $8000 */
    path := writeRom(test, []byte{0x4c, 0x00, 0x80})

    config := common.DefaultConfigData()
    config.MaxSteps = 2500
    result, err := RunRom(context.Background(), path, config, nil, 0, false)
    if err != nil {
        test.Fatalf("could not run rom: %v", err)
    }

    if !errors.Is(result.Err, nes.ErrStepLimit) || result.Steps != 2500 {
        test.Fatalf("expected to stop at the step limit: %v", result.String())
    }
}

func TestRunMachineCancel(test *testing.T){
    cpu := nes.NewCPU(nes.Options{})
    cpu.Memory.Copy(0x8000, []byte{0x4c, 0x00, 0x80})
    cpu.PC = 0x8000

    quit, cancel := context.WithCancel(context.Background())
    batches := 0
    _, err := RunMachine(quit, cpu, 0, func(cpu *nes.CPU){
        batches += 1
        if batches == 3 {
            cancel()
        }
    })

    if !errors.Is(err, context.Canceled) {
        test.Fatalf("expected a cancel but got %v", err)
    }

    /* three batches plus the final call */
    if batches != 4 {
        test.Fatalf("expected 4 batch calls but got %v", batches)
    }
}

func TestRunRomUnknownOpcode(test *testing.T){
    color.NoColor = true

    path := writeRom(test, []byte{0xea, 0x02})

    var trace bytes.Buffer
    result, err := RunRom(context.Background(), path, common.DefaultConfigData(), &trace, 0, false)
    if err != nil {
        test.Fatalf("could not run rom: %v", err)
    }

    if !errors.Is(result.Err, nes.ErrUnknownOpcode) || result.CPU.PC != 0x8002 {
        test.Fatalf("expected an unknown opcode at 0x8001: %v", result.String())
    }

    if !strings.Contains(trace.String(), "8001  02        ???") {
        test.Fatalf("unknown opcode missing from the trace:\n%v", trace.String())
    }
}

func TestArguments(test *testing.T){
    arguments, err := parseArguments([]string{"-trace", "-steps", "0x100", "a.nes", "-wrap", "roms"})
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }

    if !arguments.Trace || !arguments.HaveMaxSteps || arguments.MaxSteps != 0x100 || !arguments.IndirectPageWrap {
        test.Fatalf("unexpected arguments %+v", arguments)
    }

    if len(arguments.Roms) != 2 || arguments.Roms[0] != "a.nes" || arguments.Roms[1] != "roms" {
        test.Fatalf("unexpected roms %v", arguments.Roms)
    }

    config := applyArguments(common.DefaultConfigData(), arguments)
    if !config.Trace || config.MaxSteps != 0x100 || !config.CPU.IndirectPageWrap {
        test.Fatalf("flags were not applied: %+v", config)
    }

    _, err = parseArguments([]string{"-steps"})
    if err == nil {
        test.Fatalf("expected an error for a missing number")
    }
}
