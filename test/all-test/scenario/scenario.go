package scenario

import (
    "errors"
    "fmt"

    nes "github.com/kazzmir/nescore/lib"
    test_utils "github.com/kazzmir/nescore/test/all-test/utils"
)

/* Small programs with a known end state. Each one is stepped a fixed number of
 * times from 0x8000 and then the registers are compared.
 */
type Scenario struct {
    Name string
    Program []byte
    Steps int
    /* where PC should end up, 0 means just past the program */
    EndPC uint16
    Setup func(cpu *nes.CPU)
    Check func(cpu *nes.CPU) error
}

func expectRegister(name string, got byte, expected byte) error {
    if got != expected {
        return fmt.Errorf("%v was 0x%02x, expected 0x%02x", name, got, expected)
    }
    return nil
}

func expectFlags(cpu *nes.CPU, carry bool, zero bool, negative bool) error {
    status := cpu.Status
    if status.Carry != carry || status.Zero != zero || status.Negative != negative {
        return fmt.Errorf("flags were %v", status.String())
    }
    return nil
}

var Scenarios = []Scenario{
    Scenario{
        Name: "immediate add",
        Program: []byte{0xa9, 0x05, 0x18, 0x69, 0x03},
        Steps: 3,
        Check: func(cpu *nes.CPU) error {
            return errors.Join(
                expectRegister("A", cpu.A, 8),
                expectFlags(cpu, false, false, false),
            )
        },
    },
    Scenario{
        Name: "compare immediate",
        Program: []byte{0xc9, 0x01},
        Steps: 1,
        Setup: func(cpu *nes.CPU){
            cpu.A = 2
        },
        Check: func(cpu *nes.CPU) error {
            return expectFlags(cpu, true, false, false)
        },
    },
    Scenario{
        Name: "indirect indexed",
        Program: []byte{0xb1, 0x66},
        Steps: 1,
        Setup: func(cpu *nes.CPU){
            cpu.WriteByte(0x66, 0x55)
            cpu.WriteByte(0x67, 0x66)
            cpu.WriteByte(0x6687, 0x42)
            cpu.Y = 0x32
        },
        Check: func(cpu *nes.CPU) error {
            return errors.Join(
                expectRegister("TL", cpu.TL, 0x87),
                expectRegister("TH", cpu.TH, 0x66),
                expectRegister("A", cpu.A, 0x42),
            )
        },
    },
    Scenario{
        Name: "zero page wrap",
        Program: []byte{0xa2, 0x60, 0xb5, 0xc0},
        Steps: 2,
        Setup: func(cpu *nes.CPU){
            cpu.WriteByte(0x20, 0x99)
        },
        Check: func(cpu *nes.CPU) error {
            return errors.Join(
                expectRegister("A", cpu.A, 0x99),
                expectFlags(cpu, false, false, true),
            )
        },
    },
    Scenario{
        Name: "subroutine",
        Program: []byte{0x20, 0x05, 0x80, 0xe8, 0x00, 0xa2, 0x41, 0x60},
        Steps: 4,
        EndPC: 0x8004,
        Check: func(cpu *nes.CPU) error {
            return errors.Join(
                expectRegister("X", cpu.X, 0x42),
                expectRegister("SP", cpu.SP, 0xfd),
            )
        },
    },
}

func (scenario *Scenario) Run() error {
    cpu := nes.NewCPU(nes.Options{})
    cpu.Memory.Copy(0x8000, scenario.Program)
    cpu.PC = 0x8000
    if scenario.Setup != nil {
        scenario.Setup(cpu)
    }

    for i := 0; i < scenario.Steps; i++ {
        err := cpu.Step()
        if err != nil {
            return err
        }
    }

    expectedPC := uint16(0x8000 + len(scenario.Program))
    if scenario.EndPC != 0 {
        expectedPC = scenario.EndPC
    }
    if cpu.PC != expectedPC {
        return fmt.Errorf("PC was 0x%04x, expected 0x%04x", cpu.PC, expectedPC)
    }

    return scenario.Check(cpu)
}

/* an opcode with no table entry must only move PC past itself */
func unknownOpcode() error {
    cpu := nes.NewCPU(nes.Options{})
    cpu.PC = 0x8000
    cpu.WriteByte(0x8000, 0x02)
    before := cpu.Registers

    err := cpu.Step()
    if !errors.Is(err, nes.ErrUnknownOpcode) {
        return fmt.Errorf("expected an unknown opcode error but got %v", err)
    }

    before.PC += 1
    if cpu.Registers != before {
        return fmt.Errorf("registers changed: %v", cpu.Registers.String())
    }

    return nil
}

func Run(debug bool) (bool, error) {
    allOk := true
    for _, scenario := range Scenarios {
        err := scenario.Run()
        allOk = test_utils.Report(scenario.Name, err == nil, err) && allOk
    }

    err := unknownOpcode()
    allOk = test_utils.Report("unknown opcode", err == nil, err) && allOk

    return allOk, nil
}
