package lib

import (
    "fmt"
)

type Mapper interface {
    /* put the program rom into cpu memory */
    Initialize(cpu *CPU) error
    Name() string
}

func MakeMapper(mapper uint32, programRom []byte) (Mapper, error) {
    switch mapper {
        case 0: return MakeMapper0(programRom), nil
        default: return nil, fmt.Errorf("Unimplemented mapper %v", mapper)
    }
}

/* http://wiki.nesdev.com/w/index.php/NROM */
type Mapper0 struct {
    BankMemory []byte
}

func (mapper *Mapper0) Name() string {
    return "NROM"
}

/* NROM-128 has one 16k bank that shows up at both 0x8000 and 0xc000,
 * NROM-256 has 32k that fills 0x8000-0xffff
 */
func (mapper *Mapper0) Initialize(cpu *CPU) error {
    blocks := len(mapper.BankMemory) / ProgramBlockSize
    if len(mapper.BankMemory) % ProgramBlockSize != 0 {
        return fmt.Errorf("mapper0: program rom is not a multiple of 16k: %v bytes", len(mapper.BankMemory))
    }

    return cpu.LoadProgram(mapper.BankMemory, blocks)
}

func MakeMapper0(bankMemory []byte) Mapper {
    return &Mapper0{
        BankMemory: bankMemory,
    }
}
