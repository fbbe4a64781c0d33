package lib

import (
    "fmt"
)

/* the stack lives in page 1, SP is the low byte */
const StackBase uint16 = 0x100

type Registers struct {
    PC uint16 `json:"pc"`
    SP byte `json:"sp"`
    A byte `json:"a"`
    X byte `json:"x"`
    Y byte `json:"y"`
    Status Status `json:"status"`

    /* opcode of the instruction being executed */
    IR byte `json:"ir"`
    /* low/high byte of the resolved operand of the current instruction. For
     * immediate mode TL is the value itself and TH is 0. Only meaningful while
     * an instruction is executing.
     */
    TL byte `json:"tl"`
    TH byte `json:"th"`
}

/* http://wiki.nesdev.com/w/index.php/CPU_power_up_state */
func StartupRegisters() Registers {
    return Registers{
        SP: 0xfd,
        Status: Status{
            InterruptDisable: true,
        },
    }
}

func (registers *Registers) latch(operand Operand) {
    registers.TL = operand.Low()
    registers.TH = operand.High()
}

func (registers *Registers) String() string {
    return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X %v", registers.A, registers.X, registers.Y, registers.Status.Value(), registers.SP, registers.PC, registers.Status.String())
}
