package lib

import (
    "strings"
)

/* bit positions of the flags when packed into a byte
 * MSB           LSB
 * [7 6 5 4 3 2 1 0]
 * [N V - B D I Z C]
 */
const (
    StatusCarry byte = 1 << 0
    StatusZero byte = 1 << 1
    StatusInterruptDisable byte = 1 << 2
    StatusDecimal byte = 1 << 3
    StatusBreak byte = 1 << 4
    StatusOverflow byte = 1 << 6
    StatusNegative byte = 1 << 7
)

type Status struct {
    Carry bool `json:"carry"`
    Zero bool `json:"zero"`
    InterruptDisable bool `json:"interrupt"`
    Decimal bool `json:"decimal"`
    Break bool `json:"break"`
    Overflow bool `json:"overflow"`
    Negative bool `json:"negative"`
}

/* bit 5 is not modelled and always reads as 0 */
func (status Status) Value() byte {
    var out byte
    if status.Carry {
        out |= StatusCarry
    }
    if status.Zero {
        out |= StatusZero
    }
    if status.InterruptDisable {
        out |= StatusInterruptDisable
    }
    if status.Decimal {
        out |= StatusDecimal
    }
    if status.Break {
        out |= StatusBreak
    }
    if status.Overflow {
        out |= StatusOverflow
    }
    if status.Negative {
        out |= StatusNegative
    }
    return out
}

func (status *Status) FromValue(value byte) {
    status.Carry = value & StatusCarry == StatusCarry
    status.Zero = value & StatusZero == StatusZero
    status.InterruptDisable = value & StatusInterruptDisable == StatusInterruptDisable
    status.Decimal = value & StatusDecimal == StatusDecimal
    status.Break = value & StatusBreak == StatusBreak
    status.Overflow = value & StatusOverflow == StatusOverflow
    status.Negative = value & StatusNegative == StatusNegative
}

/* set zero and negative from a result byte, which almost every instruction does */
func (status *Status) setZN(value byte) {
    status.Zero = value == 0
    status.Negative = value & 0x80 == 0x80
}

func flagRune(set bool, name rune) rune {
    if set {
        return name
    }
    return name + ('a' - 'A')
}

/* NV-BDIZC, upper case when the flag is set */
func (status Status) String() string {
    var out strings.Builder
    out.WriteRune(flagRune(status.Negative, 'N'))
    out.WriteRune(flagRune(status.Overflow, 'V'))
    out.WriteRune('-')
    out.WriteRune(flagRune(status.Break, 'B'))
    out.WriteRune(flagRune(status.Decimal, 'D'))
    out.WriteRune(flagRune(status.InterruptDisable, 'I'))
    out.WriteRune(flagRune(status.Zero, 'Z'))
    out.WriteRune(flagRune(status.Carry, 'C'))
    return out.String()
}
