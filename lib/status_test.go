package lib

import (
    "testing"
)

func TestStatusRoundTrip(test *testing.T){
    for value := 0; value < 256; value++ {
        var status Status
        status.FromValue(byte(value))

        /* bit 5 has no flag behind it */
        if status.Value() != byte(value) & ^byte(0x20) {
            test.Fatalf("status 0x%x came back as 0x%x", value, status.Value())
        }

        var again Status
        again.FromValue(status.Value())
        if again != status {
            test.Fatalf("status 0x%x did not survive a second round trip", value)
        }
    }
}

func TestStatusBits(test *testing.T){
    status := Status{Carry: true, Negative: true}
    if status.Value() != 0x81 {
        test.Fatalf("expected 0x81 but got 0x%x", status.Value())
    }

    status = Status{Zero: true, InterruptDisable: true, Overflow: true}
    if status.Value() != 0x46 {
        test.Fatalf("expected 0x46 but got 0x%x", status.Value())
    }
}

func TestStatusString(test *testing.T){
    status := Status{Negative: true, Zero: true, Carry: true}
    if status.String() != "Nv-bdiZC" {
        test.Fatalf("unexpected string %v", status.String())
    }
}

func TestStartupRegisters(test *testing.T){
    registers := StartupRegisters()
    if registers.SP != 0xfd || !registers.Status.InterruptDisable {
        test.Fatalf("unexpected power up state %v", registers.String())
    }

    if registers.Status.Value() != StatusInterruptDisable {
        test.Fatalf("only interrupt disable should be set, got 0x%x", registers.Status.Value())
    }
}
