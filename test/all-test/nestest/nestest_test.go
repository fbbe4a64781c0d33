package nestest

import (
    "strings"
    "testing"

    nes "github.com/kazzmir/nescore/lib"
)

const sampleLog = `C000  A9 05     LDA #$05                        A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
C002  18        CLC                             A:05 X:00 Y:00 P:24 SP:FD PPU:  0, 27 CYC:9
C003  69 03     ADC #$03                        A:05 X:00 Y:00 P:24 SP:FD PPU:  0, 33 CYC:11
C005  08        PHP                             A:08 X:00 Y:00 P:24 SP:FD PPU:  0, 39 CYC:13
C006  02        ???                             A:08 X:00 Y:00 P:24 SP:FC PPU:  0, 48 CYC:16
`

func makeCPU() *nes.CPU {
    cpu := nes.NewCPU(nes.Options{})
    cpu.Memory.Copy(StartAddress, []byte{0xa9, 0x05, 0x18, 0x69, 0x03, 0x08, 0x02})
    cpu.PC = StartAddress
    cpu.SetStatusByte(0x24)
    return cpu
}

func TestParseLog(test *testing.T){
    golden, err := ParseLog(strings.NewReader(sampleLog))
    if err != nil {
        test.Fatalf("could not parse log: %v", err)
    }

    if len(golden) != 5 {
        test.Fatalf("expected 5 lines but got %v", len(golden))
    }

    if golden[3].PC != 0xc005 || golden[3].A != 0x08 || golden[4].SP != 0xfc || golden[0].P != 0x24 {
        test.Fatalf("unexpected parse %+v", golden)
    }

    _, err = ParseLog(strings.NewReader("C000 nothing here\n"))
    if err == nil {
        test.Fatalf("expected an error for a line without registers")
    }
}

func TestCompare(test *testing.T){
    golden, err := ParseLog(strings.NewReader(sampleLog))
    if err != nil {
        test.Fatalf("could not parse log: %v", err)
    }

    matched, err := Compare(makeCPU(), golden, false)
    if err != nil {
        test.Fatalf("compare failed: %v", err)
    }

    /* the last line is the unknown opcode */
    if matched != 4 {
        test.Fatalf("expected 4 lines to match but got %v", matched)
    }

    golden[2].A = 0x06
    matched, err = Compare(makeCPU(), golden, false)
    if err == nil || matched != 2 {
        test.Fatalf("expected a mismatch at line 3 but got %v matched: %v", matched, err)
    }
}
