package nestest

import (
    "bufio"
    "errors"
    "fmt"
    "io"
    "log"
    "os"
    "strconv"
    "strings"

    nes "github.com/kazzmir/nescore/lib"
    test_utils "github.com/kazzmir/nescore/test/all-test/utils"
)

/* Run nestest.nes in its automated mode (start at 0xc000) and compare the
 * registers before every instruction with nestest.log. Only the documented
 * opcodes are checked, the run ends at the first opcode the cpu does not know.
 * Put the rom and log in test-roms/.
 */

const RomPath = "test-roms/nestest.nes"
const LogPath = "test-roms/nestest.log"
const StartAddress = 0xc000

/* the break flag and bit 5 only exist on the stack, not in the register */
const statusMask = 0xcf

type Expected struct {
    Line int
    PC uint16
    A, X, Y, P, SP byte
}

/* C000  4C F5 C5  JMP $C5F5       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7 */
func parseLine(line string, number int) (Expected, error) {
    if len(line) < 4 {
        return Expected{}, fmt.Errorf("line %v: too short", number)
    }

    pc, err := strconv.ParseUint(line[0:4], 16, 16)
    if err != nil {
        return Expected{}, fmt.Errorf("line %v: bad pc: %w", number, err)
    }

    index := strings.Index(line, "A:")
    if index == -1 {
        return Expected{}, fmt.Errorf("line %v: no registers", number)
    }

    out := Expected{Line: number, PC: uint16(pc)}
    _, err = fmt.Sscanf(line[index:], "A:%x X:%x Y:%x P:%x SP:%x", &out.A, &out.X, &out.Y, &out.P, &out.SP)
    if err != nil {
        return Expected{}, fmt.Errorf("line %v: %w", number, err)
    }

    return out, nil
}

func ParseLog(reader io.Reader) ([]Expected, error) {
    var out []Expected
    scanner := bufio.NewScanner(reader)
    number := 0
    for scanner.Scan() {
        number += 1
        line := strings.TrimSpace(scanner.Text())
        if line == "" {
            continue
        }
        expected, err := parseLine(line, number)
        if err != nil {
            return nil, err
        }
        out = append(out, expected)
    }

    return out, scanner.Err()
}

func (expected *Expected) Matches(cpu *nes.CPU) bool {
    return cpu.PC == expected.PC &&
           cpu.A == expected.A &&
           cpu.X == expected.X &&
           cpu.Y == expected.Y &&
           cpu.SP == expected.SP &&
           cpu.GetStatusByte() & statusMask == expected.P & statusMask
}

/* step the cpu once per expected line. Returns how many lines matched. Running
 * into an unknown opcode ends the comparison without an error.
 */
func Compare(cpu *nes.CPU, golden []Expected, debug bool) (int, error) {
    for i, expected := range golden {
        if !expected.Matches(cpu) {
            return i, fmt.Errorf("line %v: expected PC:%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X but have %v",
                                 expected.Line, expected.PC, expected.A, expected.X, expected.Y, expected.P, expected.SP, cpu.Registers.String())
        }

        if debug {
            instruction, _ := cpu.PeekInstruction(cpu.PC)
            log.Printf("%v: %v", expected.Line, instruction.String())
        }

        err := cpu.Step()
        if err != nil {
            if errors.Is(err, nes.ErrUnknownOpcode) {
                return i, nil
            }
            return i, err
        }
    }

    return len(golden), nil
}

func Run(debug bool) (bool, error) {
    if _, err := os.Stat(RomPath); err != nil {
        log.Print(test_utils.Skipped(fmt.Sprintf("nestest (no %v)", RomPath)))
        return true, nil
    }

    nesFile, err := nes.ParseNesFile(RomPath, debug)
    if err != nil {
        return false, err
    }

    logFile, err := os.Open(LogPath)
    if err != nil {
        return false, err
    }
    defer logFile.Close()

    golden, err := ParseLog(logFile)
    if err != nil {
        return false, err
    }

    cpu := nes.NewCPU(nes.Options{IndirectPageWrap: true})
    err = cpu.LoadProgram(nesFile.ProgramRom, nesFile.ProgramBlocks)
    if err != nil {
        return false, err
    }
    cpu.PC = StartAddress

    matched, err := Compare(cpu, golden, debug)
    if err != nil {
        return false, err
    }

    log.Printf("nestest: %v of %v instructions matched", matched, len(golden))

    /* the documented opcode tests leave their error code at 0x02 */
    return cpu.ReadByte(0x02) == 0, nil
}
