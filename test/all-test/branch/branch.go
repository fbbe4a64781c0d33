package branch

import (
    "fmt"
    "log"

    nes "github.com/kazzmir/nescore/lib"
    test_utils "github.com/kazzmir/nescore/test/all-test/utils"
)

/* Built in branch programs. Each one is loaded at ProgramAddress, run until
 * brk and then checked, either through a register or the byte written to
 * ResultAddress (1 means the test passed).
 */

const ResultAddress = 0xf8
const ProgramAddress = 0x0600

func runProgram(program []byte, debug bool) (*nes.CPU, error) {
    cpu := nes.NewCPU(nes.Options{})
    cpu.Memory.Copy(ProgramAddress, program)
    cpu.PC = ProgramAddress

    _, err := cpu.RunSteps(10000)
    if err != nil {
        return cpu, err
    }

    if debug {
        log.Printf("%v", cpu.String())
    }

    return cpu, nil
}

/* count X down from 8 to 3 with a backward branch */
func backwardBranch(debug bool) (bool, error) {
    cpu, err := runProgram([]byte{
        0xa2, 0x08,       // ldx #$08
        0xca,             // dex
        0x8e, 0x00, 0x02, // stx $200
        0xe0, 0x03,       // cpx #$03
        0xd0, 0xf8,       // bne -8
        0x00,             // brk
    }, debug)
    if err != nil {
        return false, err
    }

    return cpu.X == 3 && cpu.ReadByte(0x200) == 3, nil
}

/* a taken forward branch skips over the instruction that would write a failure */
func forwardBranch(debug bool) (bool, error) {
    cpu, err := runProgram([]byte{
        0xa9, 0x01,       // lda #$01
        0x38,             // sec
        0xb0, 0x02,       // bcs +2
        0xa9, 0x02,       // lda #$02
        0x85, ResultAddress, // sta $f8
        0x00,             // brk
    }, debug)
    if err != nil {
        return false, err
    }

    return cpu.ReadByte(ResultAddress) == 1, nil
}

type branchFlag struct {
    Name string
    Opcode nes.InstructionType
    Flag byte
    /* the branch is taken when the flag has this value */
    TakenWhenSet bool
}

var branchFlags = []branchFlag{
    branchFlag{"bpl", nes.Instruction_BPL_relative, nes.StatusNegative, false},
    branchFlag{"bmi", nes.Instruction_BMI_relative, nes.StatusNegative, true},
    branchFlag{"bvc", nes.Instruction_BVC_relative, nes.StatusOverflow, false},
    branchFlag{"bvs", nes.Instruction_BVS_relative, nes.StatusOverflow, true},
    branchFlag{"bcc", nes.Instruction_BCC_relative, nes.StatusCarry, false},
    branchFlag{"bcs", nes.Instruction_BCS_relative, nes.StatusCarry, true},
    branchFlag{"bne", nes.Instruction_BNE_relative, nes.StatusZero, false},
    branchFlag{"beq", nes.Instruction_BEQ_relative, nes.StatusZero, true},
}

/* set the status with plp, branch, and see which side of the branch ran */
func conditionalBranch(branch branchFlag, set bool, debug bool) (bool, error) {
    var status byte
    if set {
        status = branch.Flag
    }

    cpu, err := runProgram([]byte{
        0xa9, status,         // lda #status
        0x48,                 // pha
        0x28,                 // plp
        byte(branch.Opcode), 0x03, // branch +3
        0xa9, 0x02,           // lda #$02
        0x00,                 // brk
        0xa9, 0x01,           // lda #$01
        0x00,                 // brk
    }, debug)
    if err != nil {
        return false, err
    }

    taken := cpu.A == 1
    return taken == (set == branch.TakenWhenSet), nil
}

func Run(debug bool) (bool, error) {
    allOk := true

    ok, err := backwardBranch(debug)
    allOk = test_utils.Report("Branch backward", ok, err) && allOk

    ok, err = forwardBranch(debug)
    allOk = test_utils.Report("Branch forward", ok, err) && allOk

    for _, branch := range branchFlags {
        for _, set := range []bool{false, true} {
            ok, err := conditionalBranch(branch, set, debug)
            name := fmt.Sprintf("Branch %v flag=%v", branch.Name, set)
            allOk = test_utils.Report(name, ok, err) && allOk
        }
    }

    return allOk, nil
}
