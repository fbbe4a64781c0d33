package lib

import (
    "fmt"
    "io"
    "strings"

    "github.com/fatih/color"
)

/* Tracer writes one line per executed instruction, in roughly the same
 * layout as the nestest log:
 *
 *   C000  4C F5 C5  jmp  A:00 X:00 Y:00 P:04 SP:FD CYC:7
 */
type Tracer struct {
    Writer io.Writer
    /* when set only instructions at or after this many steps are written */
    Skip uint64

    steps uint64
    mnemonic *color.Color
    unknown *color.Color
}

func MakeTracer(writer io.Writer) *Tracer {
    return &Tracer{
        Writer: writer,
        mnemonic: color.New(color.FgCyan, color.Bold),
        unknown: color.New(color.FgRed),
    }
}

func (tracer *Tracer) formatBytes(instruction Instruction) string {
    var out strings.Builder
    out.WriteString(fmt.Sprintf("%02X", byte(instruction.Kind)))
    for _, operand := range instruction.Operands {
        out.WriteString(fmt.Sprintf(" %02X", operand))
    }
    return out.String()
}

func (tracer *Tracer) Before(cpu *CPU, instruction Instruction){
    tracer.steps += 1
    if tracer.steps <= tracer.Skip {
        return
    }

    name := strings.ToUpper(instruction.Name)
    fmt.Fprintf(tracer.Writer, "%04X  %-8v  %v  A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%v\n",
                instruction.Address, tracer.formatBytes(instruction), tracer.mnemonic.Sprint(name),
                cpu.A, cpu.X, cpu.Y, cpu.Status.Value(), cpu.SP, cpu.Cycle)
}

func (tracer *Tracer) After(cpu *CPU, instruction Instruction){
}

/* report an opcode the cpu could not decode */
func (tracer *Tracer) Unknown(err *UnknownOpcodeError){
    fmt.Fprintf(tracer.Writer, "%04X  %02X        %v\n", err.PC, err.Opcode, tracer.unknown.Sprint("???"))
}

func (tracer *Tracer) Steps() uint64 {
    return tracer.steps
}
