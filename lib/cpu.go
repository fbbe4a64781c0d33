package lib

import (
    "errors"
    "fmt"
)

const NMIVector uint16 = 0xfffa
const ResetVector uint16 = 0xfffc
const IRQVector uint16 = 0xfffe

/* program rom is loaded in 16k blocks starting here */
const ProgramBase uint16 = 0x8000
const ProgramBlockSize = 16 * 1024

var ErrUnknownOpcode = errors.New("unknown opcode")
var ErrStepLimit = errors.New("step limit reached before break")
var ErrBadProgramSize = errors.New("bad program size")

type UnknownOpcodeError struct {
    Opcode byte
    /* address the opcode was read from */
    PC uint16
}

func (err *UnknownOpcodeError) Error() string {
    return fmt.Sprintf("unknown opcode 0x%02x at 0x%04x", err.Opcode, err.PC)
}

func (err *UnknownOpcodeError) Unwrap() error {
    return ErrUnknownOpcode
}

type Options struct {
    /* reproduce the JMP ($xxFF) page wrap of the real chip */
    IndirectPageWrap bool `json:"indirect-page-wrap"`
}

/* Observer is told about every instruction the cpu executes. Before is called
 * while PC still points at the opcode, After is called once the instruction
 * has finished.
 */
type Observer interface {
    Before(cpu *CPU, instruction Instruction)
    After(cpu *CPU, instruction Instruction)
}

type CPU struct {
    Registers
    Memory Memory
    Cycle uint64
    Options Options

    table *InstructionTable
    observers []Observer
}

func NewCPU(options Options) *CPU {
    return &CPU{
        Registers: StartupRegisters(),
        Options: options,
        table: GetInstructionTable(),
    }
}

func (cpu *CPU) AddObserver(observer Observer){
    cpu.observers = append(cpu.observers, observer)
}

func (cpu *CPU) RemoveObserver(observer Observer){
    var out []Observer
    for _, check := range cpu.observers {
        if check != observer {
            out = append(out, check)
        }
    }
    cpu.observers = out
}

func (cpu *CPU) ReadByte(address uint16) byte {
    return cpu.Memory.Load(address)
}

func (cpu *CPU) WriteByte(address uint16, value byte){
    cpu.Memory.Store(address, value)
}

func (cpu *CPU) GetStatusByte() byte {
    return cpu.Status.Value()
}

func (cpu *CPU) SetStatusByte(value byte){
    cpu.Status.FromValue(value)
}

/* load PRG rom at 0x8000. With one 16k block the same block is also placed at
 * 0xc000, just like NROM-128 boards mirror it.
 */
func (cpu *CPU) LoadProgram(program []byte, blocks int) error {
    if blocks != 1 && blocks != 2 {
        return fmt.Errorf("%w: %v blocks, must be 1 or 2", ErrBadProgramSize, blocks)
    }

    if len(program) < blocks * ProgramBlockSize {
        return fmt.Errorf("%w: have %v bytes but need %v for %v blocks", ErrBadProgramSize, len(program), blocks * ProgramBlockSize, blocks)
    }

    if blocks == 1 {
        cpu.Memory.Copy(ProgramBase, program[:ProgramBlockSize])
        cpu.Memory.Copy(ProgramBase + ProgramBlockSize, program[:ProgramBlockSize])
    } else {
        cpu.Memory.Copy(ProgramBase, program[:2 * ProgramBlockSize])
    }

    return nil
}

func (cpu *CPU) Reset() {
    cpu.PC = cpu.Memory.Load16(ResetVector)
    cpu.Status.InterruptDisable = true
}

/* execute exactly one instruction. An unknown opcode leaves PC just past the
 * opcode byte and changes nothing else.
 */
func (cpu *CPU) Step() error {
    address := cpu.PC
    opcode := cpu.Memory.Load(address)

    description := cpu.table.Lookup(InstructionType(opcode))
    if !description.Valid() {
        cpu.PC += 1
        return &UnknownOpcodeError{Opcode: opcode, PC: address}
    }

    var instruction Instruction
    if len(cpu.observers) > 0 {
        instruction, _ = cpu.PeekInstruction(address)
        for _, observer := range cpu.observers {
            observer.Before(cpu, instruction)
        }
    }

    /* IR is only latched for opcodes that will actually execute */
    cpu.IR = cpu.fetchByte()

    operand := cpu.resolve(description.Mode)
    cpu.latch(operand)

    err := cpu.execute(description.Operation, operand)
    if err != nil {
        return fmt.Errorf("opcode 0x%02x at 0x%04x: %w", cpu.IR, address, err)
    }

    cpu.Cycle += uint64(description.Cycles)

    for _, observer := range cpu.observers {
        observer.After(cpu, instruction)
    }

    return nil
}

/* step until the break flag is set */
func (cpu *CPU) Run() error {
    for !cpu.Status.Break {
        err := cpu.Step()
        if err != nil {
            return err
        }
    }

    return nil
}

/* like Run but give up after limit instructions. Returns how many instructions
 * were executed.
 */
func (cpu *CPU) RunSteps(limit uint64) (uint64, error) {
    var count uint64
    for !cpu.Status.Break {
        if count >= limit {
            return count, ErrStepLimit
        }

        err := cpu.Step()
        if err != nil {
            return count, err
        }
        count += 1
    }

    return count, nil
}

func (cpu *CPU) String() string {
    return fmt.Sprintf("%v Cycle:%v", cpu.Registers.String(), cpu.Cycle)
}
