package debug

import (
    "context"
    "log"
    "sync"

    nes "github.com/kazzmir/nescore/lib"
)

type DebugCommand interface {
    Name() string
}

type DebugCommandSimple struct {
    name string
}

func (command *DebugCommandSimple) Name() string {
    return command.name
}

func makeCommand(name string) DebugCommand {
    return &DebugCommandSimple{name: name}
}

var DebugCommandStep DebugCommand = makeCommand("step")
var DebugCommandContinue DebugCommand = makeCommand("continue")

// break when the cpu's PC is at a specific value
type Breakpoint struct {
    PC uint16
    Id uint64
}

func (breakpoint *Breakpoint) Hit(cpu *nes.CPU) bool {
    return breakpoint.PC == cpu.PC
}

/* what the front end gets to see each time the cpu stops */
type Snapshot struct {
    Registers nes.Registers
    Cycle uint64
    Instruction nes.Instruction
    Memory nes.Memory
}

/* DefaultDebugger is a cpu observer. While stopped it blocks the cpu before
 * each instruction until a step or continue command arrives.
 */
type DefaultDebugger struct {
    Commands chan DebugCommand
    Updates chan Snapshot
    Quit context.Context

    lock sync.Mutex
    stopped bool
    breakpoints []Breakpoint
    breakpointId uint64
}

func (debugger *DefaultDebugger) IsStopped() bool {
    debugger.lock.Lock()
    defer debugger.lock.Unlock()
    return debugger.stopped
}

func (debugger *DefaultDebugger) ContinueUntilBreak(){
    debugger.lock.Lock()
    defer debugger.lock.Unlock()
    debugger.stopped = false
}

func (debugger *DefaultDebugger) Stop(){
    debugger.lock.Lock()
    defer debugger.lock.Unlock()
    debugger.stopped = true
}

func (debugger *DefaultDebugger) AddPCBreakpoint(pc uint16) uint64 {
    debugger.lock.Lock()
    defer debugger.lock.Unlock()

    id := debugger.breakpointId
    debugger.breakpoints = append(debugger.breakpoints, Breakpoint{
        PC: pc,
        Id: id,
    })
    debugger.breakpointId += 1
    return id
}

func (debugger *DefaultDebugger) RemoveBreakpoint(id uint64){
    debugger.lock.Lock()
    defer debugger.lock.Unlock()

    var out []Breakpoint
    for _, breakpoint := range debugger.breakpoints {
        if breakpoint.Id != id {
            out = append(out, breakpoint)
        }
    }
    debugger.breakpoints = out
}

func (debugger *DefaultDebugger) Breakpoints() []Breakpoint {
    debugger.lock.Lock()
    defer debugger.lock.Unlock()
    return append([]Breakpoint(nil), debugger.breakpoints...)
}

func (debugger *DefaultDebugger) checkBreakpoints(cpu *nes.CPU) bool {
    debugger.lock.Lock()
    defer debugger.lock.Unlock()

    for _, breakpoint := range debugger.breakpoints {
        if breakpoint.Hit(cpu) {
            log.Printf("[debug] breakpoint %v at 0x%04x", breakpoint.Id, breakpoint.PC)
            debugger.stopped = true
            return true
        }
    }

    return false
}

/* the newest snapshot replaces one the front end has not picked up yet */
func (debugger *DefaultDebugger) publish(cpu *nes.CPU, instruction nes.Instruction){
    snapshot := Snapshot{
        Registers: cpu.Registers,
        Cycle: cpu.Cycle,
        Instruction: instruction,
        Memory: cpu.Memory,
    }

    select {
        case <-debugger.Updates:
        default:
    }

    select {
        case debugger.Updates <- snapshot:
        default:
    }
}

func (debugger *DefaultDebugger) Before(cpu *nes.CPU, instruction nes.Instruction){
    if !debugger.IsStopped() {
        debugger.checkBreakpoints(cpu)
    }

    if !debugger.IsStopped() {
        return
    }

    debugger.publish(cpu, instruction)

    select {
        case <-debugger.Quit.Done():
            return
        case command := <-debugger.Commands:
            if command == DebugCommandStep {
                log.Printf("[debug] step")
                return
            }
            if command == DebugCommandContinue {
                log.Printf("[debug] continue")
                debugger.ContinueUntilBreak()
                return
            }
    }
}

func (debugger *DefaultDebugger) After(cpu *nes.CPU, instruction nes.Instruction){
}

/* show the final state once the cpu is done, whether or not it was stopped */
func (debugger *DefaultDebugger) Finish(cpu *nes.CPU){
    instruction, _ := cpu.PeekInstruction(cpu.PC)
    debugger.publish(cpu, instruction)
}

func MakeDebugger(quit context.Context) *DefaultDebugger {
    return &DefaultDebugger{
        Commands: make(chan DebugCommand, 5),
        Updates: make(chan Snapshot, 1),
        Quit: quit,
        stopped: true,
        breakpointId: 1,
    }
}
