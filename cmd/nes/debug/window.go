package debug

import (
    "context"
    "errors"
    "fmt"
    "io"
    "strings"
    "sync"

    "github.com/jroimartin/gocui"
)

const (
    viewRegisters = "registers"
    viewMemory = "memory"
    viewBreakpoints = "breakpoints"
    viewCommand = "command"
)

/* DebugWindow is the terminal front end for a DefaultDebugger. It shows the
 * registers, one page of memory and the breakpoints, and reads commands from
 * a one line input at the bottom.
 *
 *   F10 step, F5 continue, PgUp/PgDn change the memory page, ctrl-c quits
 */
type DebugWindow struct {
    debugger *DefaultDebugger

    lock sync.Mutex
    snapshot Snapshot
    haveSnapshot bool
    page byte
    message string
}

func MakeDebugWindow(debugger *DefaultDebugger) *DebugWindow {
    return &DebugWindow{
        debugger: debugger,
    }
}

func (window *DebugWindow) layout(gui *gocui.Gui) error {
    width, height := gui.Size()
    split := 44
    if split > width - 2 {
        split = width / 2
    }

    if view, err := gui.SetView(viewRegisters, 0, 0, split, 8); err != nil {
        if !errors.Is(err, gocui.ErrUnknownView) {
            return err
        }
        view.Title = "cpu"
    }

    if view, err := gui.SetView(viewBreakpoints, 0, 9, split, height - 4); err != nil {
        if !errors.Is(err, gocui.ErrUnknownView) {
            return err
        }
        view.Title = "breakpoints"
    }

    if view, err := gui.SetView(viewMemory, split + 1, 0, width - 1, height - 4); err != nil {
        if !errors.Is(err, gocui.ErrUnknownView) {
            return err
        }
        view.Title = "memory"
    }

    if view, err := gui.SetView(viewCommand, 0, height - 3, width - 1, height - 1); err != nil {
        if !errors.Is(err, gocui.ErrUnknownView) {
            return err
        }
        view.Title = "command: step, continue, break <addr>, delete <id>, page <nn>"
        view.Editable = true
        view.Wrap = false
        if _, err := gui.SetCurrentView(viewCommand); err != nil {
            return err
        }
    }

    return window.redraw(gui)
}

func (window *DebugWindow) writeRegisters(out io.Writer){
    if !window.haveSnapshot {
        fmt.Fprintf(out, "waiting for the cpu\n")
        return
    }

    registers := window.snapshot.Registers
    fmt.Fprintf(out, "PC: %04X  SP: %02X  IR: %02X\n", registers.PC, registers.SP, registers.IR)
    fmt.Fprintf(out, " A: %02X   X: %02X   Y: %02X\n", registers.A, registers.X, registers.Y)
    fmt.Fprintf(out, " P: %02X   %v\n", registers.Status.Value(), registers.Status.String())
    fmt.Fprintf(out, "TL: %02X  TH: %02X\n", registers.TL, registers.TH)
    fmt.Fprintf(out, "Cycle: %v\n", window.snapshot.Cycle)
    if window.snapshot.Instruction.Name != "" {
        fmt.Fprintf(out, "Next: %v\n", window.snapshot.Instruction.String())
    }
}

func (window *DebugWindow) writeMemory(out io.Writer){
    base := uint16(window.page) << 8
    for row := uint16(0); row < 16; row++ {
        fmt.Fprintf(out, "%04X:", base + row * 16)
        for column := uint16(0); column < 16; column++ {
            address := base + row * 16 + column
            value := window.snapshot.Memory[address]
            if window.haveSnapshot && address == window.snapshot.Registers.PC {
                fmt.Fprintf(out, "[%02X", value)
            } else if window.haveSnapshot && address == window.snapshot.Registers.PC + 1 {
                fmt.Fprintf(out, "]%02X", value)
            } else {
                fmt.Fprintf(out, " %02X", value)
            }
        }
        fmt.Fprintln(out)
    }
}

func (window *DebugWindow) redraw(gui *gocui.Gui) error {
    window.lock.Lock()
    defer window.lock.Unlock()

    view, err := gui.View(viewRegisters)
    if err != nil {
        return err
    }
    view.Clear()
    window.writeRegisters(view)

    view, err = gui.View(viewMemory)
    if err != nil {
        return err
    }
    view.Clear()
    view.Title = fmt.Sprintf("memory page %02X", window.page)
    window.writeMemory(view)

    view, err = gui.View(viewBreakpoints)
    if err != nil {
        return err
    }
    view.Clear()
    for _, breakpoint := range window.debugger.Breakpoints() {
        fmt.Fprintf(view, "%v: %04X\n", breakpoint.Id, breakpoint.PC)
    }
    if window.message != "" {
        fmt.Fprintf(view, "\n%v\n", window.message)
    }

    return nil
}

func (window *DebugWindow) setPage(page byte){
    window.lock.Lock()
    defer window.lock.Unlock()
    window.page = page
}

func (window *DebugWindow) setMessage(message string){
    window.lock.Lock()
    defer window.lock.Unlock()
    window.message = message
}

func (window *DebugWindow) update(snapshot Snapshot){
    window.lock.Lock()
    defer window.lock.Unlock()
    window.snapshot = snapshot
    window.haveSnapshot = true
    /* follow the program counter around */
    window.page = byte(snapshot.Registers.PC >> 8)
}

func (window *DebugWindow) send(command DebugCommand) string {
    select {
        case window.debugger.Commands <- command:
            return command.Name()
        default:
            return "the cpu is not waiting for commands"
    }
}

/* apply a parsed command, returns a message for the user */
func (window *DebugWindow) Execute(command ParsedCommand) string {
    switch command.Kind {
        case CommandStep:
            return window.send(DebugCommandStep)
        case CommandContinue:
            return window.send(DebugCommandContinue)
        case CommandBreak:
            id := window.debugger.AddPCBreakpoint(uint16(command.Argument))
            return fmt.Sprintf("breakpoint %v at %04X", id, command.Argument)
        case CommandDelete:
            window.debugger.RemoveBreakpoint(command.Argument)
            return fmt.Sprintf("deleted breakpoint %v", command.Argument)
        case CommandPage:
            window.setPage(byte(command.Argument))
            return fmt.Sprintf("page %02X", command.Argument)
    }

    return ""
}

func (window *DebugWindow) sendCommand(command ParsedCommand) func(*gocui.Gui, *gocui.View) error {
    return func(gui *gocui.Gui, view *gocui.View) error {
        window.setMessage(window.Execute(command))
        return window.redraw(gui)
    }
}

func (window *DebugWindow) enterCommand(gui *gocui.Gui, view *gocui.View) error {
    line := strings.TrimSpace(view.Buffer())
    view.Clear()
    view.SetCursor(0, 0)
    view.SetOrigin(0, 0)

    if line == "" {
        return nil
    }

    command, err := ParseCommand(line)
    if err != nil {
        window.setMessage(err.Error())
    } else {
        window.setMessage(window.Execute(command))
    }

    return window.redraw(gui)
}

func (window *DebugWindow) movePage(delta int) func(*gocui.Gui, *gocui.View) error {
    return func(gui *gocui.Gui, view *gocui.View) error {
        window.lock.Lock()
        window.page = byte(int(window.page) + delta)
        window.lock.Unlock()
        return window.redraw(gui)
    }
}

func (window *DebugWindow) keybindings(gui *gocui.Gui, cancel context.CancelFunc) error {
    quit := func(gui *gocui.Gui, view *gocui.View) error {
        cancel()
        return gocui.ErrQuit
    }

    bindings := []struct {
        view string
        key interface{}
        handler func(*gocui.Gui, *gocui.View) error
    }{
        {"", gocui.KeyCtrlC, quit},
        {"", gocui.KeyF10, window.sendCommand(ParsedCommand{Kind: CommandStep})},
        {"", gocui.KeyF5, window.sendCommand(ParsedCommand{Kind: CommandContinue})},
        {"", gocui.KeyPgup, window.movePage(-1)},
        {"", gocui.KeyPgdn, window.movePage(1)},
        {viewCommand, gocui.KeyEnter, window.enterCommand},
    }

    for _, binding := range bindings {
        err := gui.SetKeybinding(binding.view, binding.key, gocui.ModNone, binding.handler)
        if err != nil {
            return err
        }
    }

    return nil
}

/* Run takes over the terminal until ctrl-c is pressed or quit is cancelled */
func (window *DebugWindow) Run(quit context.Context, cancel context.CancelFunc) error {
    gui, err := gocui.NewGui(gocui.OutputNormal)
    if err != nil {
        return err
    }
    defer gui.Close()

    gui.Cursor = true
    gui.SetManagerFunc(window.layout)

    err = window.keybindings(gui, cancel)
    if err != nil {
        return err
    }

    go func(){
        for {
            select {
                case <-quit.Done():
                    gui.Update(func(gui *gocui.Gui) error {
                        return gocui.ErrQuit
                    })
                    return
                case snapshot := <-window.debugger.Updates:
                    window.update(snapshot)
                    gui.Update(window.redraw)
            }
        }
    }()

    err = gui.MainLoop()
    if err != nil && !errors.Is(err, gocui.ErrQuit) {
        return err
    }

    return nil
}
