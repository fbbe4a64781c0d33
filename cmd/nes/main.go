package main

import (
    "context"
    "fmt"
    "io"
    "log"
    "os"
    "os/signal"
    "strconv"
    "sync"

    "github.com/kazzmir/nescore/cmd/nes/common"
    "github.com/kazzmir/nescore/cmd/nes/debug"
    "github.com/kazzmir/nescore/cmd/nes/memview"
    "github.com/kazzmir/nescore/cmd/nes/thread"
    nes "github.com/kazzmir/nescore/lib"

    "github.com/fatih/color"
    "golang.org/x/term"
)

type Arguments struct {
    Roms []string
    Trace bool
    TraceSkip uint64
    MaxSteps uint64
    HaveMaxSteps bool
    IndirectPageWrap bool
    SaveConfig bool
    Debug bool
    Verbose bool
    View bool
    Disassemble int
}

func parseArguments(args []string) (Arguments, error) {
    var out Arguments

    nextNumber := func(index *int, name string) (uint64, error) {
        *index += 1
        if *index >= len(args) {
            return 0, fmt.Errorf("expected a number after %v", name)
        }
        value, err := strconv.ParseUint(args[*index], 0, 64)
        if err != nil {
            return 0, fmt.Errorf("error parsing %v: %w", name, err)
        }
        return value, nil
    }

    argIndex := 0
    for argIndex < len(args) {
        arg := args[argIndex]
        switch arg {
            case "-trace", "--trace":
                out.Trace = true
            case "-skip", "--skip":
                value, err := nextNumber(&argIndex, arg)
                if err != nil {
                    return out, err
                }
                out.TraceSkip = value
            case "-steps", "--steps":
                value, err := nextNumber(&argIndex, arg)
                if err != nil {
                    return out, err
                }
                out.MaxSteps = value
                out.HaveMaxSteps = true
            case "-wrap", "--wrap":
                out.IndirectPageWrap = true
            case "-save-config", "--save-config":
                out.SaveConfig = true
            case "-debug", "--debug":
                out.Debug = true
            case "-verbose", "--verbose", "-v":
                out.Verbose = true
            case "-view", "--view":
                out.View = true
            case "-disassemble", "--disassemble":
                value, err := nextNumber(&argIndex, arg)
                if err != nil {
                    return out, err
                }
                out.Disassemble = int(value)
            default:
                out.Roms = append(out.Roms, arg)
        }

        argIndex += 1
    }

    return out, nil
}

/* flags win over whatever is in the config file */
func applyArguments(config common.ConfigData, arguments Arguments) common.ConfigData {
    if arguments.Trace {
        config.Trace = true
    }
    if arguments.HaveMaxSteps {
        config.MaxSteps = arguments.MaxSteps
    }
    if arguments.IndirectPageWrap {
        config.CPU.IndirectPageWrap = true
    }
    return config
}

func runAll(quit context.Context, roms []string, config common.ConfigData, arguments Arguments) error {
    var trace *syncWriter
    if config.Trace {
        trace = &syncWriter{writer: os.Stdout}
    }

    group := thread.NewThreadGroup(quit)
    var resultLock sync.Mutex
    var results []MachineResult

    for _, rom := range roms {
        group.SpawnError(func(quit context.Context) error {
            var writer io.Writer
            if trace != nil {
                writer = trace
            }
            result, err := RunRom(quit, rom, config, writer, arguments.TraceSkip, arguments.Verbose)
            if err != nil {
                return err
            }

            resultLock.Lock()
            results = append(results, result)
            resultLock.Unlock()
            return nil
        })
    }

    err := group.Wait()

    for _, result := range results {
        if result.Err != nil {
            log.Printf("Warning: %v", result.String())
        } else {
            fmt.Println(result.String())
        }
    }

    return err
}

/* run one rom under the terminal debugger, the cpu runs in the background */
func runDebugger(quit context.Context, cancel context.CancelFunc, rom string, config common.ConfigData) error {
    cpu, err := MakeMachine(rom, config.CPU, false)
    if err != nil {
        return err
    }

    debugger := debug.MakeDebugger(quit)
    cpu.AddObserver(debugger)
    window := debug.MakeDebugWindow(debugger)

    go func(){
        _, err := RunMachine(quit, cpu, config.MaxSteps, nil)
        if err != nil {
            log.Printf("cpu stopped: %v", err)
        }
        debugger.Finish(cpu)
    }()

    return window.Run(quit, cancel)
}

/* show memory in a window while the rom runs */
func runViewer(quit context.Context, cancel context.CancelFunc, rom string, config common.ConfigData) error {
    cpu, err := MakeMachine(rom, config.CPU, false)
    if err != nil {
        return err
    }

    view := memview.MakeMemoryView(quit)

    go func(){
        steps, err := RunMachine(quit, cpu, config.MaxSteps, view.Publish)
        if err != nil {
            log.Printf("Warning: %v stopped after %v steps: %v", rom, steps, err)
        } else {
            log.Printf("%v finished after %v steps", rom, steps)
        }
    }()

    defer cancel()
    return memview.Run(view, fmt.Sprintf("nescore: %v", rom))
}

func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

    arguments, err := parseArguments(os.Args[1:])
    if err != nil {
        log.Fatalf("Error: %v", err)
    }

    config, err := common.LoadConfigData()
    if err != nil && !os.IsNotExist(err) {
        log.Printf("Warning: could not load config: %v", err)
    }
    config = applyArguments(config, arguments)

    if arguments.SaveConfig {
        err := common.SaveConfigData(config)
        if err != nil {
            log.Printf("Warning: could not save config: %v", err)
        }
    }

    roms, err := common.FindRoms(arguments.Roms)
    if err != nil {
        log.Fatalf("Error: %v", err)
    }

    if len(roms) == 0 {
        fmt.Printf("Give a .nes argument\n")
        return
    }

    quit, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
    defer cancel()

    switch {
        case arguments.Disassemble > 0:
            var cpu *nes.CPU
            cpu, err = MakeMachine(roms[0], config.CPU, arguments.Verbose)
            if err == nil {
                err = Disassemble(cpu, cpu.PC, arguments.Disassemble, os.Stdout)
            }
        case arguments.Debug:
            /* the terminal belongs to the debugger, so logs go nowhere */
            log.SetOutput(io.Discard)
            err = runDebugger(quit, cancel, roms[0], config)
        case arguments.View:
            err = runViewer(quit, cancel, roms[0], config)
        default:
            err = runAll(quit, roms, config, arguments)
    }

    if err != nil {
        log.Printf("Error: %v", err)
    }
}
