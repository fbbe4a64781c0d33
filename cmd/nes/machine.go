package main

import (
    "context"
    "errors"
    "fmt"
    "io"
    "log"
    "sync"

    "github.com/kazzmir/nescore/cmd/nes/common"
    nes "github.com/kazzmir/nescore/lib"
)

/* instructions executed between checks of the quit context */
const StepBatch = 1000

/* parse the rom, let its mapper place the program and jump through the reset vector */
func MakeMachine(path string, options nes.Options, debug bool) (*nes.CPU, error) {
    nesFile, err := nes.ParseNesFile(path, debug)
    if err != nil {
        return nil, err
    }

    mapper, err := nes.MakeMapper(nesFile.Mapper, nesFile.ProgramRom)
    if err != nil {
        return nil, fmt.Errorf("%v: %w", path, err)
    }

    cpu := nes.NewCPU(options)
    err = mapper.Initialize(cpu)
    if err != nil {
        return nil, fmt.Errorf("%v: %w", path, err)
    }

    cpu.Reset()

    if debug {
        log.Printf("%v: mapper %v, reset vector 0x%04x", path, mapper.Name(), cpu.PC)
    }

    return cpu, nil
}

/* RunMachine steps the cpu until brk, an error, or maxSteps instructions
 * (0 for no limit). batch is called after every StepBatch instructions and
 * once more at the end.
 */
func RunMachine(quit context.Context, cpu *nes.CPU, maxSteps uint64, batch func(*nes.CPU)) (uint64, error) {
    var total uint64

    defer func(){
        if batch != nil {
            batch(cpu)
        }
    }()

    for {
        select {
            case <-quit.Done():
                return total, quit.Err()
            default:
        }

        limit := uint64(StepBatch)
        if maxSteps > 0 && maxSteps - total < limit {
            limit = maxSteps - total
        }

        count, err := cpu.RunSteps(limit)
        total += count

        if err == nil {
            return total, nil
        }

        if !errors.Is(err, nes.ErrStepLimit) {
            return total, err
        }

        if maxSteps > 0 && total >= maxSteps {
            return total, err
        }

        if batch != nil {
            batch(cpu)
        }
    }
}

/* lets several tracers share one output without splitting lines */
type syncWriter struct {
    lock sync.Mutex
    writer io.Writer
}

func (writer *syncWriter) Write(data []byte) (int, error) {
    writer.lock.Lock()
    defer writer.lock.Unlock()
    return writer.writer.Write(data)
}

type MachineResult struct {
    Path string
    Steps uint64
    CPU *nes.CPU
    Err error
}

func (result *MachineResult) String() string {
    stopped := "brk"
    if result.Err != nil {
        stopped = result.Err.Error()
    }
    return fmt.Sprintf("%v: %v steps, %v, stopped: %v", result.Path, result.Steps, result.CPU.String(), stopped)
}

/* load and run one rom to completion */
func RunRom(quit context.Context, path string, config common.ConfigData, trace io.Writer, traceSkip uint64, debug bool) (MachineResult, error) {
    cpu, err := MakeMachine(path, config.CPU, debug)
    if err != nil {
        return MachineResult{}, err
    }

    var tracer *nes.Tracer
    if trace != nil {
        tracer = nes.MakeTracer(trace)
        tracer.Skip = traceSkip
        cpu.AddObserver(tracer)
    }

    steps, err := RunMachine(quit, cpu, config.MaxSteps, nil)

    var unknown *nes.UnknownOpcodeError
    if tracer != nil && errors.As(err, &unknown) {
        tracer.Unknown(unknown)
    }

    return MachineResult{
        Path: path,
        Steps: steps,
        CPU: cpu,
        Err: err,
    }, nil
}
