package lib

import (
    "bytes"
    "errors"
    "io"
    "os"
    "path/filepath"
    "testing"
)

func makeNesImage(programBlocks byte, characterBlocks byte, flags6 byte, flags7 byte) []byte {
    var out bytes.Buffer
    out.Write([]byte{'N', 'E', 'S', 0x1a, programBlocks, characterBlocks, flags6, flags7})
    out.Write(make([]byte, 8))
    if flags6 & 4 == 4 {
        out.Write(make([]byte, 512))
    }

    program := make([]byte, int(programBlocks) * ProgramBlockSize)
    for i := range program {
        program[i] = byte(i)
    }
    out.Write(program)
    out.Write(make([]byte, int(characterBlocks) * CharacterBlockSize))
    return out.Bytes()
}

func TestParseNes(test *testing.T){
    nesFile, err := ParseNes(bytes.NewReader(makeNesImage(2, 1, 0x13, 0x40)))
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }

    if nesFile.ProgramBlocks != 2 || len(nesFile.ProgramRom) != 2 * ProgramBlockSize {
        test.Fatalf("wrong program size %v %v", nesFile.ProgramBlocks, len(nesFile.ProgramRom))
    }

    if nesFile.CharacterBlocks != 1 || len(nesFile.CharacterRom) != CharacterBlockSize {
        test.Fatalf("wrong character size")
    }

    if nesFile.Mapper != 0x41 {
        test.Fatalf("expected mapper 0x41 but got 0x%x", nesFile.Mapper)
    }

    if !nesFile.VerticalMirror || !nesFile.HasBattery || nesFile.HasTrainer {
        test.Fatalf("wrong flags %+v", nesFile)
    }
}

func TestParseNesTrainer(test *testing.T){
    nesFile, err := ParseNes(bytes.NewReader(makeNesImage(1, 0, 0x04, 0)))
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }

    if !nesFile.HasTrainer || nesFile.ProgramRom[1] != 1 {
        test.Fatalf("trainer was not skipped")
    }
}

func TestParseNesErrors(test *testing.T){
    _, err := ParseNes(bytes.NewReader([]byte("not a rom at all")))
    if !errors.Is(err, ErrNotNesFile) {
        test.Fatalf("expected ErrNotNesFile but got %v", err)
    }

    image := makeNesImage(1, 0, 0, 0)
    _, err = ParseNes(bytes.NewReader(image[:100]))
    if !errors.Is(err, ErrTruncated) || !errors.Is(err, io.ErrUnexpectedEOF) {
        test.Fatalf("expected a truncated error but got %v", err)
    }
}

func TestLoadNesFile(test *testing.T){
    path := filepath.Join(test.TempDir(), "test.nes")
    err := os.WriteFile(path, makeNesImage(1, 0, 0, 0), 0644)
    if err != nil {
        test.Fatalf("could not write rom: %v", err)
    }

    nesFile, err := ParseNesFile(path, false)
    if err != nil {
        test.Fatalf("could not parse %v: %v", path, err)
    }

    mapper, err := MakeMapper(nesFile.Mapper, nesFile.ProgramRom)
    if err != nil {
        test.Fatalf("could not make mapper: %v", err)
    }

    if mapper.Name() != "NROM" {
        test.Fatalf("unexpected mapper %v", mapper.Name())
    }

    cpu := NewCPU(Options{})
    err = mapper.Initialize(cpu)
    if err != nil {
        test.Fatalf("could not initialize mapper: %v", err)
    }

    if cpu.ReadByte(0x8005) != 5 || cpu.ReadByte(0xc005) != 5 {
        test.Fatalf("program rom was not mirrored")
    }

    _, err = MakeMapper(4, nil)
    if err == nil {
        test.Fatalf("expected mapper 4 to be unsupported")
    }

    _, err = ParseNesFile(filepath.Join(test.TempDir(), "missing.nes"), false)
    if err == nil {
        test.Fatalf("expected an error for a missing file")
    }
}
