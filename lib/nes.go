package lib

import (
    "bytes"
    "errors"
    "fmt"
    "io"
    "log"
    "os"
)

/*
An iNES file consists of the following sections, in order:

1. Header (16 bytes)
2. Trainer, if present (0 or 512 bytes)
3. PRG ROM data (16384 * x bytes)
4. CHR ROM data, if present (8192 * y bytes)

0-3: Constant $4E $45 $53 $1A ("NES" followed by MS-DOS end-of-file)
4: Size of PRG ROM in 16 KB units
5: Size of CHR ROM in 8 KB units (Value 0 means the board uses CHR RAM)
6: Flags 6
7: Flags 7
8: Size of PRG RAM in 8 KB units
*/

const CharacterBlockSize = 8 * 1024

var ErrNotNesFile = errors.New("not an nes file")
var ErrTruncated = errors.New("nes file is truncated")

func isINes(check []byte) bool {
    if len(check) != 4 {
        return false
    }

    return bytes.Equal(check, []byte{'N', 'E', 'S', 0x1a})
}

func readMapper(header []byte) uint32 {
    low := header[6] >> 4
    high := header[7] >> 4
    return uint32(high << 4 | low)
}

type NESFile struct {
    ProgramRom []byte
    CharacterRom []byte
    /* number of 16k program blocks */
    ProgramBlocks int
    /* number of 8k character blocks */
    CharacterBlocks int
    Mapper uint32
    HasTrainer bool
    HasBattery bool
    VerticalMirror bool
}

func readSection(reader io.Reader, size int, name string) ([]byte, error) {
    data := make([]byte, size)
    _, err := io.ReadFull(reader, data)
    if err != nil {
        if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
            return nil, fmt.Errorf("%w: could not read %v bytes of %v: %w", ErrTruncated, size, name, io.ErrUnexpectedEOF)
        }
        return nil, err
    }
    return data, nil
}

func ParseNes(reader io.Reader) (NESFile, error) {
    header, err := readSection(reader, 16, "header")
    if err != nil {
        return NESFile{}, err
    }

    if !isINes(header[0:4]) {
        return NESFile{}, ErrNotNesFile
    }

    out := NESFile{
        ProgramBlocks: int(header[4]),
        CharacterBlocks: int(header[5]),
        Mapper: readMapper(header),
        VerticalMirror: header[6] & 1 == 1,
        HasBattery: header[6] & 2 == 2,
        HasTrainer: header[6] & 4 == 4,
    }

    if out.HasTrainer {
        /* the trainer is not used by anything, just skip it */
        _, err = readSection(reader, 512, "trainer")
        if err != nil {
            return NESFile{}, err
        }
    }

    out.ProgramRom, err = readSection(reader, out.ProgramBlocks * ProgramBlockSize, "PRG-ROM")
    if err != nil {
        return NESFile{}, err
    }

    out.CharacterRom, err = readSection(reader, out.CharacterBlocks * CharacterBlockSize, "CHR-ROM")
    if err != nil {
        return NESFile{}, err
    }

    return out, nil
}

func ParseNesFile(path string, debug bool) (NESFile, error) {
    file, err := os.Open(path)
    if err != nil {
        return NESFile{}, err
    }
    defer file.Close()

    nesFile, err := ParseNes(file)
    if err != nil {
        return NESFile{}, fmt.Errorf("%v: %w", path, err)
    }

    if debug {
        log.Printf("%v: PRG-ROM %v blocks, CHR-ROM %v blocks, mapper %v, trainer %v", path, nesFile.ProgramBlocks, nesFile.CharacterBlocks, nesFile.Mapper, nesFile.HasTrainer)
    }

    return nesFile, nil
}
