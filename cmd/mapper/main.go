package main

/* CLI utility that helps find NES files that this cpu core can load */

import (
    "fmt"
    "flag"
    "io"
    "log"
    "os"
    "sort"

    "github.com/kazzmir/nescore/cmd/nes/common"
    nes "github.com/kazzmir/nescore/lib"
)

type RomInfo struct {
    Path string
    Mapper uint32
    ProgramBlocks int
}

/* a rom can be run if it uses NROM with one or two program blocks */
func (info *RomInfo) Loadable() bool {
    return info.Mapper == 0 && (info.ProgramBlocks == 1 || info.ProgramBlocks == 2)
}

func getRoms(paths []string) []RomInfo {
    /* walk filesystem looking for .nes files */

    files, err := common.FindRoms(paths)
    if err != nil {
        log.Printf("Warning: %v", err)
    }

    var out []RomInfo
    for _, path := range files {
        if !common.IsNesFile(path) {
            continue
        }

        nesFile, err := nes.ParseNesFile(path, false)
        if err != nil {
            log.Printf("Warning: %v", err)
            continue
        }

        out = append(out, RomInfo{
            Path: path,
            Mapper: nesFile.Mapper,
            ProgramBlocks: nesFile.ProgramBlocks,
        })
    }

    return out
}

func displayRoms(out io.Writer, roms []RomInfo, mapper int, loadable bool) {
    var found []RomInfo
    for _, rom := range roms {
        if mapper != -1 && rom.Mapper != uint32(mapper) {
            continue
        }
        if loadable && !rom.Loadable() {
            continue
        }
        found = append(found, rom)
    }

    fmt.Fprintf(out, "Found %d ROMs\n", len(found))
    for _, rom := range found {
        fmt.Fprintf(out, "%s mapper %d, %d program blocks\n", rom.Path, rom.Mapper, rom.ProgramBlocks)
    }
}

/* how many roms use each mapper */
func displaySummary(out io.Writer, roms []RomInfo){
    counts := make(map[uint32]int)
    for _, rom := range roms {
        counts[rom.Mapper] += 1
    }

    var mappers []uint32
    for mapper := range counts {
        mappers = append(mappers, mapper)
    }
    sort.Slice(mappers, func(i, j int) bool {
        return mappers[i] < mappers[j]
    })

    for _, mapper := range mappers {
        fmt.Fprintf(out, "mapper %3d: %d\n", mapper, counts[mapper])
    }
}

func main(){
    findMapper := flag.Int("find", -1, "Find all ROMs with a specific mapper")
    loadable := flag.Bool("loadable", false, "Only show ROMs that can be run")
    summary := flag.Bool("summary", false, "Count ROMs per mapper")

    flag.Parse()

    paths := flag.Args()
    if len(paths) == 0 {
        paths = []string{"."}
    }

    roms := getRoms(paths)

    if *summary {
        displaySummary(os.Stdout, roms)
        return
    }

    if *findMapper != -1 || *loadable {
        displayRoms(os.Stdout, roms, *findMapper, *loadable)
    }
}
