package main

import (
    "log"
    "os"

    "github.com/kazzmir/nescore/test/all-test/nestest"
    test_utils "github.com/kazzmir/nescore/test/all-test/utils"
)

/* run only nestest, with -debug every compared instruction is logged */
func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    debug := false
    for _, arg := range os.Args[1:] {
        if arg == "-debug" || arg == "--debug" {
            debug = true
        }
    }

    ok, err := nestest.Run(debug)
    if !test_utils.Report("nestest", ok, err) {
        os.Exit(1)
    }
}
