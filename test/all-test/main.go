package main

import (
    "log"
    "os"

    "github.com/kazzmir/nescore/test/all-test/nestest"
    branch "github.com/kazzmir/nescore/test/all-test/branch"
    scenario "github.com/kazzmir/nescore/test/all-test/scenario"
    test_utils "github.com/kazzmir/nescore/test/all-test/utils"

    "github.com/fatih/color"
    "golang.org/x/term"
)

func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    /* log writes to stderr */
    color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))

    allOk := true

    ok, err := nestest.Run(false)
    allOk = test_utils.Report("nestest", ok, err) && allOk

    ok, err = branch.Run(false)
    if err != nil {
        log.Printf("branch failed with an error: %v", err)
    }
    if !ok {
        log.Printf("branch tests failed")
        allOk = false
    }

    ok, err = scenario.Run(false)
    if err != nil {
        log.Printf("scenario failed with an error: %v", err)
    }
    if !ok {
        log.Printf("scenario tests failed")
        allOk = false
    }

    if !allOk {
        os.Exit(1)
    }
}
