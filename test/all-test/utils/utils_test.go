package utils

import (
    "errors"
    "testing"

    "github.com/fatih/color"
)

func TestMessages(test *testing.T){
    color.NoColor = true

    if Success("cpu") != "cpu passed" {
        test.Fatalf("unexpected success message '%v'", Success("cpu"))
    }

    if Failure("cpu") != "cpu failed" {
        test.Fatalf("unexpected failure message '%v'", Failure("cpu"))
    }

    if Skipped("cpu") != "cpu skipped" {
        test.Fatalf("unexpected skipped message '%v'", Skipped("cpu"))
    }

    if !Report("ok", true, nil) || Report("bad", true, errors.New("broken")) || Report("bad", false, nil) {
        test.Fatalf("Report returned the wrong result")
    }
}
