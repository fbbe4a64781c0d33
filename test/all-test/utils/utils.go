package utils

import (
    "fmt"
    "log"

    "github.com/fatih/color"
)

func Failure(message string) string {
    red := color.New(color.FgRed).SprintFunc()
    return fmt.Sprintf("%v %v", message, red("failed"))
}

func Success(message string) string {
    green := color.New(color.FgGreen).SprintFunc()
    return fmt.Sprintf("%v %v", message, green("passed"))
}

func Skipped(message string) string {
    yellow := color.New(color.FgYellow).SprintFunc()
    return fmt.Sprintf("%v %v", message, yellow("skipped"))
}

/* log one line for a test and return whether it passed */
func Report(name string, ok bool, err error) bool {
    if err != nil {
        log.Print(Failure(fmt.Sprintf("%v: %v", name, err)))
        return false
    }

    if ok {
        log.Print(Success(name))
    } else {
        log.Print(Failure(name))
    }

    return ok
}
