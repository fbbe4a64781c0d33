package debug

import (
    "fmt"
    "strconv"
    "strings"
)

type CommandKind int

const (
    CommandStep CommandKind = iota
    CommandContinue
    CommandBreak
    CommandDelete
    CommandPage
)

/* a line typed into the debugger's command view */
type ParsedCommand struct {
    Kind CommandKind
    /* address for break, page number for page, id for delete */
    Argument uint64
}

func parseNumber(text string, bits int) (uint64, error) {
    text = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(text), "0x"), "$")
    return strconv.ParseUint(text, 16, bits)
}

/* commands may be abbreviated to their first letter. numbers are hex, with an
 * optional 0x or $ prefix
 */
func ParseCommand(line string) (ParsedCommand, error) {
    fields := strings.Fields(line)
    if len(fields) == 0 {
        return ParsedCommand{}, fmt.Errorf("empty command")
    }

    needArgument := func(bits int) (uint64, error) {
        if len(fields) != 2 {
            return 0, fmt.Errorf("%v needs one argument", fields[0])
        }
        value, err := parseNumber(fields[1], bits)
        if err != nil {
            return 0, fmt.Errorf("bad argument '%v': %w", fields[1], err)
        }
        return value, nil
    }

    switch strings.ToLower(fields[0]) {
        case "s", "step":
            return ParsedCommand{Kind: CommandStep}, nil
        case "c", "continue":
            return ParsedCommand{Kind: CommandContinue}, nil
        case "b", "break":
            address, err := needArgument(16)
            return ParsedCommand{Kind: CommandBreak, Argument: address}, err
        case "d", "delete":
            if len(fields) != 2 {
                return ParsedCommand{}, fmt.Errorf("delete needs a breakpoint id")
            }
            id, err := strconv.ParseUint(fields[1], 10, 64)
            return ParsedCommand{Kind: CommandDelete, Argument: id}, err
        case "p", "page":
            page, err := needArgument(8)
            return ParsedCommand{Kind: CommandPage, Argument: page}, err
    }

    return ParsedCommand{}, fmt.Errorf("unknown command '%v'", fields[0])
}
