package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/treestack/pkg/errors"
)

// Command names a user action.
type Command string

const (
	CmdPush  Command = "push"
	CmdPop   Command = "pop"
	CmdPeek  Command = "peek"
	CmdClear Command = "clear"
)

// Commands lists every dispatchable command.
var Commands = []Command{CmdPush, CmdPop, CmdPeek, CmdClear}

// ParseCommand resolves a command name, case-insensitively.
func ParseCommand(s string) (Command, error) {
	c := Command(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Commands {
		if c == known {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown command %q", s)
}

// takesArg reports whether the command reads the input field.
func (c Command) takesArg() bool { return c == CmdPush }

// ParseValue parses the input field as an integer literal.
func ParseValue(text string) (int, error) {
	if err := errors.ValidateValueText(text); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "Invalid integer")
	}
	return v, nil
}

// Instruction is one parsed script line.
type Instruction struct {
	Line    int
	Command Command
	Arg     string
}

// String renders the instruction back in script form.
func (i Instruction) String() string {
	if i.Arg == "" {
		return string(i.Command)
	}
	return string(i.Command) + " " + i.Arg
}

// ParseLine parses "push 5", "pop", "peek" or "clear". Blank lines and
// comments yield ok == false.
func ParseLine(line string) (Instruction, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Instruction{}, false, nil
	}

	cmd, err := ParseCommand(fields[0])
	if err != nil {
		return Instruction{}, false, err
	}
	switch {
	case cmd.takesArg() && len(fields) != 2:
		return Instruction{}, false, errors.New(errors.ErrCodeInvalidInput, "%s takes exactly one value", cmd)
	case !cmd.takesArg() && len(fields) != 1:
		return Instruction{}, false, errors.New(errors.ErrCodeInvalidInput, "%s takes no arguments", cmd)
	}

	in := Instruction{Command: cmd}
	if cmd.takesArg() {
		in.Arg = fields[1]
	}
	return in, true, nil
}

// ParseScript reads one instruction per line from r.
func ParseScript(r io.Reader) ([]Instruction, error) {
	var out []Instruction
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		in, ok, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if ok {
			in.Line = n
			out = append(out, in)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return out, nil
}
