package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalConfirm asks yes/no questions on the terminal. Anything but an
// explicit yes declines.
type TerminalConfirm struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminalConfirm(reader *bufio.Reader, out io.Writer) *TerminalConfirm {
	return &TerminalConfirm{reader: reader, out: out}
}

func (c *TerminalConfirm) Ask(msg string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", msg)
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
