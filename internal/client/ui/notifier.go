// Package ui holds the terminal implementations of the application's
// capability surfaces: notifications, view rendering, confirmations and
// interactive prompts, plus the command loop that drives them.
package ui

import (
	"fmt"
	"io"
	"sync"
)

// TerminalNotifier prints transient one-line messages with a severity prefix.
// Load plans run steps concurrently, so writes are serialized.
type TerminalNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) show(prefix, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[%s] %s\n", prefix, msg)
}

func (n *TerminalNotifier) Success(msg string) { n.show("OK", msg) }
func (n *TerminalNotifier) Error(msg string)   { n.show("ERROR", msg) }
func (n *TerminalNotifier) Warning(msg string) { n.show("WARN", msg) }
func (n *TerminalNotifier) Info(msg string)    { n.show("INFO", msg) }
