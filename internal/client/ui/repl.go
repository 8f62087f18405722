package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Command is one REPL command. Handlers report their own failures through
// the notifier; the loop only keeps reading.
type Command struct {
	Name string
	Help string
	Run  func(ctx context.Context) error
}

// RunREPL reads commands line by line and dispatches them against the given
// table. The reader must be the same one the command prompts read from, so
// no input is lost to a second buffer. The prompt is recomputed before every
// read so it can reflect the session state. The loop exits on EOF or when
// the user types "exit" or "quit".
func RunREPL(ctx context.Context, prompt func() string, commands []Command, reader *bufio.Reader, out io.Writer) {
	table := make(map[string]Command, len(commands))
	for _, c := range commands {
		table[c.Name] = c
	}

	for {
		fmt.Fprintf(out, "%s> ", prompt())
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			printHelp(out, commands)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			c, ok := table[cmd]
			if !ok {
				fmt.Fprintln(out, "Unknown command:", cmd)
			} else {
				_ = c.Run(ctx)
			}
		}

		if err != nil {
			return
		}
	}
}

func printHelp(out io.Writer, commands []Command) {
	sorted := append([]Command(nil), commands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	fmt.Fprintln(out, "Available commands:")
	for _, c := range sorted {
		fmt.Fprintf(out, "  %-14s %s\n", c.Name, c.Help)
	}
	fmt.Fprintf(out, "  %-14s %s\n", "help", "show this list")
	fmt.Fprintf(out, "  %-14s %s\n", "exit", "leave the program")
}
