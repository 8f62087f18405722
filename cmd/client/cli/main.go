package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"bookkeeper/internal/client/app"
	"bookkeeper/internal/client/config"
	"bookkeeper/internal/client/ui"
	"bookkeeper/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(logging.Options{Level: cfg.LogLevel, Out: os.Stderr})

	reader := bufio.NewReader(os.Stdin)
	a, err := app.New(app.Options{
		Config:   cfg,
		Renderer: ui.NewTerminalRenderer(os.Stdout),
		Notifier: ui.NewTerminalNotifier(os.Stdout),
		Confirm:  ui.NewTerminalConfirm(reader, os.Stdout),
		Log:      logger,
	})
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	commands, err := a.Commands(reader, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	ctx := context.Background()
	fmt.Println("Welcome to bookkeeper (type 'help' for commands)")
	a.Init(ctx)

	prompt := func() string {
		if name := a.Username(); name != "" {
			return fmt.Sprintf("bk (%s) %s", name, a.CurrentView())
		}
		return fmt.Sprintf("bk %s", a.CurrentView())
	}

	ui.RunREPL(ctx, prompt, commands, reader, os.Stdout)

}
