package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"particles/internal/app"
	"particles/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Defaults["boundary"] = "20"
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := cfg.World(nil)
	if err != nil {
		log.Fatalf("load world: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctl := app.NewController(world, nil)
	// Notices would scribble over the screen.
	ctl.Logf = func(string, ...any) {}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, ctl, cfg.TPS).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
