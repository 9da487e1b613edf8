//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"particles/internal/app"
	"particles/internal/render"
	"particles/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := cfg.World(nil)
	if err != nil {
		log.Fatalf("load world: %v", err)
	}

	ctl := app.NewController(world, telemetry.New())
	game := app.New(ctl, render.NewSprites(world.Config().Seed), cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("particles - " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
