//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"lifeplane/internal/app"
	"lifeplane/internal/life"
	"lifeplane/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	grid := life.NewWithRule(cfg.ParsedRule())
	ctrl := app.NewController(grid, view.New(cfg.Scale), cfg.Interval)
	ctrl.SetIntParameter(app.ParamDensity, cfg.Density)
	ctrl.Resize(cfg.Width, cfg.Height)

	game := app.New(ctrl, cfg.Seed)
	log.Printf("lifeplane: rule %s, %d tps, one generation every %d ticks", grid.Rule(), cfg.TPS, cfg.Interval)

	ebiten.SetWindowTitle("lifeplane - " + grid.Rule().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
