//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/eventlog"
	"torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["life"]
	if !ok {
		log.Fatal("life simulation not registered")
	}
	sim := factory(map[string]string{
		"mode": cfg.Mode,
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})

	recorder := eventlog.New(slog.New(slog.NewTextHandler(os.Stderr, nil)), 64)
	defer recorder.Close()
	if eng, ok := sim.(*life.Engine); ok {
		eng.AttachEventSink(recorder)
		eng.AttachResetSink(recorder)
	}

	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
