//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// bannerDuration is how long the end-of-run summary stays on screen.
const bannerDuration = 4 * time.Second

type statsProvider interface {
	Generation() uint64
	Population() int
}

// Overlay draws run statistics over the simulation view: generation counter,
// population with a density gauge, the most recent loop event, and a banner
// summarizing each finished run. It doubles as the engine's display
// collaborator for events and reset reports.
type Overlay struct {
	sim   core.Sim
	scale int

	showParams bool

	lastEvent   string
	banner      string
	bannerUntil time.Time

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Emit records the latest detector event for display.
func (o *Overlay) Emit(ev life.Event) {
	o.lastEvent = fmt.Sprintf("%s @ gen %d (hash %08x)", ev.Kind, ev.Generation, ev.Hash)
}

// ResetHappened shows the finished run's summary before the fresh board
// takes over.
func (o *Overlay) ResetHappened(rep life.ResetReport) {
	o.banner = fmt.Sprintf("run over: %d generations in %s",
		rep.Generations, rep.Elapsed.Round(time.Millisecond))
	o.bannerUntil = time.Now().Add(bannerDuration)
}

// Update handles overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showParams = !o.showParams
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	size := o.sim.Size()
	y := 16

	if stats, ok := o.sim.(statsProvider); ok {
		pop := stats.Population()
		density := float64(pop) / float64(size.W*size.H)
		text.Draw(screen, fmt.Sprintf("gen %d  pop %d", stats.Generation(), pop), face, 8, y, fg)
		o.drawGauge(screen, 8, y+6, render.DensityColor(density))
		y += 28
	}

	if o.lastEvent != "" {
		text.Draw(screen, o.lastEvent, face, 8, y, fg)
		y += 16
	}

	if o.banner != "" && time.Now().Before(o.bannerUntil) {
		text.Draw(screen, o.banner, face, 8, y, color.RGBA{R: 255, G: 210, B: 120, A: 255})
		y += 16
	}

	if o.showParams {
		if provider, ok := o.sim.(core.ParameterProvider); ok {
			o.drawParams(screen, provider.Parameters(), face, y)
		}
	}
}

func (o *Overlay) drawGauge(screen *ebiten.Image, x, y int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(48, 6)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawParams(screen *ebiten.Image, snap core.ParameterSnapshot, face *basicfont.Face, y int) {
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	for _, group := range snap.Groups {
		text.Draw(screen, group.Name, face, 8, y, dim)
		y += 14
		for _, p := range group.Params {
			text.Draw(screen, fmt.Sprintf("  %s: %s", p.Label, p.Value), face, 8, y, dim)
			y += 14
		}
	}
}
