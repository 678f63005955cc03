//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/input"
	"torus-life/internal/render"
	"torus-life/internal/sims/life"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type manualResetter interface {
	ManualReset()
}

type reinitializer interface {
	Mode() life.Mode
	Reinitialize(mode life.Mode)
}

type sinkAttacher interface {
	AttachEventSink(life.EventSink)
	AttachResetSink(life.ResetSink)
}

// Game adapts the simulation engine to the ebiten.Game interface. It drives
// the engine from a single goroutine, so reset requests raised by key edges
// are queued and only consumed between steps.
type Game struct {
	sim      core.Sim
	painter  *render.GridPainter
	overlay  *ui.Overlay
	pacer    *core.FixedStep
	resetReq *input.Debouncer

	onColor  color.Color
	offColor color.Color

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		pacer:    core.NewFixedStep(tps),
		resetReq: input.NewDebouncer(input.DefaultDebounce),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		tps:      tps,
		seed:     seed,
	}
	if eng, ok := sim.(sinkAttacher); ok {
		eng.AttachEventSink(g.overlay)
		eng.AttachResetSink(g.overlay)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetReq.Edge(time.Now())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.tps += 5
		g.pacer.SetTPS(g.tps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.tps > 5 {
		g.tps -= 5
		g.pacer.SetTPS(g.tps)
	}

	g.overlay.Update()

	// Step boundary: external requests are observed here, never
	// mid-computation.
	if g.resetReq.Consume() {
		if eng, ok := g.sim.(manualResetter); ok {
			eng.ManualReset()
		} else {
			g.sim.Reset(g.seed)
		}
	}

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) toggleMode() {
	eng, ok := g.sim.(reinitializer)
	if !ok {
		return
	}
	next := life.ModeA
	if eng.Mode() == life.ModeA {
		next = life.ModeB
	}
	eng.Reinitialize(next)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
