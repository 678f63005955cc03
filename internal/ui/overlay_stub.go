//go:build !ebiten

package ui

import (
	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Emit discards the event in headless builds.
func (o *Overlay) Emit(life.Event) {}

// ResetHappened discards the report in headless builds.
func (o *Overlay) ResetHappened(life.ResetReport) {}

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}
