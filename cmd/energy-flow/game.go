package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"energy-flow/internal/circuit"
	"energy-flow/internal/config"
	"energy-flow/internal/controls"
	"energy-flow/internal/engine"
	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
	"energy-flow/internal/surface/ebitensurface"
)

const hudLine = 16

var hudFont = surface.Font{Size: 13}

type Game struct {
	log   zerolog.Logger
	panel *controls.Panel
	loop  *engine.Loop

	// ebiten calls Update once per tick; the loop is fired from there.
	frames engine.ManualSource

	canvas        *ebiten.Image
	target        *ebitensurface.Surface
	width, height int
}

func NewGame(logger zerolog.Logger, s config.Settings, meter metric.Meter) (*Game, error) {
	cfg, err := s.Model()
	if err != nil {
		return nil, err
	}
	g := &Game{
		log:    logger,
		panel:  controls.NewPanel(cfg, s.Bounds),
		width:  s.Window.Width,
		height: s.Window.Height,
	}
	g.loop = engine.NewLoop(engine.New(engine.WithLogger(logger), engine.WithMeter(meter)), s.Clock.Step, g.panel.Config)
	g.resize()
	g.loop.Start(&g.frames, g.target)
	return g, nil
}

// resize reallocates the offscreen canvas when the window size changed.
func (g *Game) resize() {
	w, h := max(g.width, 1), max(g.height, 1)
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
	g.log.Debug().Int("width", w).Int("height", h).Msg("canvas resized")
	if g.target == nil {
		g.target = ebitensurface.New(g.canvas, palette.Background)
		return
	}
	g.target.SetImage(g.canvas)
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.panel.ToggleField(circuit.Electric)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.panel.ToggleField(circuit.Magnetic)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.panel.ToggleField(circuit.Poynting)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.panel.ToggleMode()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.panel.AdjustVoltage(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.panel.AdjustVoltage(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.panel.AdjustResistance(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.panel.AdjustResistance(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.panel.AdjustFrequency(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.panel.AdjustFrequency(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.loop.Running() {
			g.loop.Stop()
		} else {
			g.loop.Start(&g.frames, g.target)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.loop.Restart(&g.frames, g.target)
	}
}

func (g *Game) Update() error {
	g.handleKeys()
	g.resize()
	g.frames.Fire()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)

	cfg := g.panel.Config()
	face := g.target.Face(hudFont)
	lines := []string{
		controls.Status(cfg, g.loop.Time()),
		"E/M/S: toggle fields  A: AC/DC  Up/Down: V  Left/Right: R  [ ]: f",
		"Space: stop/start  R: restart",
	}
	if err := g.loop.Err(); err != nil {
		lines = append(lines, "error: "+err.Error())
	}
	for i, l := range lines {
		text.Draw(screen, l, face, 10, 20+i*hudLine, color.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
