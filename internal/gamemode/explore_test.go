package gamemode

import (
	"bytes"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tileworld/internal/camera"
	"tileworld/internal/config"
	"tileworld/internal/entity"
	"tileworld/internal/input"
	"tileworld/internal/logging"
	"tileworld/internal/render"
	"tileworld/internal/world"
)

const (
	keyD input.Code = 10
	keyW input.Code = 11
)

func newExplore(t *testing.T) *Explore {
	t.Helper()
	cfg := config.Default()
	bindings := input.Bindings{keyD: input.DirRight, keyW: input.DirUp}
	sprite := image.NewRGBA(image.Rect(0, 0, 10, 10))
	player := entity.NewPlayer(config.PlayerSprite, func(string) image.Image { return sprite })
	return NewExplore(world.FromConfig(cfg), camera.New(cfg, bindings), player, func() float64 { return 60 })
}

var _ Mode = (*Explore)(nil)

func TestExploreScenario(t *testing.T) {
	e := newExplore(t)

	e.HandleInput(input.KeyDownEvent(keyD))
	e.HandleInput(input.KeyDownEvent(keyD))
	for i := 0; i < 10; i++ {
		e.Update()
	}
	assert.Equal(t, 1620.0, e.Camera.X)
	assert.Equal(t, "FPS: 60.0, X: 1620, Y: 1600", e.Overlay())

	for i := 0; i < 10000; i++ {
		e.Update()
	}
	assert.Equal(t, 4800.0, e.Camera.X)

	e.HandleInput(input.KeyUpEvent(keyD))
	e.Update()
	assert.Equal(t, 4800.0, e.Camera.X)
}

func TestExploreSimultaneousKeysApplyInOneTick(t *testing.T) {
	e := newExplore(t)
	e.HandleInput(input.KeyDownEvent(keyD))
	e.HandleInput(input.KeyDownEvent(keyW))
	e.Update()
	assert.Equal(t, 1602.0, e.Camera.X)
	assert.Equal(t, 1598.0, e.Camera.Y)
}

func TestExploreWheel(t *testing.T) {
	e := newExplore(t)
	for _, dy := range []float64{1, 1, -1} {
		e.HandleInput(input.WheelEvent(dy))
	}
	assert.InDelta(t, 1.1, e.Camera.Zoom, 1e-9)
}

func TestExploreLogsMouseDown(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logging.SetLogger(nil) })

	e := newExplore(t)
	e.HandleInput(input.MouseDownEvent(12, 34, 0))
	assert.Contains(t, buf.String(), "mouse down")
	assert.Contains(t, buf.String(), "x=12")
	assert.Contains(t, buf.String(), "y=34")
}

func TestExploreDraw(t *testing.T) {
	e := newExplore(t)
	e.Update()

	rec := render.NewRecorder(config.WindowWidth, config.WindowHeight)
	e.Draw(rec)

	assert.Equal(t, render.ColBackground, rec.Filled)
	assert.NotEmpty(t, rec.Rects)
	require.Len(t, rec.Images, 1)
	assert.Equal(t, 507.0, rec.Images[0].X)
	assert.Equal(t, 379.0, rec.Images[0].Y)
	require.Len(t, rec.Texts, 1)
	assert.Equal(t, render.TextCall{S: "FPS: 60.0, X: 1600, Y: 1600"}, rec.Texts[0])
}
