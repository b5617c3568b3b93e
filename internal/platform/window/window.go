// Package window runs colorswitch in a desktop window with Ebitengine.
// It shares the host session with the terminal front end and only differs
// in how input is read and how world views are drawn.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/colorswitch/internal/core"
	"github.com/vovakirdan/colorswitch/internal/match"
	"github.com/vovakirdan/colorswitch/internal/platform/host"
	"github.com/vovakirdan/colorswitch/internal/render"
	"github.com/vovakirdan/colorswitch/internal/tunnel"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 720

	arcSteps        = 10   // line segments per ring segment
	ballRowFraction = 0.65 // matches the terminal layout
	glyphW          = 6    // debug font cell size
	glyphH          = 16
)

var (
	background  = color.RGBA{0x1b, 0x1b, 0x1b, 0xff}
	dividerCol  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	passedShade = color.RGBA{0x40, 0x40, 0x40, 0xff}
	overlayCol  = color.RGBA{0x00, 0x00, 0x00, 0xc0}

	palette = []color.RGBA{
		{0x35, 0xe2, 0xf2, 0xff}, // cyan
		{0xf6, 0xdf, 0x0e, 0xff}, // yellow
		{0xff, 0x00, 0x80, 0xff}, // magenta
		{0x8c, 0x13, 0xfb, 0xff}, // purple
	}
)

func paletteColor(i int) color.RGBA {
	if i < 0 {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return palette[i%len(palette)]
}

// Options configures the window.
type Options struct {
	Width    int
	Height   int
	TickRate int
	Seed     int64
}

// Game implements ebiten.Game on top of a host session.
type Game struct {
	session *host.Session
	width   int
	height  int
}

var _ ebiten.Game = (*Game)(nil)

// New creates a window game running a fresh match in the given mode.
func New(mode match.Mode, svc host.Services, opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	session, err := host.NewSession(mode, svc, opts.Seed, opts.TickRate)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return &Game{session: session, width: opts.Width, height: opts.Height}, nil
}

// Update reads this tick's keys and advances the session.
func (g *Game) Update() error {
	if g.session.Step(readInput(g.session.Mode())) {
		return ebiten.Termination
	}
	return nil
}

// readInput maps keys pressed since the last tick to actions.
func readInput(mode match.Mode) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.SetWorld(0, core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		if mode == match.ModeVersus {
			in.SetWorld(1, core.ActionJump)
		} else {
			in.SetWorld(0, core.ActionJump)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Global.Set(core.ActionBack)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Global.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Global.Set(core.ActionRestart)
	}
	return in
}

// Layout keeps a fixed logical resolution.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// Draw renders every world side by side plus the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	views := g.session.Controller().Views()
	vps := render.Split(g.width, g.height, len(views))
	if len(views) > 1 {
		x := float32(vps[0].Rect.Right())
		vector.StrokeLine(screen, x, 0, x, float32(g.height), 2, dividerCol, false)
	}

	hud := g.session.HUD()
	for i, view := range views {
		p := newPanel(vps[i].Rect)
		p.drawWorld(screen, view)
		p.drawHUD(screen, view, i, len(views), hud.Best)
	}

	switch {
	case hud.Banner != "":
		g.drawMessage(screen, hud.Banner, "SPACE to play again")
	case hud.Paused:
		g.drawMessage(screen, "PAUSED", "P to resume")
	}
}

func (g *Game) drawMessage(screen *ebiten.Image, title, subtitle string) {
	w := max(len(title), len(subtitle))*glyphW + 40
	h := 3*glyphH + 16
	x := (g.width - w) / 2
	y := (g.height - h) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), overlayCol, false)
	printCentered(screen, title, x, w, y+8)
	printCentered(screen, subtitle, x, w, y+8+2*glyphH)
}

// panel projects world units onto one pixel rectangle. Units are square.
type panel struct {
	rect    core.Rect
	scale   float64 // pixels per world unit
	centerX float64
	originY float64 // pixel row of world y = 0
}

func newPanel(r core.Rect) panel {
	return panel{
		rect:    r,
		scale:   float64(r.W) / (2 * render.HalfWidth),
		centerX: float64(r.X) + float64(r.W)/2,
		originY: float64(r.Y) + float64(r.H)*ballRowFraction,
	}
}

func (p panel) project(x, y float64) (float32, float32) {
	return float32(p.centerX + x*p.scale), float32(p.originY - y*p.scale)
}

func (p panel) drawWorld(screen *ebiten.Image, view tunnel.WorldView) {
	sub, ok := screen.SubImage(rectImage(p.rect)).(*ebiten.Image)
	if !ok {
		return
	}

	for _, ring := range view.Rings {
		p.drawRing(sub, ring)
	}
	for _, c := range view.Changers {
		if !c.Consumed {
			p.drawChanger(sub, c)
		}
	}

	bx, by := p.project(view.Ball.X, view.Ball.Y)
	vector.DrawFilledCircle(sub, bx, by, float32(view.Ball.Radius*p.scale), paletteColor(view.Ball.ColorIndex), true)
}

func (p panel) drawRing(dst *ebiten.Image, ring tunnel.RingView) {
	if ring.SegmentCount == 0 {
		return
	}
	mid := (ring.InnerRadius + ring.OuterRadius) / 2
	width := float32((ring.OuterRadius - ring.InnerRadius) * p.scale)
	step := core.TwoPi / float64(ring.SegmentCount)

	for seg := 0; seg < ring.SegmentCount; seg++ {
		clr := passedShade
		if !ring.Passed {
			idx := seg
			if seg < len(ring.SegmentColors) {
				idx = ring.SegmentColors[seg]
			}
			clr = paletteColor(idx)
		}
		start := ring.Rotation + float64(seg)*step
		p.strokeArc(dst, 0, ring.Y, mid, start, start+step, width, clr)
	}
}

// drawChanger draws a small disc split into the palette colors.
func (p panel) drawChanger(dst *ebiten.Image, c tunnel.ChangerView) {
	step := core.TwoPi / float64(len(palette))
	width := float32(c.Radius * p.scale)
	for i := range palette {
		start := float64(i) * step
		p.strokeArc(dst, c.X, c.Y, c.Radius/2, start, start+step, width, palette[i])
	}
}

// strokeArc draws a circular arc around (cx, cy) in world units.
func (p panel) strokeArc(dst *ebiten.Image, cx, cy, r, from, to float64, width float32, clr color.Color) {
	delta := (to - from) / arcSteps
	x0, y0 := p.project(cx+r*math.Cos(from), cy+r*math.Sin(from))
	for i := 1; i <= arcSteps; i++ {
		a := from + float64(i)*delta
		x1, y1 := p.project(cx+r*math.Cos(a), cy+r*math.Sin(a))
		vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
		x0, y0 = x1, y1
	}
}

func (p panel) drawHUD(screen *ebiten.Image, view tunnel.WorldView, idx, worlds, best int) {
	r := p.rect
	score := fmt.Sprintf("Score: %d", view.Score)
	if worlds > 1 {
		score = fmt.Sprintf("P%d Score: %d", idx+1, view.Score)
	} else {
		bestText := fmt.Sprintf("Best: %d", best)
		ebitenutil.DebugPrintAt(screen, bestText, r.Right()-len(bestText)*glyphW-8, r.Y+4)
	}
	ebitenutil.DebugPrintAt(screen, score, r.X+8, r.Y+4)

	mid := r.Y + r.H/3
	switch view.Phase {
	case tunnel.PhaseNotStarted:
		key := render.StartKeys[min(idx, len(render.StartKeys)-1)]
		printCentered(screen, "Press "+key+" to start", r.X, r.W, mid)
	case tunnel.PhaseOver:
		printCentered(screen, "GAME OVER", r.X, r.W, mid)
	}
}

func rectImage(r core.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func printCentered(screen *ebiten.Image, text string, x0, width, y int) {
	ebitenutil.DebugPrintAt(screen, text, x0+(width-len(text)*glyphW)/2, y)
}

// Run opens a window and plays until it is closed or Esc is pressed.
func Run(mode match.Mode, svc host.Services, opts Options) error {
	game, err := New(mode, svc, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Color Switch - " + mode.String())
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
