// Package render draws tunnel world views onto a core.Screen. It is shared
// by the terminal host and the SSH server; it never touches the simulation.
package render

import (
	"fmt"
	"math"

	"github.com/vovakirdan/colorswitch/internal/core"
	"github.com/vovakirdan/colorswitch/internal/tunnel"
)

// Visual characters.
const (
	RingChar    = '█'
	BallChar    = '●'
	ChangerChar = '◆'
	PassedChar  = '░'
)

// HalfWidth is how many world units fit left (and right) of the ball.
const HalfWidth = 10.0

// ballRowFraction places the ball (world y = 0) this far down the viewport.
const ballRowFraction = 0.65

// Palette maps ball/segment color indices to screen colors.
var Palette = []core.Color{core.ColorCyan, core.ColorYellow, core.ColorMagenta, core.ColorPurple}

// PaletteColor returns the screen color for a color index.
func PaletteColor(i int) core.Color {
	if i < 0 {
		return core.ColorWhite
	}
	return Palette[i%len(Palette)]
}

// StartKeys names the jump key per world, shown before the first jump.
var StartKeys = []string{"SPACE", "UP"}

// HUD carries host state the world views do not know about.
type HUD struct {
	Best   int // best score for the current mode
	Paused bool
	Banner string // match result banner, empty when none
	Hint   string // bottom help line
}

// Viewport maps world coordinates into a screen rectangle. Cells are about
// twice as tall as they are wide, so one world unit spans half as many rows
// as columns.
type Viewport struct {
	Rect   core.Rect
	scaleX float64
	scaleY float64
	origin int // row of world y = 0
}

// NewViewport creates a viewport for the given screen rectangle.
func NewViewport(r core.Rect) Viewport {
	scaleX := float64(r.W) / (2 * HalfWidth)
	return Viewport{
		Rect:   r,
		scaleX: scaleX,
		scaleY: scaleX / 2,
		origin: r.Y + int(float64(r.H)*ballRowFraction),
	}
}

// ToCell converts a world point to a screen cell.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	cx := float64(v.Rect.X) + float64(v.Rect.W)/2
	x := int(math.Floor(cx + p.X*v.scaleX))
	y := int(math.Floor(float64(v.origin) - p.Y*v.scaleY))
	return x, y
}

// ToWorld converts the center of a screen cell to a world point.
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	cx := float64(v.Rect.X) + float64(v.Rect.W)/2
	return core.Vec2{
		X: (float64(x) + 0.5 - cx) / v.scaleX,
		Y: (float64(v.origin) - float64(y) - 0.5) / v.scaleY,
	}
}

// Split divides the screen into one viewport per world, side by side,
// leaving a one-column divider between them.
func Split(w, h, worlds int) []Viewport {
	if worlds <= 1 {
		return []Viewport{NewViewport(core.NewRect(0, 0, w, h))}
	}
	half := (w - 1) / 2
	return []Viewport{
		NewViewport(core.NewRect(0, 0, half, h)),
		NewViewport(core.NewRect(w-half, 0, half, h)),
	}
}

// Draw renders every world into its viewport plus the HUD.
func Draw(dst *core.Screen, views []tunnel.WorldView, hud HUD) {
	dst.Clear()
	vps := Split(dst.Width(), dst.Height(), len(views))

	if len(views) > 1 {
		dst.DrawVLine(vps[0].Rect.Right(), 0, dst.Height(), '│')
	}

	for i, view := range views {
		drawWorld(dst, vps[i], view)
		drawWorldHUD(dst, vps[i], view, i, len(views), hud)
	}

	if hud.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if hud.Banner != "" {
		drawCenteredMessage(dst, hud.Banner, "Press SPACE to play again")
	}
	if hud.Hint != "" {
		dst.DrawTextCentered(0, dst.Width(), dst.Height()-1, hud.Hint, core.ColorGray)
	}
}

// drawWorld draws rings, changers and the ball of one world.
func drawWorld(dst *core.Screen, vp Viewport, view tunnel.WorldView) {
	r := vp.Rect
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			p := vp.ToWorld(x, y)
			for _, ring := range view.Rings {
				if ch, c, ok := ringCell(ring, p); ok {
					dst.SetColored(x, y, ch, c)
					break
				}
			}
		}
	}

	for _, c := range view.Changers {
		if c.Consumed {
			continue
		}
		x, y := vp.ToCell(core.Vec2{X: c.X, Y: c.Y})
		if r.Contains(x, y) {
			dst.SetColored(x, y, ChangerChar, core.ColorWhite)
		}
	}

	x, y := vp.ToCell(core.Vec2{X: view.Ball.X, Y: view.Ball.Y})
	if r.Contains(x, y) {
		dst.SetColored(x, y, BallChar, PaletteColor(view.Ball.ColorIndex))
	}
}

// ringCell returns what to draw at world point p for a ring, if anything.
func ringCell(ring tunnel.RingView, p core.Vec2) (rune, core.Color, bool) {
	d := core.Dist(p, core.Vec2{X: 0, Y: ring.Y})
	if d < ring.InnerRadius || d > ring.OuterRadius || ring.SegmentCount == 0 {
		return 0, 0, false
	}
	rel := p.Sub(core.Vec2{X: 0, Y: ring.Y})
	seg := tunnel.SegmentForAngle(rel.Angle(), ring.Rotation, ring.SegmentCount)

	ch := RingChar
	if ring.Passed {
		ch = PassedChar
	}
	colorIdx := seg
	if seg < len(ring.SegmentColors) {
		colorIdx = ring.SegmentColors[seg]
	}
	return ch, PaletteColor(colorIdx), true
}

// drawWorldHUD draws score and state messages inside a viewport.
func drawWorldHUD(dst *core.Screen, vp Viewport, view tunnel.WorldView, idx, worlds int, hud HUD) {
	r := vp.Rect

	score := fmt.Sprintf(" Score: %d ", view.Score)
	if worlds > 1 {
		score = fmt.Sprintf(" P%d Score: %d ", idx+1, view.Score)
	} else {
		dst.DrawText(r.Right()-len(fmt.Sprintf(" Best: %d ", hud.Best)), r.Y, fmt.Sprintf(" Best: %d ", hud.Best))
	}
	dst.DrawTextColored(r.X, r.Y, score, core.ColorBrightWhite)

	mid := r.Y + r.H/3
	switch view.Phase {
	case tunnel.PhaseNotStarted:
		key := StartKeys[min(idx, len(StartKeys)-1)]
		dst.DrawTextCentered(r.X, r.W, mid, "Press "+key+" to start", core.ColorBrightWhite)
	case tunnel.PhaseOver:
		dst.DrawTextCentered(r.X, r.W, mid, "GAME OVER", core.ColorBrightRed)
		if worlds == 1 && hud.Banner == "" {
			dst.DrawTextCentered(r.X, r.W, mid+1, "Press R to restart", core.ColorGray)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(runeLen(title), runeLen(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.X, box.W, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.X, box.W, box.Y+3, subtitle, core.ColorDefault)
}

func runeLen(s string) int {
	return len([]rune(s))
}
