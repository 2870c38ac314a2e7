package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '▀'
	BallChar     = '●'
	BrickChar    = '█'
	BrickAltChar = '▓'
	SparkChar    = '*'
	FadeChar     = '·'
)

// layout maps the field onto the cells inside the border.
// Row 0 holds the HUD and the border starts on row 1.
type layout struct {
	screenW, screenH int
	ox, oy           int // First inner cell
	iw, ih           int // Inner size in cells
	sx, sy           float64
	tooSmall         bool
}

func newLayout(screenW, screenH int, fieldW, fieldH float64) layout {
	l := layout{
		screenW: screenW,
		screenH: screenH,
		ox:      1,
		oy:      2,
		iw:      screenW - 2,
		ih:      screenH - 3,
	}
	l.tooSmall = screenW < minScreenW || screenH < minScreenH
	if l.iw > 0 && l.ih > 0 {
		l.sx = fieldW / float64(l.iw)
		l.sy = fieldH / float64(l.ih)
	}
	return l
}

// cellX converts a field x to a screen column inside the border.
func (l layout) cellX(x float64) int {
	return l.ox + core.Clamp(int(x/l.sx), 0, l.iw-1)
}

// cellY converts a field y to a screen row inside the border.
func (l layout) cellY(y float64) int {
	return l.oy + core.Clamp(int(y/l.sy), 0, l.ih-1)
}

// span converts a field interval to a half-open column range with at least one cell.
func (l layout) span(x, w float64) (int, int) {
	from := l.cellX(x)
	to := l.ox + core.Clamp(int((x+w)/l.sx), 0, l.iw)
	if to <= from {
		to = from + 1
	}
	return from, to
}

// fieldX converts a screen column to the field x at the cell centre.
// ok is false when the column lies outside the field.
func (l layout) fieldX(col int) (float64, bool) {
	if l.tooSmall || col < l.ox || col >= l.ox+l.iw {
		return 0, false
	}
	return (float64(col-l.ox) + 0.5) * l.sx, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.layout.screenW || dst.Height() != g.layout.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	// Check for screen too small
	if g.layout.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	snap := g.sim.Snapshot()

	g.renderHUD(dst, &snap)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)
	g.renderBricks(dst, &snap)
	g.renderParticles(dst)
	g.renderPaddle(dst, &snap)
	g.renderBall(dst, &snap)
	g.renderOverlay(dst, &snap)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColor(1, 0, scoreText, core.ColorBrightWhite)

	livesText := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextCentered(0, livesText, core.ColorBrightRed)

	levelText := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawTextColor(dst.Width()-len(levelText)-1, 0, levelText, core.ColorAccent)
}

// renderBricks draws all alive bricks in their row colour.
func (g *Game) renderBricks(dst *core.Screen, snap *Snapshot) {
	for i, b := range snap.Bricks {
		if !b.Alive() {
			continue
		}

		glyph := BrickChar
		if (i%snap.GridCols)%2 == 1 {
			glyph = BrickAltChar
		}

		x0, x1 := g.layout.span(b.X, b.Width)
		y := g.layout.cellY(b.Y)
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, glyph, b.Color)
		}
	}
}

// renderParticles draws the brick bursts, dimming as they fade.
func (g *Game) renderParticles(dst *core.Screen) {
	g.particles.Each(func(p Particle) {
		if p.X < 0 || p.X > g.cfg.Field.Width || p.Y < 0 || p.Y > g.cfg.Field.Height {
			return
		}
		glyph := SparkChar
		if p.Life < 0.5 {
			glyph = FadeChar
		}
		dst.SetCell(g.layout.cellX(p.X), g.layout.cellY(p.Y), glyph, p.Color)
	})
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, snap *Snapshot) {
	x0, x1 := g.layout.span(snap.Paddle.X, snap.Paddle.Width)
	y := g.layout.cellY(snap.Paddle.Y)
	for x := x0; x < x1; x++ {
		dst.SetCell(x, y, PaddleChar, core.ColorAccent)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen, snap *Snapshot) {
	dst.SetCell(g.layout.cellX(snap.Ball.X), g.layout.cellY(snap.Ball.Y), BallChar, core.ColorBrightWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	bottom := dst.Height() - 1

	switch snap.Phase {
	case PhaseIdle:
		dst.DrawTextCentered(bottom, " Press SPACE to start ", core.ColorYellow)

	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P or SPACE to resume", core.ColorYellow)

	case PhaseTransition:
		if snap.Hold == HoldLevelUp {
			dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf(" Level %d ", snap.Level), core.ColorBrightGreen)
		} else {
			dst.DrawTextCentered(bottom, " Get ready... ", core.ColorYellow)
		}

	case PhaseGameOver:
		title, color := "GAME OVER", core.ColorBrightRed
		if snap.Won {
			title, color = "YOU WIN!", core.ColorBrightGreen
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, title, subtitle, color)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	// Draw text
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
