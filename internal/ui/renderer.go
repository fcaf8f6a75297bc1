package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	WallChar   = '\u2593' // ▓
	DashChar   = '\u2502' // │
)

// Renderer draws simulation snapshots onto a Screen
type Renderer struct {
	screen  *Screen
	aiStyle tcell.Style
}

// NewRenderer creates a renderer; difficulty picks the AI paddle tint
func NewRenderer(screen *Screen, difficulty float64) *Renderer {
	return &Renderer{
		screen:  screen,
		aiStyle: tcell.StyleDefault.Foreground(DifficultyColor(difficulty)),
	}
}

// RenderGame displays one tick of the game
func (r *Renderer) RenderGame(state protocol.Snapshot, muted bool) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	vp := NewViewport(screenW, screenH, state.CourtWidth, state.CourtHeight)

	// Court background
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, vp.Top, screenW-1, vp.Top+vp.Rows-1, courtStyle, ' ')

	lineStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(LineColor)
	for _, d := range state.Decorations {
		x0, y0, x1, y1 := vp.Rect(d)
		r.screen.FillRect(x0, y0, x1, y1, lineStyle, DashChar)
	}

	// Walls and paddles first so the puck is always drawn on top
	for _, b := range state.Bodies {
		if b.Role == protocol.RolePuck {
			continue
		}
		x0, y0, x1, y1 := vp.Rect(b)
		style, ch := r.bodyStyle(b)
		r.screen.FillRect(x0, y0, x1, y1, style, ch)
	}

	puckStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	for _, b := range state.Bodies {
		if b.Role != protocol.RolePuck {
			continue
		}
		x, y := vp.Cell(b.X, b.Y)
		r.screen.SetCell(x, y, puckStyle, BallChar)
	}

	r.renderScoreboard(state)
	r.renderStatusBar(screenW, screenH, muted)

	r.screen.Show()
}

func (r *Renderer) bodyStyle(b protocol.BodyState) (tcell.Style, rune) {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch b.Role {
	case protocol.RolePaddle:
		if b.AI {
			return r.aiStyle.Background(tcell.ColorBlack), PaddleChar
		}
		return base.Foreground(PlayerColor), PaddleChar
	case protocol.RoleGoal:
		return base.Foreground(tcell.ColorGray), WallChar
	}
	return base.Foreground(WallColor), WallChar
}

// renderScoreboard draws the scores on the top row
func (r *Renderer) renderScoreboard(state protocol.Snapshot) {
	text := fmt.Sprintf("YOU %2d : %-2d CPU", state.LeftScore, state.RightScore)
	r.screen.DrawCentered(0, text, tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite))
}

// renderStatusBar draws key hints on the bottom row
func (r *Renderer) renderStatusBar(screenW, screenH int, muted bool) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}

	hint := " W/S or ↑/↓ to move · q to quit"
	if muted {
		hint += " · muted"
	}
	r.screen.DrawText(0, statusY, hint, statusStyle)
}
