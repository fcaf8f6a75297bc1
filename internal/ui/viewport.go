package ui

import (
	"math"

	"github.com/diegok/solopong/internal/protocol"
)

// Viewport maps court coordinates (origin at centre, y up) onto terminal cells
type Viewport struct {
	Cols   int // drawable columns
	Rows   int // drawable rows
	Top    int // first terminal row of the court
	CourtW float64
	CourtH float64
}

// NewViewport fits the court into a w×h terminal, leaving one row above and
// one row below for the scoreboard and status bar.
func NewViewport(w, h int, courtW, courtH float64) Viewport {
	rows := h - 2
	if rows < 1 {
		rows = 1
	}
	if w < 1 {
		w = 1
	}
	return Viewport{Cols: w, Rows: rows, Top: 1, CourtW: courtW, CourtH: courtH}
}

// Cell returns the terminal cell containing the court point (x, y)
func (v Viewport) Cell(x, y float64) (col, row int) {
	col = int(math.Floor((x + v.CourtW/2) / v.CourtW * float64(v.Cols)))
	row = int(math.Floor((v.CourtH/2 - y) / v.CourtH * float64(v.Rows)))
	return clampInt(col, 0, v.Cols-1), v.Top + clampInt(row, 0, v.Rows-1)
}

// Rect returns the inclusive cell rectangle covered by a body
func (v Viewport) Rect(b protocol.BodyState) (x0, y0, x1, y1 int) {
	x0, y0 = v.Cell(b.X-b.W/2, b.Y+b.H/2)
	x1, y1 = v.Cell(b.X+b.W/2, b.Y-b.H/2)
	return x0, y0, x1, y1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
