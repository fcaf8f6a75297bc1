package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Difficulty range mapped onto the AI paddle tint
const (
	easyDifficulty = 0.25
	hardDifficulty = 2.0
)

var (
	PlayerColor = tcell.ColorDodgerBlue
	WallColor   = tcell.ColorWhite
	LineColor   = tcell.ColorDarkGray

	easyColor, _ = colorful.Hex("#2ecc71")
	hardColor, _ = colorful.Hex("#e74c3c")
)

// DifficultyColor tints the AI paddle from green (easy) to red (hard)
func DifficultyColor(difficulty float64) tcell.Color {
	t := (difficulty - easyDifficulty) / (hardDifficulty - easyDifficulty)
	switch {
	case t <= 0:
		return toTcell(easyColor)
	case t >= 1:
		return toTcell(hardColor)
	}
	return toTcell(easyColor.BlendLab(hardColor, t).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
