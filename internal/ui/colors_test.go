package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDifficultyColor_Endpoints(t *testing.T) {
	easy := tcell.NewRGBColor(0x2e, 0xcc, 0x71)
	hard := tcell.NewRGBColor(0xe7, 0x4c, 0x3c)

	if got := DifficultyColor(0.1); got != easy {
		t.Errorf("expected easy colour for low difficulty, got %v", got)
	}
	if got := DifficultyColor(5); got != hard {
		t.Errorf("expected hard colour for high difficulty, got %v", got)
	}
}

func TestDifficultyColor_Blends(t *testing.T) {
	easy := DifficultyColor(easyDifficulty)
	mid := DifficultyColor(1.0)
	hard := DifficultyColor(hardDifficulty)

	if mid == easy || mid == hard {
		t.Errorf("expected a blended colour for medium difficulty, got %v", mid)
	}

	er, _, _ := easy.RGB()
	mr, _, _ := mid.RGB()
	hr, _, _ := hard.RGB()
	if !(er < mr && mr < hr) {
		t.Errorf("expected red channel to grow with difficulty: %d, %d, %d", er, mr, hr)
	}
}
