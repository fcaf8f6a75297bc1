package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/protocol"
)

// Direction is the movement a key asks for
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// HoldTicks is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeat but never releases.
const HoldTicks = 8

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) Direction {
	switch key {
	case tcell.KeyUp:
		return DirUp
	case tcell.KeyDown:
		return DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return DirUp
		case 's', 'S':
			return DirDown
		}
	}
	return DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// KeyState turns press events into a held up/down signal sampled once per tick
type KeyState struct {
	upUntil   int
	downUntil int
}

// Press records a press at the given tick. Pressing one direction releases the other.
func (k *KeyState) Press(dir Direction, tick int) {
	switch dir {
	case DirUp:
		k.upUntil = tick + HoldTicks
		k.downUntil = 0
	case DirDown:
		k.downUntil = tick + HoldTicks
		k.upUntil = 0
	}
}

// Sample returns the input state for the given tick
func (k *KeyState) Sample(tick int) protocol.Input {
	return protocol.Input{
		Up:   tick < k.upUntil,
		Down: tick < k.downUntil,
	}
}
