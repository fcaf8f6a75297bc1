package app

import (
	"fmt"
	"io"

	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/protocol"
)

// Report summarises a headless run
type Report struct {
	Ticks         int
	LeftScore     int
	RightScore    int
	CollisionTick int // ticks with at least one collision
	Retargets     int
	AITarget      float64
	Puck          game.Vec2
}

// RunHeadless simulates cfg.Ticks ticks without a terminal.
// With autopilot set, the left paddle is steered toward the puck through the
// same up/down input a player would use; otherwise it stays idle.
func RunHeadless(cfg *config.Config, autopilot bool) Report {
	gs := game.NewGameState(cfg.Tuning())

	var report Report
	for i := 0; i < cfg.Ticks; i++ {
		var in protocol.Input
		if autopilot {
			in = autopilotInput(gs)
		}

		result := gs.Update(in)
		if result.Collided {
			report.CollisionTick++
		}
		if result.Retargeted {
			report.Retargets++
		}
	}

	report.Ticks = gs.World.Tick
	report.LeftScore, report.RightScore = gs.Score()
	report.AITarget = gs.World.AITarget
	if puck := gs.Puck(); puck != nil {
		report.Puck = puck.Position
	}
	return report
}

// autopilotInput holds up or down until the left paddle lines up with the puck
func autopilotInput(gs *game.GameState) protocol.Input {
	puck := gs.Puck()
	paddles := gs.World.Paddles(protocol.SideLeft)
	if puck == nil || len(paddles) == 0 {
		return protocol.Input{}
	}

	paddle := gs.World.Body(paddles[0])
	switch {
	case puck.Position.Y > paddle.Position.Y+gs.DeadZone:
		return protocol.Input{Up: true}
	case puck.Position.Y < paddle.Position.Y-gs.DeadZone:
		return protocol.Input{Down: true}
	}
	return protocol.Input{}
}

// Write prints the report in a plain key=value layout
func (r Report) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"=== Headless Run ===\nticks=%d score=%d:%d collision_ticks=%d retargets=%d ai_target=%.2f puck=(%.2f, %.2f)\n",
		r.Ticks, r.LeftScore, r.RightScore, r.CollisionTick, r.Retargets, r.AITarget, r.Puck.X, r.Puck.Y)
	return err
}
