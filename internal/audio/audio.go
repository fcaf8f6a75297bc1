package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (retro blip)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// scoreJingle is a short descending run played after a goal
func scoreJingle() beep.Streamer {
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

// PlayCollision plays the collision blip. Call at most once per tick.
func PlayCollision() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(880, 40*time.Millisecond))
}

// PlayScore plays the sound when a goal is scored
func PlayScore() {
	if !initialized {
		return
	}
	speaker.Play(scoreJingle())
}
