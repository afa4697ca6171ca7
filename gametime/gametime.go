// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"time"

	"goportal/cvars"
	"goportal/math"
)

var (
	startTime = time.Now()
)

type GameTime struct {
	time       float64
	oldTime    float64
	frameTime  float64
	frameCount int
}

func (h *GameTime) Reset() {
	h.frameTime = 0.1
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) OldTime() float64   { return h.oldTime }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }
func (h *GameTime) FrameIncrease()     { h.frameCount++ }

// UpdateTime updates the host time from the wall clock.
// Returns false if it would exceed max fps
func (h *GameTime) UpdateTime() bool {
	h.time = time.Since(startTime).Seconds()
	maxFPS := math.Clamp(10.0, float64(cvars.HostMaxFps.Value()), 1000.0)
	if h.time-h.oldTime < 1/maxFPS {
		return false
	}
	h.frameTime = h.time - h.oldTime
	h.oldTime = h.time
	h.frameTime = scaled(h.frameTime)
	return true
}

// Step advances the host time by a fixed interval, ignoring the wall
// clock. Used by fixed-rate hosts and tests.
func (h *GameTime) Step(dt float64) {
	h.oldTime = h.time
	h.time += dt
	h.frameTime = scaled(dt)
}

func scaled(frameTime float64) float64 {
	if cvars.HostTimeScale.Value() > 0 {
		return frameTime * float64(cvars.HostTimeScale.Value())
	} else if cvars.HostFrameRate.Value() > 0 {
		return float64(cvars.HostFrameRate.Value())
	}
	return math.Clamp(0.001, frameTime, 0.1)
}
