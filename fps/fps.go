package fps

import (
	"fmt"
	"time"
)

// Meter tracks the frame rate. The displayed value only changes once a
// second so it stays readable.
type Meter struct {
	last     time.Duration
	cooldown time.Duration
	real     float64
	display  float64
	started  bool
}

// Tick records a frame at now, measured on any monotonic clock.
func (m *Meter) Tick(now time.Duration) {
	if !m.started {
		m.started = true
		m.last = now
		return
	}
	delta := now - m.last
	m.last = now
	if delta > 0 {
		m.real = float64(time.Second) / float64(delta)
	}
	m.cooldown -= delta
	if m.cooldown <= 0 {
		m.display = m.real
		m.cooldown = time.Second
	}
}

// Real is the rate implied by the last frame alone.
func (m *Meter) Real() float64 {
	return m.real
}

func (m *Meter) Display() float64 {
	return m.display
}

func (m *Meter) String() string {
	return fmt.Sprintf("%d fps", int(m.display))
}
