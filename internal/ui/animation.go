package ui

import "time"

// Effect timings
const (
	BlinkInterval = 2200 * time.Millisecond
	BlinkDuration = 100 * time.Millisecond
	FlashDuration = 200 * time.Millisecond
	PulseDuration = 400 * time.Millisecond

	// Minimum bar change that triggers a pulse
	PulseDelta = 5
)

// Flash highlights the screen briefly after an action.
type Flash struct {
	Active    bool
	StartTime time.Time
}

// Pulses remembers the last shown percentage of each bar and which bars
// jumped recently.
type Pulses struct {
	last  map[string]int
	until map[string]time.Time
}

// NewPulses returns an empty tracker.
func NewPulses() *Pulses {
	return &Pulses{
		last:  make(map[string]int),
		until: make(map[string]time.Time),
	}
}

// Observe records the latest bars. The first sighting of a bar never pulses.
func (p *Pulses) Observe(stats []Stat, now time.Time) {
	for _, s := range stats {
		prev, seen := p.last[s.Key]
		p.last[s.Key] = s.Percent
		if seen && absInt(s.Percent-prev) >= PulseDelta {
			p.until[s.Key] = now.Add(PulseDuration)
		}
	}
}

// Active reports whether the bar is still pulsing at now.
func (p *Pulses) Active(key string, now time.Time) bool {
	until, ok := p.until[key]
	return ok && now.Before(until)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
