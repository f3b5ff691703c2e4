package pet

import (
	"strings"
	"time"
)

// Testable time function
var TimeNow = func() time.Time { return time.Now().UTC() }

// Pet represents the virtual pet's state
type Pet struct {
	Name     string  `json:"name"`
	Hunger   float64 `json:"hunger"` // higher is worse
	Fun      float64 `json:"fun"`
	Clean    float64 `json:"clean"`
	Energy   float64 `json:"energy"`
	DayID    string  `json:"dayId"`
	LastTick int64   `json:"lastTick"` // ms since epoch
	Born     string  `json:"born"`
}

// NewPet creates a pet with default stats, born on the day of now.
func NewPet(now time.Time) Pet {
	today := DayID(now)
	return Pet{
		Name:     DefaultPetName,
		Hunger:   InitialHunger,
		Fun:      InitialFun,
		Clean:    InitialClean,
		Energy:   InitialEnergy,
		DayID:    today,
		LastTick: now.UnixMilli(),
		Born:     today,
	}
}

// DayID formats the UTC calendar day of t.
func DayID(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// Steps returns how many decay steps have elapsed since the last tick.
// At least one step is always applied.
func (p *Pet) Steps(now time.Time) int64 {
	elapsed := now.UnixMilli() - p.LastTick
	return max(1, elapsed/StepDuration.Milliseconds())
}

// Decay applies the passive stat drift accumulated since the last tick.
func (p *Pet) Decay(now time.Time) {
	steps := float64(p.Steps(now))

	p.Hunger += HungerPerStep * steps
	p.Fun += FunPerStep * steps
	p.Clean += CleanPerStep * steps
	p.Energy += EnergyPerStep * steps
	p.clampStats()

	p.LastTick = max(p.LastTick, now.UnixMilli())
	p.DayID = DayID(now)
}

// Feed lowers hunger and gives a little energy.
func (p *Pet) Feed() {
	p.Hunger -= FeedHungerDecrease
	p.Energy += FeedEnergyIncrease
	p.clampStats()
}

// Play raises fun at the cost of energy and appetite.
func (p *Pet) Play() {
	p.Fun += PlayFunIncrease
	p.Energy -= PlayEnergyDecrease
	p.Hunger += PlayHungerIncrease
	p.clampStats()
}

// Wash raises cleanliness.
func (p *Pet) Wash() {
	p.Clean += CleanIncrease
	p.clampStats()
}

// Sleep restores energy.
func (p *Pet) Sleep() {
	p.Energy += SleepEnergyGain
	p.clampStats()
}

// Rename sets the name unless it is blank after trimming.
func (p *Pet) Rename(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	p.Name = name
	return true
}

// Reset replaces the pet with a newly hatched one.
func (p *Pet) Reset(now time.Time) {
	*p = NewPet(now)
}

// Apply runs the named action. Unknown actions are ignored and report false.
func (p *Pet) Apply(action Action, arg string, now time.Time) bool {
	switch action {
	case ActionFeed:
		p.Feed()
	case ActionPlay:
		p.Play()
	case ActionClean:
		p.Wash()
	case ActionSleep:
		p.Sleep()
	case ActionRename:
		return p.Rename(arg)
	case ActionReset:
		p.Reset(now)
	default:
		return false
	}
	return true
}

func (p *Pet) clampStats() {
	p.Hunger = clamp(p.Hunger)
	p.Fun = clamp(p.Fun)
	p.Clean = clamp(p.Clean)
	p.Energy = clamp(p.Energy)
}

func clamp(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
