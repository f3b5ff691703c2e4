package pet

import (
	"math"
	"strings"
	"time"
)

// Projection is the derived read model of a pet at a point in time.
type Projection struct {
	Name       string
	Mood       Mood
	SpriteKey  Mood
	Fullness   float64
	Fun        float64
	Clean      float64
	Energy     float64
	Health     int
	Stage      int
	AgeDays    int
	AgePercent int
	Day        int
	EggID      string
}

// GetMood returns the first matching mood rule. Low energy dominates.
func GetMood(p Pet) Mood {
	switch {
	case p.Energy < SleepyEnergyThreshold:
		return MoodSleeping
	case p.Hunger > HungryThreshold:
		return MoodHungry
	case p.Clean < DirtyThreshold:
		return MoodDirty
	case p.Fun > HappyFunThreshold:
		return MoodHappy
	case p.Fun < BoredFunThreshold:
		return MoodBored
	default:
		return MoodIdle
	}
}

// Fullness is the inverse of hunger.
func Fullness(p Pet) float64 {
	return MaxStat - p.Hunger
}

// Health averages the four wellbeing stats.
func Health(p Pet) int {
	return int(math.Round((Fullness(p) + p.Fun + p.Clean + p.Energy) / 4))
}

// Stage maps overall health onto the three evolution stages.
func Stage(health int) int {
	switch {
	case health > StageThreeHealth:
		return 3
	case health > StageTwoHealth:
		return 2
	default:
		return 1
	}
}

// AgeDays counts whole days since birth. Unparseable birth dates count as zero.
func AgeDays(p Pet, now time.Time) int {
	born, err := time.Parse(dayLayout, p.Born)
	if err != nil {
		return 0
	}
	days := int(math.Floor(float64(now.Sub(born)) / float64(oneDay)))
	return max(0, days)
}

// EggID strips the egg prefix from the upper-cased name.
func EggID(name string) string {
	upper := strings.ToUpper(name)
	return strings.TrimPrefix(upper, EggPrefix)
}

// Project derives mood, health, stage and age from raw state.
func Project(p Pet, now time.Time) Projection {
	mood := GetMood(p)
	health := Health(p)
	age := AgeDays(p, now)
	return Projection{
		Name:       p.Name,
		Mood:       mood,
		SpriteKey:  mood,
		Fullness:   Fullness(p),
		Fun:        p.Fun,
		Clean:      p.Clean,
		Energy:     p.Energy,
		Health:     health,
		Stage:      Stage(health),
		AgeDays:    age,
		AgePercent: min(100, int(math.Round(float64(age)/AgeBarDays*100))),
		Day:        max(1, age+1),
		EggID:      EggID(p.Name),
	}
}
