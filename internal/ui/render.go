package ui

import (
	"math"

	"reddypet/internal/pet"
)

// Severity of a stat bar.
const (
	SeverityOK   = "ok"
	SeverityWarn = "warn"
	SeverityBad  = "bad"
)

const (
	badBelow  = 25
	warnBelow = 50
)

// Stat is one labelled bar of the render contract.
type Stat struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Percent  int    `json:"percent"`
	Severity string `json:"severity"`
}

// View is everything a renderer needs to draw the pet.
type View struct {
	Name     string   `json:"name"`
	AsciiArt string   `json:"asciiArt"`
	Stats    []Stat   `json:"stats"`
	Mood     pet.Mood `json:"mood"`
	Stage    int      `json:"stage"`
	AgeDays  int      `json:"ageDays"`
	Day      int      `json:"day"`
	EggID    string   `json:"eggId"`
}

// BuildView turns a projection into the render contract.
func BuildView(pr pet.Projection, blink bool) View {
	return View{
		Name:     pr.Name,
		AsciiArt: Sprite(pr.SpriteKey, blink),
		Stats: []Stat{
			newStat("hunger", "Hunger", pr.Fullness, false),
			newStat("fun", "Fun", pr.Fun, false),
			newStat("clean", "Clean", pr.Clean, false),
			newStat("energy", "Energy", pr.Energy, false),
			newStat("age", "Age", float64(pr.AgePercent), true),
			newStat("health", "Health", float64(pr.Health), false),
		},
		Mood:    pr.Mood,
		Stage:   pr.Stage,
		AgeDays: pr.AgeDays,
		Day:     pr.Day,
		EggID:   pr.EggID,
	}
}

func newStat(key, label string, value float64, isAge bool) Stat {
	pct := Percent(value)
	sev := SeverityOK
	if !isAge {
		sev = StatSeverity(pct)
	}
	return Stat{Key: key, Label: label, Percent: pct, Severity: sev}
}

// Percent rounds value into [0,100].
func Percent(value float64) int {
	return int(math.Max(0, math.Min(100, math.Round(value))))
}

// StatSeverity grades a percentage.
func StatSeverity(pct int) string {
	switch {
	case pct < badBelow:
		return SeverityBad
	case pct < warnBelow:
		return SeverityWarn
	default:
		return SeverityOK
	}
}
