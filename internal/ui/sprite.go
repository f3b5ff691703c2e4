package ui

import (
	"strings"

	"reddypet/internal/pet"
)

const (
	eyeOpen   = "•"
	eyeClosed = "-"
	eyeMark   = "{e}"
)

// spriteTemplates holds one face per mood. eyeMark is replaced by the
// current eye glyph; every other character is fixed.
var spriteTemplates = map[pet.Mood]string{
	pet.MoodHappy: `
  .-""""-.
 /  .--.  \
|  /    \  |
| |  {e}{e}  | |
|  \ -- /  |
 \  '--'  /
  '-.__.-'`,
	pet.MoodHungry: `
  .-""""-.
 /  .--.  \
|  /    \  |
| |  {e}_  | |
|  \ __/   |
 \  '--.  /
  '-.__\-'`,
	pet.MoodDirty: `
  .-""""-.
 /  .--.  \
|  /    \  |
| |  {e}{e}  | |  ~
|  \ .. /  | ~
 \  '--'  /  ~
  '-.__.-'`,
	pet.MoodSleeping: `
  .-""""-.
 /  .--.  \
|  /    \  |
| |  - - | | z
|  \ __/  |  z
 \  '--'  /   z
  '-.__.-'`,
	pet.MoodBored: `
  .-""""-.
 /  .--.  \
|  /    \  |
| |  - - | |
|  \ ___/  |
 \  '--'  /
  '-.__.-'`,
	pet.MoodIdle: `
  .-""""-.
 /  .--.  \
|  /    \  |
| |  {e}{e}  | |
|  \ __/  |
 \  '--'  /
  '-.__.-'`,
}

// Sprite returns the ASCII face for mood. blink only swaps eye glyphs.
// Unknown moods render as idle.
func Sprite(mood pet.Mood, blink bool) string {
	tmpl, ok := spriteTemplates[mood]
	if !ok {
		tmpl = spriteTemplates[pet.MoodIdle]
	}
	eye := eyeOpen
	if blink {
		eye = eyeClosed
	}
	return trimArt(strings.ReplaceAll(tmpl, eyeMark, eye))
}

// trimArt drops blank edge lines and trailing spaces.
func trimArt(art string) string {
	lines := strings.Split(art, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
