package pet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoSnapshot is returned by a Store that has nothing saved yet.
var ErrNoSnapshot = errors.New("no saved snapshot")

// Store persists the single serialized snapshot.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Encode serializes the pet snapshot.
func Encode(p Pet) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot. Missing fields take their defaults and extra
// fields are ignored. A snapshot without a birth date inherits its dayId,
// or today when that is missing too.
func Decode(data []byte, now time.Time) (Pet, error) {
	p := NewPet(now)
	p.Born = ""
	p.DayID = ""

	if err := json.Unmarshal(data, &p); err != nil {
		return Pet{}, fmt.Errorf("decode snapshot: %w", err)
	}

	if !validDay(p.DayID) {
		p.DayID = DayID(now)
	}
	if !validDay(p.Born) {
		p.Born = p.DayID
	}
	if strings.TrimSpace(p.Name) == "" {
		p.Name = DefaultPetName
	}
	p.clampStats()
	return p, nil
}

func validDay(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse(dayLayout, s)
	return err == nil
}
