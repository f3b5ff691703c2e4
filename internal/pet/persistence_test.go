package pet

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	now := mockTimeNow(t)
	p := NewPet(now)
	p.Name = "Mochi"
	p.Hunger = 42.5
	p.Fun = 12.25

	data, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data, now)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != p {
		t.Errorf("Round trip changed the pet:\n got %+v\nwant %+v", got, p)
	}
}

func TestEncodeUsesWireKeys(t *testing.T) {
	data, err := Encode(NewPet(mockTimeNow(t)))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"name", "hunger", "fun", "clean", "energy", "dayId", "lastTick", "born"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Encoded snapshot missing %q: %s", key, data)
		}
	}
}

func TestDecode(t *testing.T) {
	now := mockTimeNow(t)

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, p Pet)
	}{
		{
			name:  "Extra fields are ignored",
			input: `{"name":"Mochi","hunger":10,"fun":20,"clean":30,"energy":40,"dayId":"2025-03-01","lastTick":5,"born":"2025-02-01","sparkles":true}`,
			check: func(t *testing.T, p Pet) {
				if p.Name != "Mochi" || p.Hunger != 10 || p.Energy != 40 || p.Born != "2025-02-01" {
					t.Errorf("Unexpected pet: %+v", p)
				}
			},
		},
		{
			name:  "Missing fields take defaults",
			input: `{"name":"Mochi"}`,
			check: func(t *testing.T, p Pet) {
				if p.Hunger != InitialHunger || p.Fun != InitialFun || p.Clean != InitialClean || p.Energy != InitialEnergy {
					t.Errorf("Expected default stats, got %+v", p)
				}
				if p.LastTick != now.UnixMilli() {
					t.Errorf("Expected lastTick now, got %d", p.LastTick)
				}
				if p.Born != "2025-03-14" {
					t.Errorf("Expected born today, got %q", p.Born)
				}
			},
		},
		{
			name:  "Missing born inherits dayId",
			input: `{"name":"Old","dayId":"2024-12-25"}`,
			check: func(t *testing.T, p Pet) {
				if p.Born != "2024-12-25" {
					t.Errorf("Expected born 2024-12-25, got %q", p.Born)
				}
			},
		},
		{
			name:  "Garbage born is backfilled",
			input: `{"dayId":"2024-12-25","born":"yesterday"}`,
			check: func(t *testing.T, p Pet) {
				if p.Born != "2024-12-25" {
					t.Errorf("Expected born 2024-12-25, got %q", p.Born)
				}
			},
		},
		{
			name:  "Blank name becomes default",
			input: `{"name":"   "}`,
			check: func(t *testing.T, p Pet) {
				if p.Name != DefaultPetName {
					t.Errorf("Expected %q, got %q", DefaultPetName, p.Name)
				}
			},
		},
		{
			name:  "Out of range stats are clamped",
			input: `{"hunger":150,"fun":-20,"clean":100.5,"energy":-0.1}`,
			check: func(t *testing.T, p Pet) {
				if p.Hunger != 100 || p.Fun != 0 || p.Clean != 100 || p.Energy != 0 {
					t.Errorf("Expected clamped stats, got %+v", p)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode([]byte(tt.input), now)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			tt.check(t, p)
		})
	}
}

func TestDecodeRejectsCorruptInput(t *testing.T) {
	now := mockTimeNow(t)
	for _, input := range []string{"", "{", "not json", `{"hunger":"lots"}`, `[1,2,3]`} {
		if _, err := Decode([]byte(input), now); err == nil {
			t.Errorf("Decode(%q) expected error", input)
		} else if !strings.Contains(err.Error(), "decode snapshot") {
			t.Errorf("Decode(%q) error %q missing context", input, err)
		}
	}
}
