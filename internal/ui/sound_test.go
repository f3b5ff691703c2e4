package ui

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestClickerWritesBell(t *testing.T) {
	var buf bytes.Buffer
	opens := 0
	c := NewClicker(true, func() (io.Writer, error) {
		opens++
		return &buf, nil
	})

	c.Click()
	c.Click()

	if buf.String() != "\a\a" {
		t.Errorf("Expected two bells, got %q", buf.String())
	}
	if opens != 1 {
		t.Errorf("Expected output opened once, got %d", opens)
	}
}

func TestClickerDisabled(t *testing.T) {
	opened := false
	c := NewClicker(false, func() (io.Writer, error) {
		opened = true
		return io.Discard, nil
	})
	c.Click()
	if opened {
		t.Error("Disabled clicker should never open its output")
	}
}

func TestClickerIgnoresFailures(t *testing.T) {
	opens := 0
	c := NewClicker(true, func() (io.Writer, error) {
		opens++
		return nil, errors.New("no terminal")
	})
	c.Click()
	c.Click()
	if opens != 1 {
		t.Errorf("Failed open should not be retried, got %d attempts", opens)
	}

	var nilClicker *Clicker
	nilClicker.Click()
}
