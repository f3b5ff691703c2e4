package ui

import (
	"io"
	"sync"
)

// bell is the terminal's audible click.
const bell = "\a"

// Clicker plays the button click. The output handle is opened on first use
// and reused for the rest of the session. Failures are ignored.
type Clicker struct {
	enabled bool
	open    func() (io.Writer, error)

	once sync.Once
	out  io.Writer
}

// NewClicker returns a clicker writing to the writer returned by open.
func NewClicker(enabled bool, open func() (io.Writer, error)) *Clicker {
	return &Clicker{enabled: enabled, open: open}
}

// Click plays the sound, if possible.
func (c *Clicker) Click() {
	if c == nil || !c.enabled || c.open == nil {
		return
	}
	c.once.Do(func() {
		out, err := c.open()
		if err == nil {
			c.out = out
		}
	})
	if c.out == nil {
		return
	}
	_, _ = io.WriteString(c.out, bell)
}
