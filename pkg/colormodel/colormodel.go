// Package colormodel holds the picker's color state: three 8-bit RGB
// channels plus the derived "#RRGGBB" hex string. The two representations
// never diverge between mutations.
package colormodel

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel identifies one of the three color channels.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// String returns the lowercase channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// Snapshot is an immutable copy of the model state, taken per export or
// published to subscribers after a mutation.
type Snapshot struct {
	R, G, B uint8
	Hex     string // "#RRGGBB", uppercase
}

// Model is the mutable color state owned by a single picker window.
// Channels are stored as float64 so slider positions bind directly, but
// hex formatting truncates toward zero — a slider at 127.9 displays 7F.
//
// Model is not safe for concurrent use; all mutations happen on the UI
// event loop.
type Model struct {
	red, green, blue float64 // clamped to [0, 255]
	hex              string
	subs             []func(Snapshot)
}

// New returns a model at the default mid-gray (127,127,127) = #7F7F7F.
func New() *Model {
	m := &Model{red: 127, green: 127, blue: 127}
	m.recompute()
	return m
}

// SetChannel clamps v to [0,255], assigns it, and recomputes the hex
// string. Out-of-range input is clamped, never rejected.
func (m *Model) SetChannel(ch Channel, v float64) {
	v = clamp(v)
	switch ch {
	case Red:
		m.red = v
	case Green:
		m.green = v
	case Blue:
		m.blue = v
	default:
		return
	}
	m.recompute()
	m.publish()
}

// Channel returns the raw (possibly fractional) value of one channel.
func (m *Model) Channel(ch Channel) float64 {
	switch ch {
	case Red:
		return m.red
	case Green:
		return m.green
	case Blue:
		return m.blue
	}
	return 0
}

// RGB returns the integral channel values, truncated toward zero.
func (m *Model) RGB() (r, g, b uint8) {
	return uint8(m.red), uint8(m.green), uint8(m.blue)
}

// Hex returns the derived "#RRGGBB" string.
func (m *Model) Hex() string {
	return m.hex
}

// SetFromHex parses text as a 6-digit hex color, with or without a leading
// "#" and with surrounding whitespace ignored. On success all channels and
// the hex string update together and true is returned. Malformed input
// (wrong length, non-hex characters) leaves the model untouched and
// returns false; no error is surfaced beyond the boolean.
func (m *Model) SetFromHex(text string) bool {
	s := strings.ToUpper(strings.TrimSpace(text))
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return false
	}

	m.red = float64(v >> 16 & 0xFF)
	m.green = float64(v >> 8 & 0xFF)
	m.blue = float64(v & 0xFF)
	m.recompute()
	m.publish()
	return true
}

// Snapshot returns an immutable copy of the current state.
func (m *Model) Snapshot() Snapshot {
	r, g, b := m.RGB()
	return Snapshot{R: r, G: g, B: b, Hex: m.hex}
}

// OnChange registers a subscriber that receives a snapshot after every
// completed mutation. Subscribers run synchronously, in registration
// order, on the mutating goroutine.
func (m *Model) OnChange(fn func(Snapshot)) {
	m.subs = append(m.subs, fn)
}

// recompute rebuilds the hex string from the channels. uint8 conversion
// of a clamped non-negative float truncates, matching the displayed hex
// for fractional slider positions.
func (m *Model) recompute() {
	r, g, b := m.RGB()
	m.hex = fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (m *Model) publish() {
	snap := m.Snapshot()
	for _, fn := range m.subs {
		fn(snap)
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
