// Package device declares the hardware collaborator boundaries: the ring
// driver, the 7-segment board, the real-time clock, the buttons, and the
// monotonic clock used for every bounded wait.
package device

import (
	"time"

	"github.com/hmolin/clockos/internal/model"
)

// RingMask selects a subset of the three 60-position sub-rings. The bit
// layout matches the ring driver protocol.
type RingMask uint8

// Ring mask bits and common combinations.
const (
	RingNone    RingMask = 0x00
	RingSeconds RingMask = 0x01
	RingMinutes RingMask = 0x02
	RingHours   RingMask = 0x04
	RingAll              = RingHours | RingMinutes | RingSeconds
)

// Has reports whether every bit of m is set in r.
func (r RingMask) Has(m RingMask) bool {
	return r&m == m
}

// RingDisplay is the annular LED display. Writes are fire-and-forget
// serial commands; the driver offers no error channel.
type RingDisplay interface {
	// SetPosition lights (or blanks, with color 0) one position on every
	// ring selected by the mask.
	SetPosition(rings RingMask, position int, color model.Color)
	// ClearRings turns off all positions on the selected rings.
	ClearRings(rings RingMask)
	// ClearAll turns off every LED on all rings.
	ClearAll()
}

// Colons is the colon state of the segment board.
type Colons uint8

// Colon states.
const (
	ColonsOff Colons = iota
	ColonsOn
	ColonsBottomTwo
	ColonsTopTwo
)

// StatusLEDs is the 4-bit mode indicator row on the segment board.
type StatusLEDs uint8

// Mode indicator patterns.
const (
	StatusNone        StatusLEDs = 0x00
	StatusSetTimeDate StatusLEDs = 0x02
	StatusSetSettings StatusLEDs = 0x04
	StatusSetStyling  StatusLEDs = 0x08
	StatusReset       StatusLEDs = 0x0f
)

// SegmentDisplay is the six-digit 7-segment board. Text glyphs are the
// ASCII subset in the glyph table; unknown glyphs render as the fallback.
type SegmentDisplay interface {
	SetText(glyphs [6]byte, colons Colons)
	SetStatus(status StatusLEDs)
	Clear()
}

// RealTimeClock reads and writes the battery-backed clock chip.
type RealTimeClock interface {
	Read() (model.TimeSample, error)
	Write(model.TimeSample) error
}

// ButtonMask is the raw 3-bit button sample.
type ButtonMask uint8

// Button combinations recognized by the menu.
const (
	NoButtons  ButtonMask = 0x00
	Button1    ButtonMask = 0x01
	Button2    ButtonMask = 0x02
	Button3    ButtonMask = 0x04
	Buttons12  ButtonMask = Button1 | Button2
	Buttons13  ButtonMask = Button1 | Button3
	Buttons23  ButtonMask = Button2 | Button3
	AllButtons ButtonMask = Button1 | Button2 | Button3
)

// Buttons samples the three push buttons.
type Buttons interface {
	Read() ButtonMask
}

// Clock is the monotonic time source behind debouncing, blinking, and
// animation frame delays. Sleep is the only blocking primitive in the
// control loop; tests substitute a virtual implementation.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// WallClock is the real monotonic clock.
type WallClock struct{}

// Now returns the current time.
func (WallClock) Now() time.Time { return time.Now() }

// Sleep blocks for the given duration.
func (WallClock) Sleep(d time.Duration) { time.Sleep(d) }
