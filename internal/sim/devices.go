// Package sim provides the terminal simulator: a Bubble Tea front
// panel standing in for the ring, the segment board, and the buttons,
// wired to the same control loop the hardware would run.
package sim

import (
	"sync"
	"time"

	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

// ring storage indexes, matching the ring mask bit order.
var ringBits = [3]device.RingMask{device.RingSeconds, device.RingMinutes, device.RingHours}

const (
	ringSeconds = 0
	ringMinutes = 1
	ringHours   = 2
)

// Panel is the simulated front panel. The control loop mutates it from
// its own goroutine; the TUI snapshots it once per frame under the
// lock.
type Panel struct {
	mu sync.Mutex

	rings  [3][model.RingPositions]model.Color
	text   [6]byte
	colons device.Colons
	status device.StatusLEDs

	held     device.ButtonMask
	latched  device.ButtonMask
	deadline time.Time
}

// NewPanel returns a dark panel with no buttons pressed.
func NewPanel() *Panel {
	return &Panel{text: [6]byte{' ', ' ', ' ', ' ', ' ', ' '}}
}

// SetPosition lights one position on every ring selected by the mask.
func (p *Panel) SetPosition(rings device.RingMask, position int, color model.Color) {
	if position < 0 || position >= model.RingPositions {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, bit := range ringBits {
		if rings.Has(bit) {
			p.rings[i][position] = color
		}
	}
}

// ClearRings turns off all positions on the selected rings.
func (p *Panel) ClearRings(rings device.RingMask) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, bit := range ringBits {
		if rings.Has(bit) {
			p.rings[i] = [model.RingPositions]model.Color{}
		}
	}
}

// ClearAll turns off every LED on all rings.
func (p *Panel) ClearAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rings = [3][model.RingPositions]model.Color{}
}

// SetText shows six glyphs and the colon state on the segment board.
func (p *Panel) SetText(glyphs [6]byte, colons device.Colons) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = glyphs
	p.colons = colons
}

// SetStatus sets the mode indicator row.
func (p *Panel) SetStatus(status device.StatusLEDs) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
}

// Clear blanks the segment board, its colons, and the status row.
func (p *Panel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = [6]byte{' ', ' ', ' ', ' ', ' ', ' '}
	p.colons = device.ColonsOff
	p.status = device.StatusNone
}

// Read samples the buttons: latched buttons plus any momentary press
// still inside its hold window.
func (p *Panel) Read() device.ButtonMask {
	p.mu.Lock()
	defer p.mu.Unlock()
	mask := p.latched
	if time.Now().Before(p.deadline) {
		mask |= p.held
	}
	return mask
}

// Press holds the given buttons down for the hold duration. Presses
// inside an open window accumulate, so quick taps of two keys read as
// a combination.
func (p *Panel) Press(mask device.ButtonMask, hold time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	if now.Before(p.deadline) {
		p.held |= mask
	} else {
		p.held = mask
	}
	p.deadline = now.Add(hold)
}

// ToggleLatch flips buttons that stay held until toggled again, used
// for the hold-through-countdown reset combination.
func (p *Panel) ToggleLatch(mask device.ButtonMask) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.latched ^= mask
}

// snapshot is one consistent frame of panel state for the view.
type snapshot struct {
	rings   [3][model.RingPositions]model.Color
	text    [6]byte
	colons  device.Colons
	status  device.StatusLEDs
	buttons device.ButtonMask
}

func (p *Panel) snapshotLocked() snapshot {
	mask := p.latched
	if time.Now().Before(p.deadline) {
		mask |= p.held
	}
	return snapshot{
		rings:   p.rings,
		text:    p.text,
		colons:  p.colons,
		status:  p.status,
		buttons: mask,
	}
}

func (p *Panel) takeSnapshot() snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}
