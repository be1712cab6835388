// Package render converts time samples into incremental ring update
// commands, tracking the previous sample so unchanged positions cost
// nothing on the wire.
package render

import (
	"fmt"

	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

// Command is one incremental ring display update: either a single
// position write (color 0 blanks it) or a whole-ring clear.
type Command struct {
	Clear    bool
	Rings    device.RingMask
	Position int
	Color    model.Color
}

// SetPosition builds a position write command.
func SetPosition(rings device.RingMask, position int, color model.Color) Command {
	return Command{Rings: rings, Position: position, Color: color}
}

// ClearRings builds a whole-ring clear command.
func ClearRings(rings device.RingMask) Command {
	return Command{Clear: true, Rings: rings}
}

// Apply replays the command onto a ring display.
func (c Command) Apply(ring device.RingDisplay) {
	if c.Clear {
		ring.ClearRings(c.Rings)
		return
	}
	ring.SetPosition(c.Rings, c.Position, c.Color)
}

// String renders the command for test failures and debug dumps.
func (c Command) String() string {
	if c.Clear {
		return fmt.Sprintf("clear(%03b)", c.Rings)
	}
	return fmt.Sprintf("set(%03b,%d,%s)", c.Rings, c.Position, c.Color)
}

// Apply replays a command sequence onto a ring display.
func Apply(ring device.RingDisplay, cmds []Command) {
	for _, c := range cmds {
		c.Apply(ring)
	}
}
