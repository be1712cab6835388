package menu

import (
	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

// sweep wipes the whole ring in the given color, starting at twelve and
// closing symmetrically at the six position. Sweeping with Blank wipes
// the ring dark again.
func (c *Controller) sweep(color model.Color) {
	c.dev.Ring.SetPosition(device.RingAll, 0, color)
	c.dev.Clock.Sleep(animationFrame)
	for i := 1; i < model.RingPositions/2; i++ {
		c.dev.Ring.SetPosition(device.RingAll, model.RingPositions-i, color)
		c.dev.Ring.SetPosition(device.RingAll, i, color)
		c.dev.Clock.Sleep(animationFrame)
	}
	c.dev.Ring.SetPosition(device.RingAll, model.RingPositions/2, color)
	c.dev.Clock.Sleep(animationFrame)
}

// sweepWhileHeld plays the same sweep one frame at a time, aborting as
// soon as the button combination changes. Reports whether the
// combination was held through the full sweep.
func (c *Controller) sweepWhileHeld(color model.Color, held device.ButtonMask) bool {
	c.dev.Ring.SetPosition(device.RingAll, 0, color)
	c.dev.Clock.Sleep(animationKeyFrame)
	if c.readPressed() != held {
		return false
	}
	for i := 1; i < model.RingPositions/2; i++ {
		c.dev.Ring.SetPosition(device.RingAll, model.RingPositions-i, color)
		c.dev.Ring.SetPosition(device.RingAll, i, color)
		c.dev.Clock.Sleep(animationKeyFrame)
		if c.readPressed() != held {
			return false
		}
	}
	c.dev.Ring.SetPosition(device.RingAll, model.RingPositions/2, color)
	c.dev.Clock.Sleep(animationKeyFrame)
	return c.readPressed() == held
}
