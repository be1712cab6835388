package menu

import "github.com/hmolin/clockos/internal/device"

// readPressed returns the debounced button combination: two identical
// raw samples separated by the debounce delay, anything else reads as
// no buttons.
func (c *Controller) readPressed() device.ButtonMask {
	first := c.dev.Buttons.Read()
	c.dev.Clock.Sleep(debounceDelay)
	second := c.dev.Buttons.Read()
	if first != second {
		return device.NoButtons
	}
	return first
}

// waitForRelease blocks until every button reads released, with one
// extra debounce pass to swallow contact bounce on release.
func (c *Controller) waitForRelease() {
	for c.dev.Buttons.Read() != device.NoButtons {
		c.dev.Clock.Sleep(releasePollDelay)
	}
	c.dev.Clock.Sleep(debounceDelay)
	for c.dev.Buttons.Read() != device.NoButtons {
		c.dev.Clock.Sleep(releasePollDelay)
	}
}
