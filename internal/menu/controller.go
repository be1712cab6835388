// Package menu implements the three-button control loop: the normal
// clock mode, the mode-selection menu, the three editors, and the
// factory reset flow. The loop is single-threaded; every wait is a
// bounded sleep against the injected clock, so tests drive it with a
// virtual clock and scripted button samples.
package menu

import (
	"context"
	"time"

	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/faces"
	"github.com/hmolin/clockos/internal/model"
	"github.com/hmolin/clockos/internal/render"
	"github.com/hmolin/clockos/internal/store"
)

// Timing constants, in wall-clock terms.
const (
	debounceDelay     = 100 * time.Millisecond
	releasePollDelay  = 20 * time.Millisecond
	longPressDelay    = 450 * time.Millisecond
	blinkInterval     = 500 * time.Millisecond
	animationFrame    = 10 * time.Millisecond
	animationKeyFrame = 50 * time.Millisecond
	greetingDelay     = 500 * time.Millisecond
)

// mode is the controller's top-level state.
type mode uint8

const (
	modeNormal mode = iota
	modeSetStyling
	modeSetSettings
	modeSetTimeDate
)

func statusFor(m mode) device.StatusLEDs {
	switch m {
	case modeSetTimeDate:
		return device.StatusSetTimeDate
	case modeSetStyling:
		return device.StatusSetStyling
	case modeSetSettings:
		return device.StatusSetSettings
	default:
		return device.StatusNone
	}
}

func labelFor(m mode) [6]byte {
	switch m {
	case modeSetTimeDate:
		return label(labelClock)
	case modeSetStyling:
		return label(labelFace)
	case modeSetSettings:
		return label(labelDisplay)
	default:
		return label(labelSelect)
	}
}

// blinkState drives the edited-field flash: the cursored pair alternates
// between its value and blank every blink interval, independent of
// button activity.
type blinkState struct {
	timer  time.Time
	active bool
	update int
}

const (
	blinkNone = iota
	blinkToggle
	blinkValueChanged
	blinkFieldAdvanced
)

// editSession is the transient state of one editor visit.
type editSession struct {
	dirty bool
	blink blinkState
}

// Devices bundles the hardware collaborators the controller drives.
type Devices struct {
	Ring     device.RingDisplay
	Segments device.SegmentDisplay
	RTC      device.RealTimeClock
	Buttons  device.Buttons
	Clock    device.Clock
}

// Controller multiplexes the three buttons over the normal clock mode,
// the menu, and the editors. It exclusively owns the configuration
// store and the render engine.
type Controller struct {
	dev     Devices
	config  *faces.Store
	gateway *store.Gateway
	engine  *render.Engine

	// Normal-mode display state.
	shown      model.TimeSample
	hasShown   bool
	altShowing model.DisplayMode

	// The demo time shown while styling is edited.
	demo model.TimeSample
}

// New returns a controller over the given devices and configuration.
func New(dev Devices, config *faces.Store, gateway *store.Gateway, engine *render.Engine) *Controller {
	return &Controller{
		dev:     dev,
		config:  config,
		gateway: gateway,
		engine:  engine,
		demo:    model.TimeSample{Hours: 22, Minutes: 10, Seconds: 23, Month: 1, Day: 1},
	}
}

// Run shows the greeting, then drives the control loop until ctx is
// cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.dev.Segments.SetText(label(labelHello), device.ColonsOff)
	c.dev.Clock.Sleep(greetingDelay)
	c.dev.Ring.ClearAll()
	c.dev.Segments.Clear()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.step(ctx)
	}
}

// step runs one iteration of the top-level loop: dispatch a debounced
// button combination, then refresh the normal clock display.
// Unrecognized combinations fall through ignored.
func (c *Controller) step(ctx context.Context) {
	switch c.readPressed() {
	case device.Button1:
		c.cycleFace(-1)
	case device.Button3:
		c.cycleFace(1)
	case device.Button2:
		switch c.selectMode(ctx) {
		case modeSetTimeDate:
			c.editTimeDate(ctx)
		case modeSetStyling:
			c.editStyling(ctx)
		case modeSetSettings:
			c.editSettings(ctx)
		}
	case device.Buttons12:
		c.factoryReset()
	}
	c.normalTick()
}

// cycleFace steps the active face index with wrap-around and plays the
// confirmation flash. The selection is not persisted here; only the
// settings editor writes the startup face.
func (c *Controller) cycleFace(delta int) {
	next := (c.config.ActiveFace() + delta + model.NumFaces) % model.NumFaces
	if err := c.config.SetActiveFace(next); err != nil {
		return
	}

	c.dev.Segments.SetText(faceText(next, false), device.ColonsOff)
	c.sweep(model.White)
	c.sweep(model.Blank)

	c.forceRedraw()
	c.dev.Segments.Clear()
	c.waitForRelease()
}

// selectMode runs the mode-selection menu: buttons 1/3 cycle the
// candidate, button 2 commits it. The candidate's status LED blinks
// while its label is shown.
func (c *Controller) selectMode(ctx context.Context) mode {
	value := modeNormal
	c.dev.Segments.SetStatus(statusFor(value))
	c.dev.Segments.SetText(labelFor(value), device.ColonsOff)
	c.waitForRelease()

	blink := blinkState{timer: c.dev.Clock.Now()}
	for ctx.Err() == nil {
		switch c.readPressed() {
		case device.Button1:
			if value == modeSetTimeDate {
				value = modeNormal
			} else {
				value++
			}
			blink.update = blinkValueChanged
		case device.Button3:
			if value == modeNormal {
				value = modeSetTimeDate
			} else {
				value--
			}
			blink.update = blinkValueChanged
		case device.Button2:
			return value
		}

		c.updateBlink(&blink)

		if blink.update > blinkNone {
			if blink.update == blinkToggle && blink.active {
				c.dev.Segments.SetStatus(device.StatusNone)
			} else {
				blink.active = false
				c.dev.Segments.SetStatus(statusFor(value))
				if blink.update >= blinkValueChanged {
					c.dev.Segments.SetText(labelFor(value), device.ColonsOff)
					c.waitForRelease()
					blink.timer = c.dev.Clock.Now()
				}
			}
			blink.update = blinkNone
		}
	}
	return modeNormal
}

// editTimeDate edits hours, minutes, seconds, then year, month, day on
// a working sample. The ring keeps rendering the edited time live. On
// commit the sample is pushed to the RTC with seconds restarted at
// zero.
func (c *Controller) editTimeDate(ctx context.Context) {
	sample, err := c.dev.RTC.Read()
	if err != nil {
		sample = model.TimeSample{Month: 1, Day: 1}
	}

	session := editSession{blink: blinkState{timer: c.dev.Clock.Now()}}
	cursor := fieldHours
	repeating := false

	c.dev.Segments.SetStatus(device.StatusSetTimeDate)
	c.showTimeDate(sample, cursor, false)
	c.waitForRelease()

	exit := false
	for ctx.Err() == nil && !exit {
		pressed := c.readPressed()
		if repeating && pressed == device.NoButtons {
			repeating = false
		}

		switch pressed {
		case device.Button1:
			decrementField(&sample, cursor)
			session.dirty = true
			session.blink.update = blinkValueChanged
		case device.Button3:
			incrementField(&sample, cursor)
			session.dirty = true
			session.blink.update = blinkValueChanged
		case device.Button2:
			session.blink.update = blinkFieldAdvanced
			cursor++
			if cursor > fieldDay {
				exit = true
			}
		}

		c.updateBlink(&session.blink)
		c.redraw(sample)

		if session.blink.update > blinkNone {
			if session.blink.update == blinkToggle && session.blink.active {
				c.showTimeDate(sample, cursor, true)
			} else {
				session.blink.active = false
				c.showTimeDate(sample, cursor, false)
				if session.blink.update == blinkFieldAdvanced {
					c.waitForRelease()
				}
				session.blink.timer = c.dev.Clock.Now()
			}
			session.blink.update = blinkNone
		}

		// A longer pause before the first repeat, so a single tap
		// advances by exactly one.
		if pressed != device.NoButtons && !repeating {
			c.dev.Clock.Sleep(longPressDelay)
			repeating = true
		}
	}

	if session.dirty {
		sample.Seconds = 0
		// Best-effort; the clock keeps running on the old time if the
		// RTC write fails.
		_ = c.dev.RTC.Write(sample)
	}
	c.exitToNormal(session.dirty)
	c.waitForRelease()
}

// showTimeDate shows the time view while a time field is cursored and
// the date view from the year field on.
func (c *Controller) showTimeDate(t model.TimeSample, cursor timeDateField, blankCursor bool) {
	blanked := fieldNone
	if blankCursor {
		blanked = cursor
	}
	if cursor >= fieldYear {
		c.dev.Segments.SetText(dateText(t, blanked), device.ColonsBottomTwo)
	} else {
		c.dev.Segments.SetText(timeText(t, blanked), device.ColonsOn)
	}
}

// editStyling edits the active face in place: button 1 cycles the
// cursored style, button 3 its color, button 2 advances the cursor. A
// fixed demo time stays on the ring so every change is visible. On
// commit the face record is persisted.
func (c *Controller) editStyling(ctx context.Context) {
	session := editSession{blink: blinkState{timer: c.dev.Clock.Now()}}
	cursor := styleHours

	c.dev.Segments.SetStatus(device.StatusSetStyling)
	c.showStyling(cursor, false)
	c.dev.Ring.ClearAll()
	c.drawDemoFace()
	c.waitForRelease()

	exit := false
	for ctx.Err() == nil && !exit {
		switch c.readPressed() {
		case device.Button1:
			// Values come from the cycling helpers, so the store's
			// validation cannot fail.
			if cursor == styleMarkers {
				_ = c.config.SetMarkerStyle(faces.PrevMarkerStyle(c.config.MarkerConfig().Style))
			} else {
				comp := componentFor(cursor)
				_ = c.config.SetHandStyle(comp, faces.NextHandStyle(c.config.HandConfig(comp).Style))
			}
			c.dev.Ring.ClearAll()
			session.dirty = true
			session.blink.update = blinkValueChanged
		case device.Button3:
			var next model.Color
			if cursor == styleMarkers {
				next = faces.NextColor(c.config.MarkerConfig().Color)
				_ = c.config.SetMarkerColor(next)
			} else {
				comp := componentFor(cursor)
				next = faces.NextColor(c.config.HandConfig(comp).Color)
				_ = c.config.SetHandColor(comp, next)
			}
			if next == model.Blank {
				c.dev.Ring.ClearAll()
			}
			session.dirty = true
			session.blink.update = blinkValueChanged
		case device.Button2:
			session.blink.update = blinkFieldAdvanced
			cursor++
			if cursor >= numStylingFields {
				exit = true
			}
		}

		c.updateBlink(&session.blink)
		if session.blink.update == blinkValueChanged {
			c.drawDemoFace()
		}

		if session.blink.update > blinkNone {
			if session.blink.update == blinkToggle && session.blink.active {
				c.showStyling(cursor, true)
			} else {
				session.blink.active = false
				c.showStyling(cursor, false)
				if session.blink.update >= blinkValueChanged {
					c.waitForRelease()
					session.blink.timer = c.dev.Clock.Now()
				}
			}
			session.blink.update = blinkNone
		}
	}

	if session.dirty {
		// Best-effort; the in-memory face stays authoritative if the
		// write fails.
		_ = c.gateway.SaveFace(c.config.ActiveFace(), c.config.Active())
	}
	c.exitToNormal(session.dirty)
}

func (c *Controller) showStyling(cursor stylingField, blankCursor bool) {
	colons := device.ColonsOn
	if cursor == styleMarkers {
		colons = device.ColonsOff
	}
	c.dev.Segments.SetText(stylingText(c.config.Active(), cursor, blankCursor), colons)
}

// drawDemoFace redraws the demo time from scratch so a styling change
// is reflected whole, not as a delta against stale state.
func (c *Controller) drawDemoFace() {
	c.engine.Reset()
	c.redraw(c.demo)
}

// editSettings edits the global settings on a working copy: startup
// face, display mode, alternation interval, colon mode. The face field
// clamps at the ends instead of wrapping. Commit applies the copy and
// persists it.
func (c *Controller) editSettings(ctx context.Context) {
	settings := c.config.Settings()
	session := editSession{blink: blinkState{timer: c.dev.Clock.Now()}}
	cursor := settingFace

	c.dev.Segments.SetStatus(device.StatusSetSettings)
	c.showSettings(settings, cursor, false)
	c.dev.Ring.ClearAll()
	c.waitForRelease()

	exit := false
	for ctx.Err() == nil && !exit {
		switch c.readPressed() {
		case device.Button1:
			switch cursor {
			case settingFace:
				if settings.ActiveFace > 0 {
					settings.ActiveFace--
				}
			case settingDisplay:
				settings.Display = prevDisplayMode(settings.Display)
			case settingAlternate:
				settings.AlternateSeconds = faces.PrevAlternate(settings.AlternateSeconds)
			case settingColons:
				settings.Colons = toggleColons(settings.Colons)
			}
			session.dirty = true
			session.blink.update = blinkValueChanged
		case device.Button3:
			switch cursor {
			case settingFace:
				if settings.ActiveFace < model.NumFaces-1 {
					settings.ActiveFace++
				}
			case settingDisplay:
				settings.Display = nextDisplayMode(settings.Display)
			case settingAlternate:
				settings.AlternateSeconds = faces.NextAlternate(settings.AlternateSeconds)
			case settingColons:
				settings.Colons = toggleColons(settings.Colons)
			}
			session.dirty = true
			session.blink.update = blinkValueChanged
		case device.Button2:
			session.blink.update = blinkFieldAdvanced
			cursor++
			if cursor >= numSettingsFields {
				exit = true
			}
		}

		c.updateBlink(&session.blink)

		if session.blink.update > blinkNone {
			if session.blink.update == blinkToggle && session.blink.active {
				c.showSettings(settings, cursor, true)
			} else {
				session.blink.active = false
				c.showSettings(settings, cursor, false)
				if session.blink.update >= blinkValueChanged {
					c.waitForRelease()
					session.blink.timer = c.dev.Clock.Now()
				}
			}
			session.blink.update = blinkNone
		}
	}

	if session.dirty {
		// The edited values all come from the clamp and cycle helpers,
		// so validation cannot fail.
		_ = c.config.SetSettings(settings)
		// Best-effort; the in-memory settings stay authoritative if
		// the write fails.
		_ = c.gateway.SaveSettings(settings)
	}
	c.exitToNormal(session.dirty)
}

func (c *Controller) showSettings(settings model.Settings, cursor settingsField, blankCursor bool) {
	colons := device.ColonsTopTwo
	if cursor == settingFace {
		colons = device.ColonsOff
	}
	c.dev.Segments.SetText(settingsText(settings, cursor, blankCursor), colons)
}

// factoryReset restores the factory configuration after the user holds
// buttons 1+2 through a full red countdown sweep. Releasing early
// aborts with nothing changed.
func (c *Controller) factoryReset() {
	c.dev.Segments.SetStatus(device.StatusReset)
	c.dev.Segments.SetText(label(labelReset), device.ColonsOff)
	c.dev.Ring.ClearAll()

	if c.sweepWhileHeld(model.Red, device.Buttons12) {
		c.waitForRelease()
		c.sweep(model.Blank)
		// Best-effort; the reset still applies in memory if the write
		// fails.
		_ = c.gateway.WriteFactoryDefaults()
		c.config.Reset(store.FactoryFaces(), model.DefaultSettings())
		c.sweep(model.Green)
	}

	c.sweep(model.Blank)
	c.forceRedraw()
	c.dev.Segments.Clear()
}

// normalTick refreshes the ring and the segment display once per time
// change; an unreadable RTC skips the tick.
func (c *Controller) normalTick() {
	sample, err := c.dev.RTC.Read()
	if err != nil {
		return
	}
	if c.hasShown && sample.SameClock(c.shown) {
		return
	}

	c.redraw(sample)
	c.dev.Segments.SetStatus(device.StatusNone)
	c.drawNormalSegments(sample)

	c.shown = sample
	c.hasShown = true
}

// drawNormalSegments shows time, date, or the alternation of both, per
// the global settings. Flashing colons follow second parity.
func (c *Controller) drawNormalSegments(sample model.TimeSample) {
	settings := c.config.Settings()

	switch settings.Display {
	case model.DisplayAlternating:
		interval := int(settings.AlternateSeconds)
		if sample.Seconds%interval == 0 || c.altShowing == model.DisplayNone {
			if (sample.Seconds/interval)%2 == 0 {
				c.altShowing = model.DisplayTime
			} else {
				c.altShowing = model.DisplayDate
			}
		}
	default:
		c.altShowing = settings.Display
	}

	switch c.altShowing {
	case model.DisplayTime:
		colons := device.ColonsOn
		switch settings.Colons {
		case model.ColonsFlash:
			if sample.Seconds%2 == 1 {
				colons = device.ColonsOff
			}
		case model.ColonsOff:
			colons = device.ColonsOff
		}
		c.dev.Segments.SetText(timeText(sample, fieldNone), colons)
	case model.DisplayDate:
		c.dev.Segments.SetText(dateText(sample, fieldNone), device.ColonsBottomTwo)
	default:
		c.dev.Segments.Clear()
	}
}

// exitToNormal plays the commit feedback sweep (green when something
// changed, blue when not) and restores the normal clock display.
func (c *Controller) exitToNormal(dirty bool) {
	if dirty {
		c.sweep(model.Green)
	} else {
		c.sweep(model.Blue)
	}
	c.sweep(model.Blank)
	c.forceRedraw()
	c.dev.Segments.Clear()
}

// forceRedraw makes the next normal tick repaint both displays from
// scratch.
func (c *Controller) forceRedraw() {
	c.engine.Reset()
	c.hasShown = false
	c.altShowing = model.DisplayNone
}

// redraw renders the active face for the sample and pushes the delta to
// the ring. Mid-edit samples can be transiently out of range (day 31
// while the month is being stepped); those frames are skipped.
func (c *Controller) redraw(sample model.TimeSample) {
	cmds, err := c.engine.Render(c.config.Active(), sample)
	if err != nil {
		return
	}
	render.Apply(c.dev.Ring, cmds)
}

func (c *Controller) updateBlink(b *blinkState) {
	now := c.dev.Clock.Now()
	if now.Sub(b.timer) > blinkInterval {
		b.timer = now
		if b.update == blinkNone {
			b.update = blinkToggle
			b.active = !b.active
		}
	}
}
