package render

import (
	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

// Engine renders a clock face as a minimal delta against the previously
// rendered time sample. It owns only that render state; configuration is
// passed in per call.
type Engine struct {
	prev          model.TimeSample
	prevHoursHand int
	hasPrev       bool
}

// New returns an engine in the unset state: the first render is a full
// redraw.
func New() *Engine {
	return &Engine{}
}

// Reset forgets the previous sample so the next render treats every hand
// as moved. Called on face switches and explicit redraw requests.
func (e *Engine) Reset() {
	e.prev = model.TimeSample{}
	e.prevHoursHand = 0
	e.hasPrev = false
}

// state gathers everything one render pass needs: current and previous
// hand positions plus per-hand movement flags.
type state struct {
	face model.FaceConfig

	hours, minutes, seconds    int // current ring positions
	prevHours, prevMin, prevSec int

	hoursMoved, minMoved, secMoved bool
}

// Render emits the command sequence taking the display from the previous
// sample to cur. Rendering the same time twice emits nothing the second
// time. Out-of-range samples are rejected without clamping.
func (e *Engine) Render(face model.FaceConfig, cur model.TimeSample) ([]Command, error) {
	if err := cur.Validate(); err != nil {
		return nil, err
	}
	if e.hasPrev && cur.SameClock(e.prev) {
		e.prev = cur
		return nil, nil
	}

	st := state{
		face:      face,
		hours:     cur.HoursHandPosition(),
		minutes:   cur.Minutes,
		seconds:   cur.Seconds,
		prevHours: e.prevHoursHand,
		prevMin:   e.prev.Minutes,
		prevSec:   e.prev.Seconds,
	}
	st.hoursMoved = !e.hasPrev || st.hours != st.prevHours
	st.minMoved = !e.hasPrev || st.minutes != st.prevMin
	st.secMoved = !e.hasPrev || st.seconds != st.prevSec

	var cmds []Command
	cmds = clearHands(cmds, st)
	cmds = drawHands(cmds, st)
	cmds = drawMarkers(cmds, st)

	e.prev = cur
	e.prevHoursHand = st.hours
	e.hasPrev = true
	return cmds, nil
}

// clearHands blanks whatever each moved hand left behind. Trace wraps to
// zero by clearing its whole ring, otherwise it walks the overshoot back
// down to the new position.
func clearHands(cmds []Command, st state) []Command {
	if h := st.face.Hours; h.Enabled() && st.hoursMoved {
		switch h.Style {
		case model.StyleTrace:
			if st.hours == 0 {
				cmds = append(cmds, ClearRings(device.RingHours))
			} else {
				for r := st.prevHours; r > st.hours; r-- {
					cmds = append(cmds, SetPosition(device.RingHours, r, model.Blank))
				}
			}
		case model.StyleDot:
			cmds = append(cmds, SetPosition(device.RingHours, st.prevHours, model.Blank))
		case model.StyleHand:
			cmds = append(cmds, SetPosition(device.RingHours|device.RingMinutes, st.prevHours, model.Blank))
		}
	}

	if m := st.face.Minutes; m.Enabled() && st.minMoved {
		switch m.Style {
		case model.StyleTrace:
			if st.minutes == 0 {
				cmds = append(cmds, ClearRings(device.RingMinutes))
			} else {
				for r := st.prevMin; r > st.minutes; r-- {
					cmds = append(cmds, SetPosition(device.RingMinutes, r, model.Blank))
				}
			}
		case model.StyleDot:
			cmds = append(cmds, SetPosition(device.RingMinutes, st.prevMin, model.Blank))
		case model.StyleHand:
			cmds = append(cmds, SetPosition(device.RingAll, st.prevMin, model.Blank))
		}
	}

	if s := st.face.Seconds; s.Enabled() && st.secMoved {
		switch s.Style {
		case model.StyleTrace:
			if st.seconds == 0 {
				cmds = append(cmds, ClearRings(device.RingSeconds))
			} else {
				for r := st.prevSec; r > st.seconds; r-- {
					cmds = append(cmds, SetPosition(device.RingSeconds, r, model.Blank))
				}
			}
		case model.StyleDot:
			cmds = append(cmds, SetPosition(device.RingSeconds, st.prevSec, model.Blank))
		case model.StyleHand:
			cmds = append(cmds, SetPosition(device.RingAll, st.prevSec, model.Blank))
		}
	}
	return cmds
}

// drawHands paints the current hand positions, minutes then hours then
// seconds. A slower hand repaints positions a faster Hand-style hand has
// just vacated so traces keep no holes, and repaints shared positions so
// its color wins on its own ring.
func drawHands(cmds []Command, st state) []Command {
	markersOff := !st.face.Markers.Enabled()

	if m := st.face.Minutes; m.Enabled() {
		switch m.Style {
		case model.StyleTrace:
			if st.minMoved && (st.minutes > 0 || markersOff) {
				for r := traceFillStart(st.minutes, st.prevMin); r <= st.minutes; r++ {
					cmds = append(cmds, SetPosition(device.RingMinutes, r, m.Color))
				}
			}
			if s := st.face.Seconds; s.Enabled() && s.Style == model.StyleHand {
				if st.secMoved && st.minutes >= st.prevSec && st.prevSec > 0 {
					cmds = append(cmds, SetPosition(device.RingMinutes, st.prevSec, m.Color))
				}
			}
			if h := st.face.Hours; h.Enabled() && h.Style == model.StyleHand {
				if st.hoursMoved && st.minutes >= st.prevHours && st.prevHours > 0 {
					cmds = append(cmds, SetPosition(device.RingMinutes, st.prevHours, m.Color))
				}
			}
		case model.StyleDot:
			if st.minMoved || st.minutes == st.prevSec || st.minutes == st.prevHours {
				cmds = append(cmds, SetPosition(device.RingMinutes, st.minutes, m.Color))
			}
		case model.StyleHand:
			if st.minMoved || st.minutes == st.prevSec || st.minutes == st.prevHours {
				cmds = append(cmds, SetPosition(device.RingAll, st.minutes, m.Color))
			}
		}
	}

	if h := st.face.Hours; h.Enabled() {
		switch h.Style {
		case model.StyleTrace:
			if st.hoursMoved && (st.hours > 0 || markersOff) {
				for r := traceFillStart(st.hours, st.prevHours); r <= st.hours; r++ {
					cmds = append(cmds, SetPosition(device.RingHours, r, h.Color))
				}
			}
			if m := st.face.Minutes; m.Enabled() && m.Style == model.StyleHand {
				if st.minMoved && st.hours >= st.prevMin && st.prevMin > 0 {
					cmds = append(cmds, SetPosition(device.RingHours, st.prevMin, h.Color))
				}
			}
			if s := st.face.Seconds; s.Enabled() && s.Style == model.StyleHand {
				if st.secMoved && st.hours >= st.prevSec && st.prevSec > 0 {
					cmds = append(cmds, SetPosition(device.RingHours, st.prevSec, h.Color))
				}
			}
		case model.StyleDot:
			if st.hoursMoved || st.hours == st.prevMin || st.hours == st.prevSec {
				cmds = append(cmds, SetPosition(device.RingHours, st.hours, h.Color))
			}
		case model.StyleHand:
			if st.hoursMoved || st.hours == st.prevMin || st.hours == st.prevSec {
				cmds = append(cmds, SetPosition(device.RingHours|device.RingMinutes, st.hours, h.Color))
			}
		}
	}

	if s := st.face.Seconds; s.Enabled() {
		switch s.Style {
		case model.StyleTrace:
			if st.secMoved && (st.seconds > 0 || markersOff) {
				for r := traceFillStart(st.seconds, st.prevSec); r <= st.seconds; r++ {
					cmds = append(cmds, SetPosition(device.RingSeconds, r, s.Color))
				}
			}
			if m := st.face.Minutes; m.Enabled() && m.Style == model.StyleHand {
				if st.minMoved && st.seconds >= st.prevMin && st.prevMin > 0 {
					cmds = append(cmds, SetPosition(device.RingSeconds, st.prevMin, s.Color))
				}
			}
		case model.StyleDot:
			if st.secMoved || st.seconds == st.prevMin {
				cmds = append(cmds, SetPosition(device.RingSeconds, st.seconds, s.Color))
			}
		case model.StyleHand:
			if st.secMoved || st.seconds == st.prevMin {
				cmds = append(cmds, SetPosition(device.RingAll, st.seconds, s.Color))
			}
		}
	}
	return cmds
}

// traceFillStart picks where a trace fill begins: the previous position,
// or the new position itself when the hand is at or just past zero.
func traceFillStart(pos, prev int) int {
	if pos <= 1 {
		return pos
	}
	return prev
}
