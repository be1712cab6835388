package render

import (
	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

// drawMarkers paints the fixed hour markers wherever no hand claims the
// position. The candidate mask starts wide at the twelve and quarter
// positions and is narrowed hand by hand, seconds first: traces and dots
// hide only their own ring (a trace shares position zero with the
// marker), while a Hand-style hand occludes the marker outright except
// for the seconds ring under an hours hand.
func drawMarkers(cmds []Command, st state) []Command {
	markers := st.face.Markers
	if !markers.Enabled() {
		return cmds
	}
	step := markers.Style.Step()
	if step == 0 {
		return cmds
	}

	for pos := 0; pos < model.RingPositions; pos += step {
		mask := device.RingSeconds
		switch {
		case pos == 0:
			mask = device.RingAll
		case pos == 15 || pos == 30 || pos == 45:
			mask = device.RingMinutes | device.RingSeconds
		}

		if s := st.face.Seconds; s.Enabled() && st.seconds == pos {
			switch s.Style {
			case model.StyleTrace:
				if st.seconds > 0 {
					mask &= device.RingHours | device.RingMinutes
				}
			case model.StyleDot:
				mask &= device.RingHours | device.RingMinutes
			case model.StyleHand:
				mask = device.RingNone
			}
		}

		if m := st.face.Minutes; m.Enabled() && st.minutes == pos {
			switch m.Style {
			case model.StyleTrace:
				if st.minutes > 0 {
					mask &= device.RingHours | device.RingSeconds
				}
			case model.StyleDot:
				mask &= device.RingHours | device.RingSeconds
			case model.StyleHand:
				mask = device.RingNone
			}
		}

		if h := st.face.Hours; h.Enabled() && st.hours == pos {
			switch h.Style {
			case model.StyleTrace:
				if st.hours > 0 {
					mask &= device.RingMinutes | device.RingSeconds
				}
			case model.StyleDot:
				mask &= device.RingMinutes | device.RingSeconds
			case model.StyleHand:
				mask &= device.RingSeconds
			}
		}

		if mask != device.RingNone {
			cmds = append(cmds, SetPosition(mask, pos, markers.Color))
		}
	}
	return cmds
}
