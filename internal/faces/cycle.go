package faces

import "github.com/hmolin/clockos/internal/model"

// Style and value cycling used by the menu editors. All cycles are fixed
// orders with wrap-around and no gaps; StyleNone/MarkersNone are entered
// only by disabling the color, never by cycling.

// NextHandStyle advances Hand -> Trace -> Dot -> Hand.
func NextHandStyle(s model.HandStyle) model.HandStyle {
	switch s {
	case model.StyleHand:
		return model.StyleTrace
	case model.StyleTrace:
		return model.StyleDot
	default:
		return model.StyleHand
	}
}

// PrevHandStyle advances Hand -> Dot -> Trace -> Hand.
func PrevHandStyle(s model.HandStyle) model.HandStyle {
	switch s {
	case model.StyleHand:
		return model.StyleDot
	case model.StyleDot:
		return model.StyleTrace
	default:
		return model.StyleHand
	}
}

// NextMarkerStyle advances EveryHour -> Quarterly -> TwelfthOnly -> EveryHour.
func NextMarkerStyle(s model.MarkerStyle) model.MarkerStyle {
	switch s {
	case model.MarkersEveryHour:
		return model.MarkersQuarterly
	case model.MarkersQuarterly:
		return model.MarkersTwelfthOnly
	default:
		return model.MarkersEveryHour
	}
}

// PrevMarkerStyle advances EveryHour -> TwelfthOnly -> Quarterly -> EveryHour.
func PrevMarkerStyle(s model.MarkerStyle) model.MarkerStyle {
	switch s {
	case model.MarkersTwelfthOnly:
		return model.MarkersQuarterly
	case model.MarkersQuarterly:
		return model.MarkersEveryHour
	default:
		return model.MarkersTwelfthOnly
	}
}

// NextColor cycles 0..7 with wrap-around.
func NextColor(c model.Color) model.Color {
	if c >= model.MaxColor {
		return model.Blank
	}
	return c + 1
}

// PrevColor cycles 7..0 with wrap-around.
func PrevColor(c model.Color) model.Color {
	if c == model.Blank {
		return model.MaxColor
	}
	return c - 1
}

// NextAlternate returns the next legal alternation interval, wrapping to
// the shortest one. Unknown values restart the cycle.
func NextAlternate(v uint8) uint8 {
	for i, a := range model.AlternateSeconds {
		if a == v && i+1 < len(model.AlternateSeconds) {
			return model.AlternateSeconds[i+1]
		}
	}
	return model.AlternateSeconds[0]
}

// PrevAlternate returns the previous legal alternation interval, wrapping
// to the longest one.
func PrevAlternate(v uint8) uint8 {
	for i := len(model.AlternateSeconds) - 1; i > 0; i-- {
		if model.AlternateSeconds[i] == v {
			return model.AlternateSeconds[i-1]
		}
	}
	return model.AlternateSeconds[len(model.AlternateSeconds)-1]
}
