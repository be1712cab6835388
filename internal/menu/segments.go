package menu

import (
	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

// Status labels shown on the 6-digit board.
const (
	labelHello   = "HELLO"
	labelReset   = "rESEt"
	labelSelect  = "SELECt"
	labelFace    = "FACE"
	labelClock   = "CLOC"
	labelDisplay = "dISP"
)

// label pads a status string to the six display glyphs.
func label(s string) [6]byte {
	text := [6]byte{' ', ' ', ' ', ' ', ' ', ' '}
	for i := 0; i < len(text) && i < len(s); i++ {
		text[i] = s[i]
	}
	return text
}

// pair writes a two-digit value at the given offset, or the selected
// placeholder when the field is under the blink cursor.
func pair(text *[6]byte, at, v int, blank bool) {
	if blank {
		text[at] = device.GlyphSelected
		text[at+1] = device.GlyphSelected
		return
	}
	text[at] = '0' + byte(v/10%10)
	text[at+1] = '0' + byte(v%10)
}

// timeText lays out HH MM SS.
func timeText(t model.TimeSample, blanked timeDateField) [6]byte {
	var text [6]byte
	pair(&text, 0, t.Hours, blanked == fieldHours)
	pair(&text, 2, t.Minutes, blanked == fieldMinutes)
	pair(&text, 4, t.Seconds, blanked == fieldSeconds)
	return text
}

// dateText lays out YY MM DD.
func dateText(t model.TimeSample, blanked timeDateField) [6]byte {
	var text [6]byte
	pair(&text, 0, t.Year, blanked == fieldYear)
	pair(&text, 2, t.Month, blanked == fieldMonth)
	pair(&text, 4, t.Day, blanked == fieldDay)
	return text
}

// faceText shows "FACE" plus the slot digit.
func faceText(index int, blankIndex bool) [6]byte {
	text := label(labelFace)
	if !blankIndex {
		text[5] = '0' + byte(index)
	}
	return text
}

// stylingText shows either the marker style+color pair alone, or the
// three style+color pairs for hours, minutes, and seconds.
func stylingText(face model.FaceConfig, cursor stylingField, blankCursor bool) [6]byte {
	text := label("")
	if cursor == styleMarkers {
		if blankCursor {
			text[0], text[1] = device.GlyphSelected, device.GlyphSelected
		} else {
			text[0] = markerGlyph(face.Markers.Style)
			text[1] = device.HexGlyph(byte(face.Markers.Color))
		}
		return text
	}

	hands := [3]model.HandConfig{face.Hours, face.Minutes, face.Seconds}
	fields := [3]stylingField{styleHours, styleMinutes, styleSeconds}
	for i, h := range hands {
		at := i * 2
		if blankCursor && cursor == fields[i] {
			text[at], text[at+1] = device.GlyphSelected, device.GlyphSelected
			continue
		}
		text[at] = styleGlyph(h.Style)
		text[at+1] = device.HexGlyph(byte(h.Color))
	}
	return text
}

// settingsText shows "FACE n" while the face slot is cursored, otherwise
// the display-mode, alternation-interval, and colon-mode pairs.
func settingsText(settings model.Settings, cursor settingsField, blankCursor bool) [6]byte {
	if cursor == settingFace {
		return faceText(settings.ActiveFace, blankCursor)
	}

	text := label("")
	if blankCursor && cursor == settingDisplay {
		text[0], text[1] = device.GlyphSelected, device.GlyphSelected
	} else {
		switch settings.Display {
		case model.DisplayAlternating:
			text[0], text[1] = 't', 'd'
		case model.DisplayTime:
			text[0], text[1] = 't', device.GlyphBlank
		case model.DisplayDate:
			text[0], text[1] = device.GlyphBlank, 'd'
		default:
			text[0], text[1] = 'n', 'o'
		}
	}

	if blankCursor && cursor == settingAlternate {
		text[2], text[3] = device.GlyphSelected, device.GlyphSelected
	} else {
		if settings.AlternateSeconds >= 10 {
			text[2] = '0' + settings.AlternateSeconds/10
		} else {
			text[2] = device.GlyphBlank
		}
		text[3] = '0' + settings.AlternateSeconds%10
	}

	if blankCursor && cursor == settingColons {
		text[4], text[5] = device.GlyphSelected, device.GlyphSelected
	} else if settings.Colons == model.ColonsFlash {
		text[4], text[5] = 'F', 'L'
	} else {
		text[4], text[5] = 'o', 'n'
	}
	return text
}

func styleGlyph(s model.HandStyle) byte {
	switch s {
	case model.StyleHand:
		return 'h'
	case model.StyleDot:
		return 'd'
	case model.StyleTrace:
		return 't'
	default:
		return '?'
	}
}

func markerGlyph(s model.MarkerStyle) byte {
	switch s {
	case model.MarkersEveryHour:
		return 'h'
	case model.MarkersQuarterly:
		return 'Q'
	case model.MarkersTwelfthOnly:
		return 't'
	default:
		return '?'
	}
}
