// Package store persists the clock configuration to an addressable byte
// store laid out like the device EEPROM. Styles and colors are bit-packed
// only here; the rest of the program works on the decoded types.
package store

import "github.com/hmolin/clockos/internal/model"

// EEPROM addresses.
const (
	addrActiveFace = 0
	addrDisplay    = 1
	addrAlternate  = 2
	addrFaces      = 10
	faceRecordLen  = 4
)

// Packed style bits (high nibble) and color bits (low nibble).
const (
	bitsHand  = 0x10
	bitsDot   = 0x20
	bitsTrace = 0x40

	bitsMarkersEvery   = 0x10
	bitsMarkersQuarter = 0x20
	bitsMarkersTwelfth = 0x40

	colorBits = 0x0f
	styleBits = 0xf0
)

// Packed display settings (byte 1): display mode in the high nibble,
// colon mode in the low nibble.
const (
	packedDisplayTime = 0x10
	packedDisplayDate = 0x20
	packedDisplayBoth = 0x30

	packedColonsOn    = 0x01
	packedColonsFlash = 0x02
)

func packHand(h model.HandConfig) byte {
	b := byte(h.Color) & colorBits
	switch h.Style {
	case model.StyleHand:
		b |= bitsHand
	case model.StyleDot:
		b |= bitsDot
	case model.StyleTrace:
		b |= bitsTrace
	}
	return b
}

func unpackHand(b byte) model.HandConfig {
	h := model.HandConfig{Color: model.Color(b & colorBits)}
	switch {
	case b&bitsTrace != 0:
		h.Style = model.StyleTrace
	case b&bitsDot != 0:
		h.Style = model.StyleDot
	case b&bitsHand != 0:
		h.Style = model.StyleHand
	}
	return h
}

func packMarkers(m model.MarkerConfig) byte {
	b := byte(m.Color) & colorBits
	switch m.Style {
	case model.MarkersEveryHour:
		b |= bitsMarkersEvery
	case model.MarkersQuarterly:
		b |= bitsMarkersQuarter
	case model.MarkersTwelfthOnly:
		b |= bitsMarkersTwelfth
	}
	return b
}

func unpackMarkers(b byte) model.MarkerConfig {
	m := model.MarkerConfig{Color: model.Color(b & colorBits)}
	switch {
	case b&bitsMarkersEvery != 0:
		m.Style = model.MarkersEveryHour
	case b&bitsMarkersQuarter != 0:
		m.Style = model.MarkersQuarterly
	case b&bitsMarkersTwelfth != 0:
		m.Style = model.MarkersTwelfthOnly
	}
	return m
}

// packFace encodes one face as its 4-byte record.
func packFace(f model.FaceConfig) [faceRecordLen]byte {
	return [faceRecordLen]byte{
		packMarkers(f.Markers),
		packHand(f.Hours),
		packHand(f.Minutes),
		packHand(f.Seconds),
	}
}

// unpackFace decodes a 4-byte face record.
func unpackFace(rec [faceRecordLen]byte) model.FaceConfig {
	return model.FaceConfig{
		Markers: unpackMarkers(rec[0]),
		Hours:   unpackHand(rec[1]),
		Minutes: unpackHand(rec[2]),
		Seconds: unpackHand(rec[3]),
	}
}

func packSettings(s model.Settings) (display, alternate byte) {
	switch s.Display {
	case model.DisplayTime:
		display = packedDisplayTime
	case model.DisplayDate:
		display = packedDisplayDate
	case model.DisplayAlternating:
		display = packedDisplayBoth
	}
	switch s.Colons {
	case model.ColonsOn:
		display |= packedColonsOn
	case model.ColonsFlash:
		display |= packedColonsFlash
	}
	return display, s.AlternateSeconds
}

func unpackSettings(activeFace, display, alternate byte) model.Settings {
	s := model.Settings{ActiveFace: int(activeFace)}
	if s.ActiveFace >= model.NumFaces {
		s.ActiveFace = 0
	}
	switch display & styleBits {
	case packedDisplayBoth:
		s.Display = model.DisplayAlternating
	case packedDisplayDate:
		s.Display = model.DisplayDate
	case packedDisplayTime:
		s.Display = model.DisplayTime
	default:
		s.Display = model.DisplayNone
	}
	switch display & colorBits {
	case packedColonsFlash:
		s.Colons = model.ColonsFlash
	case packedColonsOn:
		s.Colons = model.ColonsOn
	default:
		s.Colons = model.ColonsOff
	}
	s.AlternateSeconds = alternate
	if s.AlternateSeconds == 0 {
		s.AlternateSeconds = 5
	}
	return s
}
