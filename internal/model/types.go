// Package model defines the shared clock domain types.
package model

import "fmt"

// Color is one of the eight ring LED colors. Color 0 (Blank) always means
// "disabled" no matter which style it is paired with.
type Color uint8

// Ring LED colors, matching the ring driver palette.
const (
	Blank Color = iota
	Red
	Green
	Orange
	Blue
	Purple
	Cyan
	White
)

// MaxColor is the highest valid color value.
const MaxColor = White

var colorNames = [...]string{"blank", "red", "green", "orange", "blue", "purple", "cyan", "white"}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Valid reports whether the color is within the palette.
func (c Color) Valid() bool {
	return c <= MaxColor
}

// HandStyle selects how a time component is rendered on its ring.
type HandStyle uint8

// Hand rendering styles.
const (
	StyleNone HandStyle = iota
	StyleHand
	StyleDot
	StyleTrace
)

// String returns the short name used in listings.
func (s HandStyle) String() string {
	switch s {
	case StyleHand:
		return "hand"
	case StyleDot:
		return "dot"
	case StyleTrace:
		return "trace"
	default:
		return "none"
	}
}

// MarkerStyle selects which fixed ring positions carry a marker.
type MarkerStyle uint8

// Marker styles.
const (
	MarkersNone MarkerStyle = iota
	MarkersEveryHour
	MarkersQuarterly
	MarkersTwelfthOnly
)

// String returns the short name used in listings.
func (s MarkerStyle) String() string {
	switch s {
	case MarkersEveryHour:
		return "hourly"
	case MarkersQuarterly:
		return "quarterly"
	case MarkersTwelfthOnly:
		return "twelfth"
	default:
		return "none"
	}
}

// Step returns the distance between marker positions, or 0 for MarkersNone.
func (s MarkerStyle) Step() int {
	switch s {
	case MarkersEveryHour:
		return 5
	case MarkersQuarterly:
		return 15
	case MarkersTwelfthOnly:
		return 60
	default:
		return 0
	}
}

// Component identifies one of the three hands.
type Component uint8

// Hand components.
const (
	Hours Component = iota
	Minutes
	Seconds
)

// String returns the component name.
func (c Component) String() string {
	switch c {
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return fmt.Sprintf("component(%d)", uint8(c))
	}
}

// HandConfig describes how one hand is rendered.
type HandConfig struct {
	Style HandStyle
	Color Color
}

// Enabled reports whether the hand produces any output. A blank color
// disables the hand regardless of style.
func (h HandConfig) Enabled() bool {
	return h.Style != StyleNone && h.Color != Blank
}

// MarkerConfig describes the marker ring.
type MarkerConfig struct {
	Style MarkerStyle
	Color Color
}

// Enabled reports whether markers are drawn.
func (m MarkerConfig) Enabled() bool {
	return m.Style != MarkersNone && m.Color != Blank
}

// FaceConfig is one complete clock face: marker ring plus the three hands.
type FaceConfig struct {
	Markers MarkerConfig
	Hours   HandConfig
	Minutes HandConfig
	Seconds HandConfig
}

// Hand returns the configuration for the given component.
func (f FaceConfig) Hand(c Component) HandConfig {
	switch c {
	case Hours:
		return f.Hours
	case Minutes:
		return f.Minutes
	default:
		return f.Seconds
	}
}

// DisplayMode selects what the segment display shows in normal mode.
type DisplayMode uint8

// Segment display modes.
const (
	DisplayNone DisplayMode = iota
	DisplayTime
	DisplayDate
	DisplayAlternating
)

var displayModeNames = [...]string{"none", "time", "date", "alternating"}

// String returns the display mode name.
func (d DisplayMode) String() string {
	if int(d) < len(displayModeNames) {
		return displayModeNames[d]
	}
	return fmt.Sprintf("display(%d)", uint8(d))
}

// ColonMode selects how the time colons behave.
type ColonMode uint8

// Colon modes.
const (
	ColonsOff ColonMode = iota
	ColonsOn
	ColonsFlash
)

var colonModeNames = [...]string{"off", "on", "flash"}

// String returns the colon mode name.
func (c ColonMode) String() string {
	if int(c) < len(colonModeNames) {
		return colonModeNames[c]
	}
	return fmt.Sprintf("colons(%d)", uint8(c))
}

// NumFaces is the number of stored clock faces.
const NumFaces = 10

// AlternateSeconds lists the legal time/date alternation intervals.
var AlternateSeconds = []uint8{1, 2, 5, 10, 15, 30, 60}

// Settings holds the global (face-independent) configuration.
type Settings struct {
	ActiveFace       int
	Display          DisplayMode
	Colons           ColonMode
	AlternateSeconds uint8
}

// DefaultSettings returns the factory global settings.
func DefaultSettings() Settings {
	return Settings{
		ActiveFace:       0,
		Display:          DisplayAlternating,
		Colons:           ColonsFlash,
		AlternateSeconds: 5,
	}
}

// RingPositions is the number of addressable positions per sub-ring.
const RingPositions = 60

// TimeSample is one reading of the real-time clock. Weekday is an opaque
// pass-through to the RTC; it is never derived or validated here.
type TimeSample struct {
	Hours   int
	Minutes int
	Seconds int
	Year    int // two-digit year, 0-99
	Month   int // 1-12
	Day     int // 1-31
	Weekday uint8
}

// HoursHandPosition returns the ring position of the hours hand. It moves
// one step for every 12 minutes past the hour.
func (t TimeSample) HoursHandPosition() int {
	return (t.Hours%12)*5 + t.Minutes/12
}

// SameClock reports whether the time-of-day part is unchanged.
func (t TimeSample) SameClock(o TimeSample) bool {
	return t.Hours == o.Hours && t.Minutes == o.Minutes && t.Seconds == o.Seconds
}

// Validate checks every field against its legal range. Weekday is exempt.
func (t TimeSample) Validate() error {
	switch {
	case t.Hours < 0 || t.Hours > 23:
		return fmt.Errorf("%w: hours %d", ErrInvalidInput, t.Hours)
	case t.Minutes < 0 || t.Minutes > 59:
		return fmt.Errorf("%w: minutes %d", ErrInvalidInput, t.Minutes)
	case t.Seconds < 0 || t.Seconds > 59:
		return fmt.Errorf("%w: seconds %d", ErrInvalidInput, t.Seconds)
	case t.Year < 0 || t.Year > 99:
		return fmt.Errorf("%w: year %d", ErrInvalidInput, t.Year)
	case t.Month < 1 || t.Month > 12:
		return fmt.Errorf("%w: month %d", ErrInvalidInput, t.Month)
	case t.Day < 1 || t.Day > 31:
		return fmt.Errorf("%w: day %d", ErrInvalidInput, t.Day)
	}
	return nil
}
