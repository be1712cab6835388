package menu

import "github.com/hmolin/clockos/internal/model"

// timeDateField indexes the editable time and date fields in cursor
// order: hours, minutes, seconds, then year, month, day.
type timeDateField int

const (
	fieldHours timeDateField = iota
	fieldMinutes
	fieldSeconds
	fieldYear
	fieldMonth
	fieldDay
	numTimeDateFields
)

const fieldNone timeDateField = -1

var (
	timeDateMin = [numTimeDateFields]int{0, 0, 0, 0, 1, 1}
	timeDateMax = [numTimeDateFields]int{23, 59, 59, 99, 12, 31}
)

// daysInMonth returns the day count for a two-digit year. The
// divisible-by-four leap rule is exact for the 2000-2099 range the RTC
// covers.
func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func fieldValue(t model.TimeSample, f timeDateField) int {
	switch f {
	case fieldHours:
		return t.Hours
	case fieldMinutes:
		return t.Minutes
	case fieldSeconds:
		return t.Seconds
	case fieldYear:
		return t.Year
	case fieldMonth:
		return t.Month
	default:
		return t.Day
	}
}

func setFieldValue(t *model.TimeSample, f timeDateField, v int) {
	switch f {
	case fieldHours:
		t.Hours = v
	case fieldMinutes:
		t.Minutes = v
	case fieldSeconds:
		t.Seconds = v
	case fieldYear:
		t.Year = v
	case fieldMonth:
		t.Month = v
	default:
		t.Day = v
	}
}

// fieldMax returns the wrap-around ceiling. The day ceiling follows the
// month and leap year currently being edited.
func fieldMax(t model.TimeSample, f timeDateField) int {
	if f == fieldDay {
		return daysInMonth(t.Month, t.Year)
	}
	return timeDateMax[f]
}

// incrementField steps the field up, wrapping to its minimum.
func incrementField(t *model.TimeSample, f timeDateField) {
	v := fieldValue(*t, f) + 1
	if v > fieldMax(*t, f) {
		v = timeDateMin[f]
	}
	setFieldValue(t, f, v)
}

// decrementField steps the field down, wrapping to its maximum.
func decrementField(t *model.TimeSample, f timeDateField) {
	v := fieldValue(*t, f) - 1
	if v < timeDateMin[f] {
		v = fieldMax(*t, f)
	}
	setFieldValue(t, f, v)
}

// stylingField indexes the styling editor cursor: the three hands, then
// the marker ring.
type stylingField int

const (
	styleHours stylingField = iota
	styleMinutes
	styleSeconds
	styleMarkers
	numStylingFields
)

func componentFor(f stylingField) model.Component {
	switch f {
	case styleHours:
		return model.Hours
	case styleMinutes:
		return model.Minutes
	default:
		return model.Seconds
	}
}

// settingsField indexes the global settings editor cursor.
type settingsField int

const (
	settingFace settingsField = iota
	settingDisplay
	settingAlternate
	settingColons
	numSettingsFields
)

// prevDisplayMode cycles Alternating -> Time -> Date -> None.
func prevDisplayMode(m model.DisplayMode) model.DisplayMode {
	switch m {
	case model.DisplayAlternating:
		return model.DisplayTime
	case model.DisplayTime:
		return model.DisplayDate
	case model.DisplayDate:
		return model.DisplayNone
	default:
		return model.DisplayAlternating
	}
}

// nextDisplayMode cycles Alternating -> None -> Date -> Time.
func nextDisplayMode(m model.DisplayMode) model.DisplayMode {
	switch m {
	case model.DisplayAlternating:
		return model.DisplayNone
	case model.DisplayNone:
		return model.DisplayDate
	case model.DisplayDate:
		return model.DisplayTime
	default:
		return model.DisplayAlternating
	}
}

// toggleColons flips between flashing and steady colons. Off is only
// reachable through stored settings, never from the editor.
func toggleColons(m model.ColonMode) model.ColonMode {
	if m == model.ColonsFlash {
		return model.ColonsOn
	}
	return model.ColonsFlash
}
