package store

import "github.com/hmolin/clockos/internal/model"

// FactoryFaces returns the ten built-in clock faces: hands examples,
// trace examples, plain dots, and all-trace combinations. A face slot
// whose stored record is all zero falls back to its entry here.
func FactoryFaces() [model.NumFaces]model.FaceConfig {
	hand := func(c model.Color) model.HandConfig { return model.HandConfig{Style: model.StyleHand, Color: c} }
	dot := func(c model.Color) model.HandConfig { return model.HandConfig{Style: model.StyleDot, Color: c} }
	trace := func(c model.Color) model.HandConfig { return model.HandConfig{Style: model.StyleTrace, Color: c} }
	markers := func(s model.MarkerStyle, c model.Color) model.MarkerConfig {
		return model.MarkerConfig{Style: s, Color: c}
	}

	return [model.NumFaces]model.FaceConfig{
		// Hands examples.
		{Markers: markers(model.MarkersEveryHour, model.Blue), Hours: hand(model.Cyan), Minutes: hand(model.Green), Seconds: hand(model.Red)},
		{Markers: markers(model.MarkersQuarterly, model.Purple), Hours: trace(model.Cyan), Minutes: hand(model.Green), Seconds: dot(model.Red)},

		// Trace examples.
		{Markers: markers(model.MarkersEveryHour, model.Blue), Hours: dot(model.Blank), Minutes: dot(model.Blank), Seconds: trace(model.Red)},
		{Markers: markers(model.MarkersQuarterly, model.Red), Hours: dot(model.Blank), Minutes: dot(model.Blank), Seconds: trace(model.Blue)},
		{Markers: markers(model.MarkersTwelfthOnly, model.Orange), Hours: dot(model.Blank), Minutes: trace(model.Green), Seconds: trace(model.Blue)},

		// Simple dot examples.
		{Hours: dot(model.Blank), Minutes: dot(model.Blank), Seconds: dot(model.Red)},
		{Hours: dot(model.Blue), Minutes: dot(model.Green), Seconds: dot(model.Red)},
		{Hours: dot(model.Blank), Minutes: dot(model.Blank), Seconds: trace(model.Red)},

		// Only traces.
		{Markers: markers(model.MarkersEveryHour, model.Blue), Hours: trace(model.Cyan), Minutes: trace(model.Green), Seconds: trace(model.Red)},
		{Hours: trace(model.Blank), Minutes: trace(model.Green), Seconds: trace(model.Red)},
	}
}
