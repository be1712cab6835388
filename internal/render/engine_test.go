package render

import (
	"errors"
	"testing"

	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

func handsFace() model.FaceConfig {
	return model.FaceConfig{
		Markers: model.MarkerConfig{Style: model.MarkersEveryHour, Color: model.Blue},
		Hours:   model.HandConfig{Style: model.StyleHand, Color: model.Cyan},
		Minutes: model.HandConfig{Style: model.StyleHand, Color: model.Green},
		Seconds: model.HandConfig{Style: model.StyleHand, Color: model.Red},
	}
}

func at(h, m, s int) model.TimeSample {
	return model.TimeSample{Hours: h, Minutes: m, Seconds: s, Year: 24, Month: 6, Day: 15}
}

func draws(cmds []Command) []Command {
	var out []Command
	for _, c := range cmds {
		if !c.Clear && c.Color != model.Blank {
			out = append(out, c)
		}
	}
	return out
}

func TestRenderSameTimeTwiceIsNoOp(t *testing.T) {
	e := New()
	first, err := e.Render(handsFace(), at(10, 15, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) == 0 {
		t.Fatalf("expected a full redraw on first render")
	}
	second, err := e.Render(handsFace(), at(10, 15, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected no commands on unchanged time, got %v", second)
	}
}

func TestResetForcesFullRedraw(t *testing.T) {
	e := New()
	if _, err := e.Render(handsFace(), at(10, 15, 30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Reset()
	cmds, err := e.Render(handsFace(), at(10, 15, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) == 0 {
		t.Fatalf("expected a full redraw after reset")
	}
	want := map[int]bool{at(10, 15, 30).HoursHandPosition(): false, 15: false, 30: false}
	for _, c := range draws(cmds) {
		if _, ok := want[c.Position]; ok {
			want[c.Position] = true
		}
	}
	for pos, ok := range want {
		if !ok {
			t.Fatalf("expected a draw at position %d after reset, got %v", pos, cmds)
		}
	}
}

func TestTraceWrapClearsRing(t *testing.T) {
	face := model.FaceConfig{
		Seconds: model.HandConfig{Style: model.StyleTrace, Color: model.Blue},
	}
	e := New()
	if _, err := e.Render(face, at(10, 15, 59)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmds, err := e.Render(face, at(10, 16, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var cleared, drewZero bool
	for _, c := range cmds {
		if c.Clear && c.Rings == device.RingSeconds {
			cleared = true
		}
		if !c.Clear && c.Position == 0 && c.Color == model.Blue && c.Rings.Has(device.RingSeconds) {
			drewZero = true
		}
	}
	if !cleared {
		t.Fatalf("expected seconds ring clear on trace wrap, got %v", cmds)
	}
	if !drewZero {
		t.Fatalf("expected trace draw at position 0, got %v", cmds)
	}
}

func TestTraceWrapWithBlankColorEmitsNothing(t *testing.T) {
	face := model.FaceConfig{
		Seconds: model.HandConfig{Style: model.StyleTrace, Color: model.Blank},
	}
	e := New()
	if _, err := e.Render(face, at(10, 15, 59)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmds, err := e.Render(face, at(10, 16, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) != 0 {
		t.Fatalf("disabled hand must not render, got %v", cmds)
	}
}

func TestHandOcclusionAtSharedPosition(t *testing.T) {
	// 04:21: the hours hand sits at 4*5+21/12 = 21, same as the minutes dot.
	face := model.FaceConfig{
		Hours:   model.HandConfig{Style: model.StyleHand, Color: model.Red},
		Minutes: model.HandConfig{Style: model.StyleDot, Color: model.Green},
	}
	e := New()
	cmds, err := e.Render(face, at(4, 21, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var dotAt, handAt = -1, -1
	for i, c := range cmds {
		if c.Clear || c.Position != 21 {
			continue
		}
		if c.Color == model.Green && c.Rings == device.RingMinutes {
			dotAt = i
		}
		if c.Color == model.Red && c.Rings.Has(device.RingHours|device.RingMinutes) {
			handAt = i
		}
	}
	if handAt == -1 {
		t.Fatalf("expected an hours hand draw overlaying the minutes ring at 21, got %v", cmds)
	}
	if dotAt == -1 {
		t.Fatalf("expected a minutes dot draw at 21, got %v", cmds)
	}
	if handAt < dotAt {
		t.Fatalf("hand must be painted after the dot so it wins the shared position: %v", cmds)
	}
}

func TestMinuteTickScenario(t *testing.T) {
	// 10:15:59 -> 10:16:00 with hours hand, minutes dot, seconds trace.
	face := model.FaceConfig{
		Hours:   model.HandConfig{Style: model.StyleHand, Color: model.Red},
		Minutes: model.HandConfig{Style: model.StyleDot, Color: model.Green},
		Seconds: model.HandConfig{Style: model.StyleTrace, Color: model.Blue},
	}
	e := New()
	if _, err := e.Render(face, at(10, 15, 59)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmds, err := e.Render(face, at(10, 16, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Command{
		SetPosition(device.RingMinutes, 15, model.Blank),
		ClearRings(device.RingSeconds),
		SetPosition(device.RingMinutes, 16, model.Green),
		SetPosition(device.RingSeconds, 0, model.Blue),
	}
	if len(cmds) != len(want) {
		t.Fatalf("command count = %d, want %d: %v", len(cmds), len(want), cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Fatalf("command %d = %v, want %v", i, cmds[i], want[i])
		}
	}
}

func TestTraceFillAccumulates(t *testing.T) {
	face := model.FaceConfig{
		Seconds: model.HandConfig{Style: model.StyleTrace, Color: model.Red},
	}
	e := New()
	if _, err := e.Render(face, at(8, 0, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmds, err := e.Render(face, at(8, 0, 13))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := map[int]bool{}
	for _, c := range draws(cmds) {
		got[c.Position] = true
	}
	for pos := 10; pos <= 13; pos++ {
		if !got[pos] {
			t.Fatalf("expected trace fill to cover %d, got %v", pos, cmds)
		}
	}
}

func TestHandVacatedPositionRefilledByTrace(t *testing.T) {
	// The seconds hand sweeps over the minutes trace; when it moves off a
	// position inside the trace span, that position is repainted.
	face := model.FaceConfig{
		Minutes: model.HandConfig{Style: model.StyleTrace, Color: model.Green},
		Seconds: model.HandConfig{Style: model.StyleHand, Color: model.Red},
	}
	e := New()
	if _, err := e.Render(face, at(9, 30, 20)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmds, err := e.Render(face, at(9, 30, 21))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var refilled bool
	for _, c := range draws(cmds) {
		if c.Position == 20 && c.Color == model.Green && c.Rings == device.RingMinutes {
			refilled = true
		}
	}
	if !refilled {
		t.Fatalf("expected minutes trace refill at vacated position 20, got %v", cmds)
	}
}

func TestRenderRejectsOutOfRangeSample(t *testing.T) {
	e := New()
	bad := at(10, 15, 30)
	bad.Minutes = 60
	if _, err := e.Render(handsFace(), bad); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
