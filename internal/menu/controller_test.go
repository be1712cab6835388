package menu

import (
	"context"
	"testing"
	"time"

	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/faces"
	"github.com/hmolin/clockos/internal/model"
	"github.com/hmolin/clockos/internal/render"
	"github.com/hmolin/clockos/internal/store"
)

// virtualClock advances only when the controller sleeps, so whole menu
// flows run in microseconds of real time.
type virtualClock struct {
	now time.Time
}

func (v *virtualClock) Now() time.Time        { return v.now }
func (v *virtualClock) Sleep(d time.Duration) { v.now = v.now.Add(d) }

type ringWrite struct {
	rings    device.RingMask
	position int
	color    model.Color
}

type fakeRing struct {
	writes     []ringWrite
	ringClears []device.RingMask
	allClears  int
}

func (r *fakeRing) SetPosition(rings device.RingMask, position int, color model.Color) {
	r.writes = append(r.writes, ringWrite{rings, position, color})
}

func (r *fakeRing) ClearRings(rings device.RingMask) {
	r.ringClears = append(r.ringClears, rings)
}

func (r *fakeRing) ClearAll() { r.allClears++ }

func (r *fakeRing) hasWrite(w ringWrite) bool {
	for _, got := range r.writes {
		if got == w {
			return true
		}
	}
	return false
}

type segmentWrite struct {
	text   [6]byte
	colons device.Colons
}

type fakeSegments struct {
	writes   []segmentWrite
	statuses []device.StatusLEDs
	clears   int
}

func (s *fakeSegments) SetText(glyphs [6]byte, colons device.Colons) {
	s.writes = append(s.writes, segmentWrite{glyphs, colons})
}

func (s *fakeSegments) SetStatus(status device.StatusLEDs) {
	s.statuses = append(s.statuses, status)
}

func (s *fakeSegments) Clear() { s.clears++ }

func (s *fakeSegments) hasText(text [6]byte) bool {
	for _, w := range s.writes {
		if w.text == text {
			return true
		}
	}
	return false
}

type fakeRTC struct {
	sample  model.TimeSample
	readErr error
	written []model.TimeSample
}

func (r *fakeRTC) Read() (model.TimeSample, error) { return r.sample, r.readErr }

func (r *fakeRTC) Write(t model.TimeSample) error {
	r.written = append(r.written, t)
	r.sample = t
	return nil
}

// scriptButtons replays a fixed sample sequence, then reads as released
// forever. A press entry repeats the mask twice so it survives the
// two-sample debounce.
type scriptButtons struct {
	samples []device.ButtonMask
}

func (b *scriptButtons) Read() device.ButtonMask {
	if len(b.samples) == 0 {
		return device.NoButtons
	}
	m := b.samples[0]
	b.samples = b.samples[1:]
	return m
}

func press(m device.ButtonMask) []device.ButtonMask {
	out := []device.ButtonMask{m, m}
	return append(out, idle(6)...)
}

func hold(m device.ButtonMask, reads int) []device.ButtonMask {
	out := make([]device.ButtonMask, reads)
	for i := range out {
		out[i] = m
	}
	return out
}

func idle(reads int) []device.ButtonMask {
	return make([]device.ButtonMask, reads)
}

func script(groups ...[]device.ButtonMask) *scriptButtons {
	var samples []device.ButtonMask
	for _, g := range groups {
		samples = append(samples, g...)
	}
	return &scriptButtons{samples: samples}
}

type harness struct {
	ring     *fakeRing
	segments *fakeSegments
	rtc      *fakeRTC
	clock    *virtualClock
	memory   *store.Memory
	gateway  *store.Gateway
	config   *faces.Store
	ctrl     *Controller
}

func newHarness(buttons device.Buttons) *harness {
	h := &harness{
		ring:     &fakeRing{},
		segments: &fakeSegments{},
		rtc:      &fakeRTC{sample: model.TimeSample{Hours: 10, Minutes: 15, Seconds: 30, Year: 26, Month: 8, Day: 25}},
		clock:    &virtualClock{now: time.Date(2026, 8, 25, 10, 15, 30, 0, time.UTC)},
		memory:   store.NewMemory(),
	}
	h.gateway = store.NewGateway(h.memory)
	h.config = faces.New(store.FactoryFaces(), model.DefaultSettings())
	h.ctrl = New(Devices{
		Ring:     h.ring,
		Segments: h.segments,
		RTC:      h.rtc,
		Buttons:  buttons,
		Clock:    h.clock,
	}, h.config, h.gateway, render.New())
	return h
}

func TestFaceCyclingWrapsBothWays(t *testing.T) {
	h := newHarness(script(press(device.Button3)))
	h.ctrl.step(context.Background())
	if got := h.config.ActiveFace(); got != 1 {
		t.Fatalf("active face = %d, want 1", got)
	}
	if !h.segments.hasText(faceText(1, false)) {
		t.Fatalf("face confirmation text not shown")
	}
	if !h.ring.hasWrite(ringWrite{device.RingAll, 0, model.White}) {
		t.Fatalf("white confirmation sweep not played")
	}

	h = newHarness(script(press(device.Button1)))
	h.ctrl.step(context.Background())
	if got := h.config.ActiveFace(); got != model.NumFaces-1 {
		t.Fatalf("active face = %d, want %d", got, model.NumFaces-1)
	}
}

func TestFaceCyclingIsNotPersisted(t *testing.T) {
	h := newHarness(script(press(device.Button3)))
	h.ctrl.step(context.Background())
	settings, err := h.gateway.LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.ActiveFace != 0 {
		t.Fatalf("stored startup face = %d, want untouched 0", settings.ActiveFace)
	}
}

func TestSelectModeCyclesAndCommits(t *testing.T) {
	h := newHarness(script(
		idle(4),
		press(device.Button1),
		press(device.Button1),
		press(device.Button2),
	))
	got := h.ctrl.selectMode(context.Background())
	if got != modeSetSettings {
		t.Fatalf("selected mode = %d, want settings editor", got)
	}
	if !h.segments.hasText(label(labelFace)) {
		t.Fatalf("styling candidate label not shown")
	}
	if !h.segments.hasText(label(labelDisplay)) {
		t.Fatalf("settings candidate label not shown")
	}
}

func TestSelectModeWrapsBackward(t *testing.T) {
	h := newHarness(script(
		idle(4),
		press(device.Button3),
		press(device.Button2),
	))
	if got := h.ctrl.selectMode(context.Background()); got != modeSetTimeDate {
		t.Fatalf("selected mode = %d, want time/date editor", got)
	}
}

func TestTimeDateEditorCommitsWithSecondsZeroed(t *testing.T) {
	h := newHarness(script(
		idle(4),
		press(device.Button3),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
	))
	h.rtc.sample = model.TimeSample{Hours: 12, Minutes: 34, Seconds: 56, Year: 26, Month: 8, Day: 25, Weekday: 2}

	h.ctrl.editTimeDate(context.Background())

	if len(h.rtc.written) != 1 {
		t.Fatalf("RTC writes = %d, want 1", len(h.rtc.written))
	}
	want := model.TimeSample{Hours: 13, Minutes: 34, Seconds: 0, Year: 26, Month: 8, Day: 25, Weekday: 2}
	if h.rtc.written[0] != want {
		t.Fatalf("RTC write = %+v, want %+v", h.rtc.written[0], want)
	}
	if !h.ring.hasWrite(ringWrite{device.RingAll, 0, model.Green}) {
		t.Fatalf("green commit sweep not played")
	}
}

func TestTimeDateEditorWithoutChangesSkipsRTCWrite(t *testing.T) {
	h := newHarness(script(
		idle(4),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
	))
	h.ctrl.editTimeDate(context.Background())

	if len(h.rtc.written) != 0 {
		t.Fatalf("RTC writes = %d, want none", len(h.rtc.written))
	}
	if !h.ring.hasWrite(ringWrite{device.RingAll, 0, model.Blue}) {
		t.Fatalf("blue no-change sweep not played")
	}
	if h.ring.hasWrite(ringWrite{device.RingAll, 0, model.Green}) {
		t.Fatalf("green commit sweep played without changes")
	}
}

func TestSettingsEditorClampsFaceAndPersists(t *testing.T) {
	h := newHarness(script(
		idle(4),
		press(device.Button1), // clamps at face 0
		press(device.Button3), // face 1
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
	))
	h.ctrl.editSettings(context.Background())

	if got := h.config.ActiveFace(); got != 1 {
		t.Fatalf("active face = %d, want 1", got)
	}
	settings, err := h.gateway.LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.ActiveFace != 1 {
		t.Fatalf("stored startup face = %d, want 1", settings.ActiveFace)
	}
	if !h.ring.hasWrite(ringWrite{device.RingAll, 0, model.Green}) {
		t.Fatalf("green commit sweep not played")
	}
}

func TestStylingEditorPersistsActiveFaceRecord(t *testing.T) {
	h := newHarness(script(
		idle(4),
		press(device.Button1), // hours style Hand -> Trace
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
		press(device.Button2),
	))
	h.ctrl.editStyling(context.Background())

	if got := h.config.Active().Hours.Style; got != model.StyleTrace {
		t.Fatalf("hours style = %v, want trace", got)
	}
	face, err := h.gateway.LoadFace(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if face.Hours.Style != model.StyleTrace {
		t.Fatalf("stored hours style = %v, want trace", face.Hours.Style)
	}
	if h.ring.allClears == 0 {
		t.Fatalf("style change should clear the ring before the demo redraw")
	}
}

func TestFactoryResetAppliesWhenHeld(t *testing.T) {
	h := newHarness(script(hold(device.Buttons12, 70)))
	if err := h.config.SetActiveFace(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h.ctrl.factoryReset()

	if got := h.config.ActiveFace(); got != 0 {
		t.Fatalf("active face = %d, want factory 0", got)
	}
	if b, err := h.memory.ReadByte(1); err != nil || b == 0 {
		t.Fatalf("packed settings byte = %d, %v; want persisted non-zero", b, err)
	}
	if !h.ring.hasWrite(ringWrite{device.RingAll, 0, model.Green}) {
		t.Fatalf("green reset sweep not played")
	}
}

func TestFactoryResetAbortsOnEarlyRelease(t *testing.T) {
	h := newHarness(script(hold(device.Buttons12, 10)))
	if err := h.config.SetActiveFace(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h.ctrl.factoryReset()

	if got := h.config.ActiveFace(); got != 3 {
		t.Fatalf("active face = %d, want untouched 3", got)
	}
	if b, err := h.memory.ReadByte(1); err != nil || b != 0 {
		t.Fatalf("packed settings byte = %d, %v; want untouched zero", b, err)
	}
	if h.ring.hasWrite(ringWrite{device.RingAll, 0, model.Green}) {
		t.Fatalf("green sweep played for an aborted reset")
	}
}

func TestNormalTickSkipsUnchangedSecond(t *testing.T) {
	h := newHarness(script())
	h.ctrl.normalTick()
	writes := len(h.ring.writes)
	if writes == 0 {
		t.Fatalf("first tick should paint the face")
	}
	h.ctrl.normalTick()
	if got := len(h.ring.writes); got != writes {
		t.Fatalf("second tick emitted %d extra writes, want 0", got-writes)
	}
}

func TestNormalTickFlashesColonsOnSecondParity(t *testing.T) {
	h := newHarness(script())
	h.rtc.sample.Seconds = 30 // even, alternation shows the time view
	h.ctrl.normalTick()
	last := h.segments.writes[len(h.segments.writes)-1]
	if last.colons != device.ColonsOn {
		t.Fatalf("colons = %v on even second, want on", last.colons)
	}

	h.rtc.sample.Seconds = 31
	h.ctrl.normalTick()
	last = h.segments.writes[len(h.segments.writes)-1]
	if last.colons != device.ColonsOff {
		t.Fatalf("colons = %v on odd second, want off", last.colons)
	}
	if want := timeText(h.rtc.sample, fieldNone); last.text != want {
		t.Fatalf("text = %q, want %q", last.text, want)
	}
}
