package sim

import (
	"testing"
	"time"

	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/model"
)

func TestSegmentLineSeparators(t *testing.T) {
	text := [6]byte{'1', '0', '2', '5', '3', '0'}
	cases := []struct {
		colons device.Colons
		want   string
	}{
		{device.ColonsOn, "10:25:30"},
		{device.ColonsOff, "10 25 30"},
		{device.ColonsBottomTwo, "10.25.30"},
		{device.ColonsTopTwo, "10'25'30"},
	}
	for _, c := range cases {
		if got := segmentLine(text, c.colons); got != c.want {
			t.Fatalf("segmentLine(%d) = %q, want %q", c.colons, got, c.want)
		}
	}
}

func TestPanelPressAccumulatesWithinWindow(t *testing.T) {
	p := NewPanel()
	p.Press(device.Button1, time.Second)
	p.Press(device.Button2, time.Second)
	if got := p.Read(); got != device.Buttons12 {
		t.Fatalf("Read = %#x, want %#x", got, device.Buttons12)
	}
}

func TestPanelLatchSurvivesReads(t *testing.T) {
	p := NewPanel()
	p.ToggleLatch(device.Button3)
	for i := 0; i < 3; i++ {
		if got := p.Read(); got != device.Button3 {
			t.Fatalf("Read = %#x, want %#x", got, device.Button3)
		}
	}
	p.ToggleLatch(device.Button3)
	if got := p.Read(); got != device.NoButtons {
		t.Fatalf("Read after unlatch = %#x, want none", got)
	}
}

func TestPanelSetPositionHonorsRingMask(t *testing.T) {
	p := NewPanel()
	p.SetPosition(device.RingHours|device.RingSeconds, 15, model.Cyan)
	frame := p.takeSnapshot()
	if frame.rings[ringHours][15] != model.Cyan || frame.rings[ringSeconds][15] != model.Cyan {
		t.Fatalf("masked rings not lit: %v, %v", frame.rings[ringHours][15], frame.rings[ringSeconds][15])
	}
	if frame.rings[ringMinutes][15] != model.Blank {
		t.Fatalf("unmasked ring lit: %v", frame.rings[ringMinutes][15])
	}
}

func TestSystemRTCWriteMovesClock(t *testing.T) {
	rtc := &SystemRTC{}
	want := model.TimeSample{Hours: 22, Minutes: 10, Seconds: 23, Year: 26, Month: 8, Day: 25, Weekday: 3}
	if err := rtc.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := rtc.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Hours != want.Hours || got.Minutes != want.Minutes || got.Year != want.Year || got.Month != want.Month || got.Day != want.Day {
		t.Fatalf("Read = %+v, want fields of %+v", got, want)
	}
}
