package faces

import (
	"errors"
	"testing"

	"github.com/hmolin/clockos/internal/model"
)

func newTestStore() *Store {
	var f [model.NumFaces]model.FaceConfig
	f[0] = model.FaceConfig{
		Markers: model.MarkerConfig{Style: model.MarkersEveryHour, Color: model.Blue},
		Hours:   model.HandConfig{Style: model.StyleHand, Color: model.Cyan},
		Minutes: model.HandConfig{Style: model.StyleHand, Color: model.Green},
		Seconds: model.HandConfig{Style: model.StyleHand, Color: model.Red},
	}
	return New(f, model.DefaultSettings())
}

func TestSetActiveFaceRange(t *testing.T) {
	s := newTestStore()
	if err := s.SetActiveFace(9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetActiveFace(10); !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := s.SetActiveFace(-1); !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if got := s.ActiveFace(); got != 9 {
		t.Fatalf("active face = %d, want 9", got)
	}
}

func TestHandMutation(t *testing.T) {
	s := newTestStore()
	if err := s.SetHandStyle(model.Minutes, model.StyleTrace); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetHandColor(model.Minutes, model.Purple); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.HandConfig(model.Minutes)
	if got.Style != model.StyleTrace || got.Color != model.Purple {
		t.Fatalf("minutes config = %+v", got)
	}
	if err := s.SetHandColor(model.Minutes, model.Color(8)); !errors.Is(err, model.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for color 8, got %v", err)
	}
}

func TestMarkerMutation(t *testing.T) {
	s := newTestStore()
	if err := s.SetMarkerStyle(model.MarkersQuarterly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetMarkerColor(model.Orange); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.MarkerConfig()
	if got.Style != model.MarkersQuarterly || got.Color != model.Orange {
		t.Fatalf("marker config = %+v", got)
	}
}

func TestMutationTargetsActiveFaceOnly(t *testing.T) {
	s := newTestStore()
	if err := s.SetActiveFace(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetHandColor(model.Seconds, model.White); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	face0, err := s.Face(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if face0.Seconds.Color == model.White {
		t.Fatalf("mutation leaked into face 0: %+v", face0)
	}
}

func TestSetSettingsValidation(t *testing.T) {
	s := newTestStore()
	bad := model.DefaultSettings()
	bad.AlternateSeconds = 7
	if err := s.SetSettings(bad); !errors.Is(err, model.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for interval 7, got %v", err)
	}
	good := model.DefaultSettings()
	good.AlternateSeconds = 30
	good.Display = model.DisplayDate
	if err := s.SetSettings(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Settings(); got != good {
		t.Fatalf("settings = %+v, want %+v", got, good)
	}
}
