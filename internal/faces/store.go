// Package faces owns the in-memory clock configuration: the ten face
// configs, the global settings, and the pure cycling helpers used by the
// menu. Persistence is a separate, explicit concern (internal/store).
package faces

import (
	"fmt"

	"github.com/hmolin/clockos/internal/model"
)

// Store holds every face config and the global settings for the process
// lifetime. It is exclusively owned by the control loop; no locking.
type Store struct {
	faces    [model.NumFaces]model.FaceConfig
	settings model.Settings
}

// New returns a store seeded with the given faces and settings.
func New(faces [model.NumFaces]model.FaceConfig, settings model.Settings) *Store {
	s := &Store{faces: faces, settings: settings}
	if s.settings.ActiveFace < 0 || s.settings.ActiveFace >= model.NumFaces {
		s.settings.ActiveFace = 0
	}
	return s
}

// ActiveFace returns the index of the active face.
func (s *Store) ActiveFace() int {
	return s.settings.ActiveFace
}

// SetActiveFace selects the active face slot.
func (s *Store) SetActiveFace(index int) error {
	if index < 0 || index >= model.NumFaces {
		return fmt.Errorf("%w: face index %d", model.ErrOutOfRange, index)
	}
	s.settings.ActiveFace = index
	return nil
}

// Face returns the configuration of the given slot.
func (s *Store) Face(index int) (model.FaceConfig, error) {
	if index < 0 || index >= model.NumFaces {
		return model.FaceConfig{}, fmt.Errorf("%w: face index %d", model.ErrOutOfRange, index)
	}
	return s.faces[index], nil
}

// Active returns the configuration of the active face.
func (s *Store) Active() model.FaceConfig {
	return s.faces[s.settings.ActiveFace]
}

// SetFace replaces the configuration of the given slot.
func (s *Store) SetFace(index int, face model.FaceConfig) error {
	if index < 0 || index >= model.NumFaces {
		return fmt.Errorf("%w: face index %d", model.ErrOutOfRange, index)
	}
	s.faces[index] = face
	return nil
}

// HandConfig returns the active face's configuration for one hand.
func (s *Store) HandConfig(c model.Component) model.HandConfig {
	return s.Active().Hand(c)
}

// SetHandStyle sets the style of one hand on the active face.
func (s *Store) SetHandStyle(c model.Component, style model.HandStyle) error {
	if style > model.StyleTrace {
		return fmt.Errorf("%w: hand style %d", model.ErrInvalidValue, style)
	}
	h := s.activeHand(c)
	h.Style = style
	return nil
}

// SetHandColor sets the color of one hand on the active face.
func (s *Store) SetHandColor(c model.Component, color model.Color) error {
	if !color.Valid() {
		return fmt.Errorf("%w: color %d", model.ErrInvalidValue, color)
	}
	h := s.activeHand(c)
	h.Color = color
	return nil
}

// MarkerConfig returns the active face's marker configuration.
func (s *Store) MarkerConfig() model.MarkerConfig {
	return s.Active().Markers
}

// SetMarkerStyle sets the marker style on the active face.
func (s *Store) SetMarkerStyle(style model.MarkerStyle) error {
	if style > model.MarkersTwelfthOnly {
		return fmt.Errorf("%w: marker style %d", model.ErrInvalidValue, style)
	}
	s.faces[s.settings.ActiveFace].Markers.Style = style
	return nil
}

// SetMarkerColor sets the marker color on the active face.
func (s *Store) SetMarkerColor(color model.Color) error {
	if !color.Valid() {
		return fmt.Errorf("%w: color %d", model.ErrInvalidValue, color)
	}
	s.faces[s.settings.ActiveFace].Markers.Color = color
	return nil
}

// Settings returns the global settings.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// SetSettings replaces the global settings after validation.
func (s *Store) SetSettings(settings model.Settings) error {
	if settings.ActiveFace < 0 || settings.ActiveFace >= model.NumFaces {
		return fmt.Errorf("%w: face index %d", model.ErrOutOfRange, settings.ActiveFace)
	}
	if settings.Display > model.DisplayAlternating {
		return fmt.Errorf("%w: display mode %d", model.ErrInvalidValue, settings.Display)
	}
	if settings.Colons > model.ColonsFlash {
		return fmt.Errorf("%w: colon mode %d", model.ErrInvalidValue, settings.Colons)
	}
	if !validAlternate(settings.AlternateSeconds) {
		return fmt.Errorf("%w: alternate interval %d", model.ErrInvalidValue, settings.AlternateSeconds)
	}
	s.settings = settings
	return nil
}

// Reset replaces every face and the global settings in one step, used
// by the factory reset flow.
func (s *Store) Reset(faces [model.NumFaces]model.FaceConfig, settings model.Settings) {
	s.faces = faces
	s.settings = settings
	if s.settings.ActiveFace < 0 || s.settings.ActiveFace >= model.NumFaces {
		s.settings.ActiveFace = 0
	}
}

func (s *Store) activeHand(c model.Component) *model.HandConfig {
	face := &s.faces[s.settings.ActiveFace]
	switch c {
	case model.Hours:
		return &face.Hours
	case model.Minutes:
		return &face.Minutes
	default:
		return &face.Seconds
	}
}

func validAlternate(v uint8) bool {
	for _, a := range model.AlternateSeconds {
		if a == v {
			return true
		}
	}
	return false
}
