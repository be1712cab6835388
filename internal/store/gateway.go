package store

import (
	"errors"
	"fmt"

	"github.com/hmolin/clockos/internal/model"
)

// ErrStorageUnavailable wraps every failed read or write of the backing
// byte store. The caller keeps its in-memory state authoritative and may
// simply retry on the next commit.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Storage is an addressable byte store (EEPROM, NVRAM file, SQLite table).
// Unwritten addresses read back as zero.
type Storage interface {
	ReadByte(addr int) (byte, error)
	WriteByte(addr int, value byte) error
}

// Gateway loads and saves the clock configuration using the fixed EEPROM
// layout: byte 0 active face, byte 1 packed display settings, byte 2
// alternation interval, bytes 10+ ten 4-byte face records.
type Gateway struct {
	storage Storage
}

// NewGateway returns a gateway over the given byte store.
func NewGateway(storage Storage) *Gateway {
	return &Gateway{storage: storage}
}

// LoadSettings reads the global settings, repairing out-of-range stored
// values (face index, zero alternation interval) instead of failing.
func (g *Gateway) LoadSettings() (model.Settings, error) {
	face, err := g.storage.ReadByte(addrActiveFace)
	if err != nil {
		return model.Settings{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	display, err := g.storage.ReadByte(addrDisplay)
	if err != nil {
		return model.Settings{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	alternate, err := g.storage.ReadByte(addrAlternate)
	if err != nil {
		return model.Settings{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return unpackSettings(face, display, alternate), nil
}

// SaveSettings writes the global settings.
func (g *Gateway) SaveSettings(s model.Settings) error {
	display, alternate := packSettings(s)
	writes := []struct {
		addr  int
		value byte
	}{
		{addrActiveFace, byte(s.ActiveFace)},
		{addrDisplay, display},
		{addrAlternate, alternate},
	}
	for _, w := range writes {
		if err := g.storage.WriteByte(w.addr, w.value); err != nil {
			return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	return nil
}

// LoadFace reads one face slot. An all-zero record means the slot was
// never written and yields the slot's factory default.
func (g *Gateway) LoadFace(index int) (model.FaceConfig, error) {
	if index < 0 || index >= model.NumFaces {
		return model.FaceConfig{}, fmt.Errorf("%w: face index %d", model.ErrOutOfRange, index)
	}
	var rec [faceRecordLen]byte
	base := addrFaces + index*faceRecordLen
	allZero := true
	for i := range rec {
		b, err := g.storage.ReadByte(base + i)
		if err != nil {
			return model.FaceConfig{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		rec[i] = b
		if b != 0 {
			allZero = false
		}
	}
	if allZero {
		return FactoryFaces()[index], nil
	}
	return unpackFace(rec), nil
}

// LoadFaces reads all ten face slots.
func (g *Gateway) LoadFaces() ([model.NumFaces]model.FaceConfig, error) {
	var faces [model.NumFaces]model.FaceConfig
	for i := range faces {
		f, err := g.LoadFace(i)
		if err != nil {
			return faces, err
		}
		faces[i] = f
	}
	return faces, nil
}

// SaveFace writes one face slot.
func (g *Gateway) SaveFace(index int, face model.FaceConfig) error {
	if index < 0 || index >= model.NumFaces {
		return fmt.Errorf("%w: face index %d", model.ErrOutOfRange, index)
	}
	rec := packFace(face)
	base := addrFaces + index*faceRecordLen
	for i, b := range rec {
		if err := g.storage.WriteByte(base+i, b); err != nil {
			return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	return nil
}

// WriteFactoryDefaults resets the whole layout: default settings plus the
// ten factory faces.
func (g *Gateway) WriteFactoryDefaults() error {
	if err := g.SaveSettings(model.DefaultSettings()); err != nil {
		return err
	}
	faces := FactoryFaces()
	for i, f := range faces {
		if err := g.SaveFace(i, f); err != nil {
			return err
		}
	}
	return nil
}
