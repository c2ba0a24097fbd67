package apppass

import (
	"errors"
	"strconv"
)

const (
	// MinLength and MaxLength bound the stored default generation
	// length setting.
	MinLength = 8
	MaxLength = 128
)

// ErrInvalidLength returned when a default length outside [MinLength, MaxLength] is stored
var ErrInvalidLength = errors.New("password length must be between 8 and 128")

// SetDefaultLength stores the preferred generation length. The record
// lives under a reserved key and is never enumerated or exported.
func (m *Manager) SetDefaultLength(length int) error {
	if length < MinLength || length > MaxLength {
		return ErrInvalidLength
	}
	return m.set(LengthKey(), strconv.Itoa(length))
}

// DefaultLengthSetting returns the stored preference. false when
// unset, unparseable or out of range.
func (m *Manager) DefaultLengthSetting() (int, bool) {
	v, err := m.get(LengthKey())
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < MinLength || n > MaxLength {
		return 0, false
	}
	return n, true
}

// ResetDefaultLength removes the stored preference; generation falls
// back to DefaultLength.
func (m *Manager) ResetDefaultLength() error {
	if err := m.del(LengthKey()); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (m *Manager) defaultOrFallbackLength() int {
	if n, ok := m.DefaultLengthSetting(); ok {
		return n
	}
	return DefaultLength
}
