package apppass

import (
	"errors"
	"strconv"
)

// PasswordType records how a password came to be.
type PasswordType string

const (
	// TypeAuto marks generated passwords. Entries written before type
	// tracking existed carry no type record and classify as auto.
	TypeAuto PasswordType = "auto"
	// TypeCustom marks user-supplied passwords.
	TypeCustom PasswordType = "custom"
)

func (m *Manager) setPasswordType(name string, t PasswordType) error {
	return m.set(TypeKey(name), string(t))
}

// PasswordType returns the recorded type for name. The second return
// is false when no type record exists; classification then falls back
// to TypeAuto.
func (m *Manager) PasswordType(name string) (PasswordType, bool) {
	v, err := m.get(TypeKey(name))
	if err != nil {
		return "", false
	}
	if PasswordType(v) == TypeCustom {
		return TypeCustom, true
	}
	return TypeAuto, true
}

func (m *Manager) passwordTypeOrDefault(name string) PasswordType {
	if t, ok := m.PasswordType(name); ok {
		return t
	}
	return TypeAuto
}

func (m *Manager) setOTPExpiry(name string, expiry int64) error {
	return m.set(ExpiryKey(name), strconv.FormatInt(expiry, 10))
}

// OTPExpiry returns the unix expiry timestamp recorded for name.
// false means the entry is not an OTP; an unparseable record counts
// as absent.
func (m *Manager) OTPExpiry(name string) (int64, bool) {
	v, err := m.get(ExpiryKey(name))
	if err != nil {
		return 0, false
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

func (m *Manager) deleteOTPExpiry(name string) {
	if err := m.del(ExpiryKey(name)); err != nil && !errors.Is(err, ErrNotFound) {
		m.log.WithError(err).WithField("app", name).Warn("failed to delete OTP expiry record")
	}
}

// deleteMetadata removes both metadata records for name. Missing
// records are not an error; the cascade has to stay idempotent.
func (m *Manager) deleteMetadata(name string) {
	if err := m.del(TypeKey(name)); err != nil && !errors.Is(err, ErrNotFound) {
		m.log.WithError(err).WithField("app", name).Warn("failed to delete password type record")
	}
	m.deleteOTPExpiry(name)
}
