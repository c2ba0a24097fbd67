package apppass

import "errors"

// Entry is one listed application with its password and metadata, as
// consumed by the presentation layers.
type Entry struct {
	Name     string
	Password string
	Type     PasswordType
	// OTPExpiry is the unix expiry timestamp; zero when the entry is
	// not an OTP.
	OTPExpiry int64
}

// List returns every application whose entry is readable, sorted by
// name. A listed name whose read fails is skipped in the output and
// dropped from the index on the way, so a stale index heals itself
// the next time somebody lists.
func (m *Manager) List() ([]Entry, error) {
	names, err := m.Index()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		password, err := m.get(EntryKey(name))
		if err != nil {
			if rerr := m.indexRemove(name); rerr != nil {
				m.log.WithError(rerr).WithField("app", name).Warn("failed to drop orphaned index entry")
			}
			continue
		}
		e := Entry{
			Name:     name,
			Password: password,
			Type:     m.passwordTypeOrDefault(name),
		}
		if expiry, ok := m.OTPExpiry(name); ok {
			e.OTPExpiry = expiry
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// HasAnyPasswords reports whether the index lists at least one entry
// name. It never mutates state.
func (m *Manager) HasAnyPasswords() bool {
	names, err := m.Index()
	return err == nil && len(names) > 0
}

// HasAutoPasswords reports whether at least one listed entry
// classifies as auto-generated.
func (m *Manager) HasAutoPasswords() bool {
	return m.hasPasswordsOfType(TypeAuto)
}

// HasCustomPasswords reports whether at least one listed entry
// classifies as custom.
func (m *Manager) HasCustomPasswords() bool {
	return m.hasPasswordsOfType(TypeCustom)
}

func (m *Manager) hasPasswordsOfType(t PasswordType) bool {
	names, err := m.Index()
	if err != nil {
		return false
	}
	for _, name := range names {
		if m.passwordTypeOrDefault(name) == t {
			return true
		}
	}
	return false
}

// CleanupOrphanedIndex deletes the index record when none of the
// names it lists has a readable entry. Startup self-healing for an
// index left behind by a crash mid-delete.
func (m *Manager) CleanupOrphanedIndex() {
	data, err := m.get(IndexKey())
	if err != nil {
		return
	}
	for name := range parseIndex(data) {
		if _, err := m.get(EntryKey(name)); err == nil {
			return
		}
	}
	if err := m.del(IndexKey()); err != nil && !errors.Is(err, ErrNotFound) {
		m.log.WithError(err).Warn("failed to delete orphaned index")
	}
}
