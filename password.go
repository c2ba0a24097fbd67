package apppass

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// exists reports whether an entry currently resolves from the store.
// The entry itself is the source of truth, never the index.
func (m *Manager) exists(name string) bool {
	_, err := m.get(EntryKey(name))
	return err == nil
}

// saveEntry writes the entry, indexes it and records its type.
func (m *Manager) saveEntry(name, value string, t PasswordType) error {
	if err := m.set(EntryKey(name), value); err != nil {
		return err
	}
	if err := m.indexAdd(name); err != nil {
		return err
	}
	return m.setPasswordType(name, t)
}

// CreateAuto generates and stores an alphanumeric password for name
// and returns it. length <= 0 falls back to the stored default
// length, then to DefaultLength. Returns ErrExists when a password
// for name already resolves.
func (m *Manager) CreateAuto(name string, length int) (string, error) {
	if m.exists(name) {
		return "", ErrExists
	}
	if length <= 0 {
		length = m.defaultOrFallbackLength()
	}
	password, err := randomAlphanumeric(length)
	if err != nil {
		return "", err
	}
	if err := m.saveEntry(name, password, TypeAuto); err != nil {
		return "", err
	}
	return password, nil
}

// CreateCustom stores a caller-supplied value verbatim. The value is
// not validated; an empty string is a legal password.
func (m *Manager) CreateCustom(name, value string) error {
	if m.exists(name) {
		return ErrExists
	}
	return m.saveEntry(name, value, TypeCustom)
}

// CreateMemorizable stores a Word-NN-Word password for name and
// returns it.
func (m *Manager) CreateMemorizable(name string) (string, error) {
	if m.exists(name) {
		return "", ErrExists
	}
	password, err := randomMemorizable()
	if err != nil {
		return "", err
	}
	if err := m.saveEntry(name, password, TypeAuto); err != nil {
		return "", err
	}
	return password, nil
}

// Password returns the stored password for name. ErrNotFound when no
// entry exists.
func (m *Manager) Password(name string) (string, error) {
	return m.get(EntryKey(name))
}

// UpdateRegenerate replaces the stored password with a freshly
// generated one and returns it. An update never creates: ErrNotFound
// when no entry exists. A regenerated value is by definition not
// user-chosen, so the type always becomes auto, even for a
// previously custom entry.
func (m *Manager) UpdateRegenerate(name string, length int) (string, error) {
	if !m.exists(name) {
		return "", ErrNotFound
	}
	if length <= 0 {
		length = m.defaultOrFallbackLength()
	}
	password, err := randomAlphanumeric(length)
	if err != nil {
		return "", err
	}
	if err := m.saveEntry(name, password, TypeAuto); err != nil {
		return "", err
	}
	return password, nil
}

// UpdateCustom overwrites the stored password with a caller-supplied
// value. ErrNotFound when no entry exists.
func (m *Manager) UpdateCustom(name, value string) error {
	if !m.exists(name) {
		return ErrNotFound
	}
	return m.saveEntry(name, value, TypeCustom)
}

// Delete removes the entry, its metadata and its index slot, and
// cancels any pending OTP deletion for the name. Deleting a name
// with no entry returns ErrNotFound; the metadata cascade itself is
// idempotent.
func (m *Manager) Delete(name string) error {
	if err := m.del(EntryKey(name)); err != nil {
		return err
	}
	m.sched.cancel(name)
	m.deleteMetadata(name)
	return m.indexRemove(name)
}

// Export writes every readable entry to path as name,secret lines.
// Entries whose read fails are skipped; an empty index writes an
// empty file and succeeds. The format carries no escaping: it is the
// same unquoted CSV older releases produced and Import consumes.
func (m *Manager) Export(path string) error {
	names, err := m.Index()
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, name := range names {
		password, err := m.get(EntryKey(name))
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s,%s\n", name, password)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to export passwords: %v", err)
	}
	return nil
}

// Import loads name,secret lines from path. Lines without exactly two
// comma-separated fields are skipped silently. Imported entries
// overwrite existing ones and are marked custom.
func (m *Manager) Import(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to import passwords: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) != 2 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		password := strings.TrimSpace(fields[1])
		if err := m.saveEntry(name, password, TypeCustom); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to import passwords: %v", err)
	}
	return nil
}
