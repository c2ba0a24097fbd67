package apppass

import (
	"errors"
	"sort"
	"strings"
)

const indexSeparator = ","

// Index returns the names of all stored applications in sorted order.
// A missing index record means nothing is stored and yields an empty
// list, not an error.
func (m *Manager) Index() ([]string, error) {
	set, err := m.readIndex()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Manager) readIndex() (map[string]struct{}, error) {
	data, err := m.get(IndexKey())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return map[string]struct{}{}, nil
		}
		return nil, err
	}
	return parseIndex(data), nil
}

// parseIndex drops empty slots and anything that is not a real entry
// name, so a corrupted index can never surface reserved records.
func parseIndex(data string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, raw := range strings.Split(data, indexSeparator) {
		name := strings.TrimSpace(raw)
		if indexable(name) {
			set[name] = struct{}{}
		}
	}
	return set
}

// indexAdd records name in the index. Reserved names are rejected
// before the store is touched, so the index can never come to list
// itself or a metadata record.
func (m *Manager) indexAdd(name string) error {
	if !indexable(name) {
		return nil
	}
	set, err := m.readIndex()
	if err != nil {
		return err
	}
	set[name] = struct{}{}
	return m.writeIndex(set)
}

func (m *Manager) indexRemove(name string) error {
	set, err := m.readIndex()
	if err != nil {
		return err
	}
	delete(set, name)
	return m.writeIndex(set)
}

// writeIndex persists the membership sorted, so repeated writes of an
// unchanged set are byte-identical. An empty set deletes the record:
// a missing index is the only representation of "nothing stored".
func (m *Manager) writeIndex(set map[string]struct{}) error {
	if len(set) == 0 {
		if err := m.del(IndexKey()); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return m.set(IndexKey(), strings.Join(names, indexSeparator))
}
