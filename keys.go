package apppass

import "strings"

const (
	indexName    = "apppass_index"
	lengthName   = "password_length"
	typeSuffix   = "_type"
	expirySuffix = "_otp_expiry"
)

type keyKind int

const (
	kindEntry keyKind = iota
	kindType
	kindExpiry
	kindIndex
	kindLength
)

// Key identifies one record in the store. Metadata and reserved
// records are separate kinds resolved to a storage name only at the
// adapter boundary, so a key cannot be mistaken for an entry name
// anywhere in the core.
type Key struct {
	kind keyKind
	name string
}

// EntryKey addresses the password record for an application.
func EntryKey(name string) Key { return Key{kind: kindEntry, name: name} }

// TypeKey addresses the password type record for an application.
func TypeKey(name string) Key { return Key{kind: kindType, name: name} }

// ExpiryKey addresses the OTP expiry record for an application.
func ExpiryKey(name string) Key { return Key{kind: kindExpiry, name: name} }

// IndexKey addresses the single record enumerating all entry names.
func IndexKey() Key { return Key{kind: kindIndex} }

// LengthKey addresses the stored default generation length setting.
func LengthKey() Key { return Key{kind: kindLength} }

// StorageName resolves the key to the flat name used in the backing
// store.
func (k Key) StorageName() string {
	switch k.kind {
	case kindType:
		return k.name + typeSuffix
	case kindExpiry:
		return k.name + expirySuffix
	case kindIndex:
		return indexName
	case kindLength:
		return lengthName
	default:
		return k.name
	}
}

// indexable reports whether name may appear in the entry index.
// Reserved storage names and anything shaped like a metadata record
// are excluded, the same filter the index applies when parsing.
func indexable(name string) bool {
	if name == "" || name == indexName || name == lengthName {
		return false
	}
	if strings.HasSuffix(name, typeSuffix) || strings.HasSuffix(name, expirySuffix) {
		return false
	}
	return true
}
