// Package uuid issues the time-ordered identifiers used as primary keys and
// session ids.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// canonicalLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalLength = 36

// New returns a UUIDv7 in canonical form. Ids sort in creation order.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s is a UUID in canonical form. The braced, URN
// and unhyphenated spellings accepted by the parser never appear in URLs
// built by this service and are rejected.
func IsValid(s string) bool {
	if len(s) != canonicalLength {
		return false
	}
	_, err := googleuuid.Parse(s)
	return err == nil
}
