// Package picker chooses "today's" item out of an owner's collection.
//
// The choice is a pure function of the owner id, the calendar day and the
// ordered collection: SHA-256 over "<owner>:<YYYY-MM-DD>", the first four
// digest bytes read as a big-endian uint32, reduced modulo the collection size.
// Nothing about the pick is stored.
package picker

import (
	"crypto/sha256"
	"encoding/binary"

	"Nuremento/internal/clock"
)

const seedSeparator = ":"

// ComputeSeed builds the hash input for an owner on a day.
func ComputeSeed(ownerID string, day clock.Day) string {
	return ownerID + seedSeparator + day.String()
}

// SelectIndex maps a seed onto [0, n). n must be positive.
func SelectIndex(seed string, n int) int {
	if n <= 0 {
		panic("picker: SelectIndex called with empty collection")
	}
	sum := sha256.Sum256([]byte(seed))
	v := binary.BigEndian.Uint32(sum[:4])
	return int(v % uint32(n))
}

// Pick returns the item for ownerID on day. ok is false for an empty collection.
func Pick[T any](items []T, ownerID string, day clock.Day) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	idx := SelectIndex(ComputeSeed(ownerID, day), len(items))
	return items[idx], true
}
