// Package repositories persists teamforge aggregates in BadgerDB.
//
// Values are JSON blobs; keys are prefix-scannable strings. Where a listing
// must be ordered (members, teams, announcements), the key embeds a 19-digit
// zero-padded insertion sequence so lexicographic iteration equals insertion
// order — the property the matching run relies on for deterministic output.
package repositories

import (
	"fmt"
	"time"
)

// seqNow returns the padded insertion sequence used inside ordered keys.
// 19 digits covers UnixNano; ties are broken by the entity id appended
// after the sequence in every ordered key.
func seqNow() string {
	return fmt.Sprintf("%019d", time.Now().UnixNano())
}
