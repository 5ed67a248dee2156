package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// DestinationType is the discriminator carried by every destination record.
// The legacy data set only ever used "file".
const DestinationType = "file"

// DefaultTag is applied when a destination is created without tags.
const DefaultTag = "destinasi"

// Destination is a tourism destination managed through the back office.
type Destination struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        string    `json:"type"`
	Tags        []string  `json:"tags"`
	Users       int       `json:"users"` // monthly average visitor count
	Href        string    `json:"href"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// NewDestinationID derives an identifier from the creation time.
// The millisecond timestamp is embedded in the id on purpose: legacy
// records without a createdAt field recover their creation time from it
// (see CreationTime).
func NewDestinationID(now time.Time) string {
	return fmt.Sprintf("d%d", now.UnixMilli())
}

// NewImportedDestinationID derives an id from the creation time plus a
// fractional suffix built from the record's batch sequence and a random
// component, so imports landing in the same millisecond stay unique no
// matter how large the batch is.
func NewImportedDestinationID(now time.Time, seq int) string {
	return fmt.Sprintf("d%d.%d%04d", now.UnixMilli(), seq, rand.Intn(10000))
}

// DefaultUsers returns the visitor count assigned when the caller does not
// supply one: a random value in [100, 1099].
func DefaultUsers() int {
	return 100 + rand.Intn(1000)
}

// CreationTime reports when the destination came into existence.
// It prefers the explicit createdAt field; for legacy records it falls
// back to the timestamp embedded in the id. ok is false when neither is
// available, which callers treat as "existed before tracking started".
func (d Destination) CreationTime() (t time.Time, ok bool) {
	if !d.CreatedAt.IsZero() {
		return d.CreatedAt, true
	}
	return ParseIDTimestamp(d.ID)
}
