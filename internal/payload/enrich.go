package payload

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Metadata is the processing enrichment stamped onto an accepted order before
// it is handed to persistence. It is attached to the persistence record only;
// the inbound payload is never modified.
type Metadata struct {
	ProcessingID string
	ProcessedAt  time.Time
}

// NewMetadata generates a fresh processing id and a UTC processing timestamp.
func NewMetadata() Metadata {
	id := uuid.New()
	return Metadata{
		ProcessingID: hex.EncodeToString(id[:]),
		ProcessedAt:  time.Now().UTC(),
	}
}
