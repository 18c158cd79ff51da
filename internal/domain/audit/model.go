package audit

import "time"

// Entry is an immutable record of a lifecycle event on an alert. Entries
// are only ever written once and cascade-deleted with their parent alert.
type Entry struct {
	ID           int64                  `json:"id"`
	AlertID      int64                  `json:"alert_id"`
	EventType    string                 `json:"event_type"`
	EventDetails map[string]interface{} `json:"event_details,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	Actor        string                 `json:"actor"`
}

// Event types written by the alerting service
const (
	EventGenerated = "generated"
	EventResolved  = "resolved"
)

// DefaultActor is recorded when no explicit actor is given.
const DefaultActor = "system"
