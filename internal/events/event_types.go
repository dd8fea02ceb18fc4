package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDashboardResolved   EventType = "dashboard_resolved"
	EventLocationChanged     EventType = "location_changed"
	EventNavigationRequested EventType = "navigation_requested"
	EventHistoryCleared      EventType = "history_cleared"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	SubjectID string    `json:"subject_id"`
	SessionID string    `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, subjectID, sessionID string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// DashboardResolvedPayload payload.
type DashboardResolvedPayload struct {
	Kind      string   `json:"kind"`
	Dashboard string   `json:"dashboard"`
	Role      string   `json:"role,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// LocationChangedPayload payload.
type LocationChangedPayload struct {
	EntryID       string `json:"entry_id"`
	Label         string `json:"label"`
	HistoryLength int    `json:"history_length"`
	NewSession    bool   `json:"new_session"`
}

// NavigationRequestedPayload payload.
type NavigationRequestedPayload struct {
	Target string `json:"target"`
}

// HistoryClearedPayload payload.
type HistoryClearedPayload struct {
	Removed int    `json:"removed"`
	Kept    string `json:"kept,omitempty"`
}
