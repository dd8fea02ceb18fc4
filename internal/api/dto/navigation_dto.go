package dto

import (
	"encoding/json"

	"github.com/admitly/portal-service/internal/navigation"
)

// VisitRequest reports a completed client-side location change.
type VisitRequest struct {
	Pathname string          `json:"pathname" validate:"required,startswith=/,max=2048"`
	Search   string          `json:"search" validate:"omitempty,startswith=?,max=2048"`
	Hash     string          `json:"hash" validate:"omitempty,startswith=#,max=512"`
	State    json.RawMessage `json:"state"`
	Title    string          `json:"title" validate:"max=200"`
}

// Location converts the request into a routing target.
func (r VisitRequest) Location() navigation.Location {
	return navigation.Location{
		Pathname: r.Pathname,
		Search:   r.Search,
		Hash:     r.Hash,
		State:    r.State,
	}
}

// NavigateRequest asks to move to a recorded entry.
type NavigateRequest struct {
	ID string `json:"id" validate:"required"`
}

// HistoryResponse is the session's history, oldest first.
type HistoryResponse struct {
	Entries []navigation.Entry `json:"entries"`
	Current *navigation.Entry  `json:"current"`
}

// NewHistoryResponse wraps entries; the last entry is the current one.
func NewHistoryResponse(entries []navigation.Entry) HistoryResponse {
	resp := HistoryResponse{Entries: entries}
	if entries == nil {
		resp.Entries = []navigation.Entry{}
	}
	if n := len(entries); n > 0 {
		current := entries[n-1]
		resp.Current = &current
	}
	return resp
}

// VisitResponse returns the recorded entry with the resulting history.
type VisitResponse struct {
	Entry navigation.Entry `json:"entry"`
	HistoryResponse
}

// PendingNavigation is the routing instruction the client must carry out.
type PendingNavigation struct {
	To      string          `json:"to"`
	State   json.RawMessage `json:"state,omitempty"`
	Replace bool            `json:"replace"`
}

// NavigateResponse answers a navigate command.
type NavigateResponse struct {
	Navigate PendingNavigation `json:"navigate"`
	Entry    navigation.Entry  `json:"entry"`
}
