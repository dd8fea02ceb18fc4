package dto

import (
	"github.com/admitly/portal-service/internal/dashboard"
)

// DashboardViewResponse is the localized resolver outcome.
type DashboardViewResponse struct {
	Kind       dashboard.Kind        `json:"kind"`
	Dashboard  dashboard.Dashboard   `json:"dashboard"`
	Role       string                `json:"role,omitempty"`
	Reason     string                `json:"reason,omitempty"`
	Message    string                `json:"message"`
	Language   string                `json:"language"`
	Retryable  bool                  `json:"retryable"`
	Links      []dashboard.Link      `json:"links"`
	Descriptor *dashboard.Descriptor `json:"descriptor,omitempty"`
}

// NewDashboardViewResponse builds the response for view with its rendered message.
func NewDashboardViewResponse(view dashboard.View, message, lang string) DashboardViewResponse {
	resp := DashboardViewResponse{
		Kind:      view.Kind,
		Dashboard: view.Dashboard,
		Role:      string(view.Role),
		Reason:    view.Reason,
		Message:   message,
		Language:  lang,
		Retryable: view.Retryable,
		Links:     view.Links,
	}
	if resp.Links == nil {
		resp.Links = []dashboard.Link{}
	}
	if desc, ok := view.Dashboard.Descriptor(); ok {
		resp.Descriptor = &desc
	}
	return resp
}
