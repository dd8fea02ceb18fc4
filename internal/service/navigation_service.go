package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/admitly/portal-service/internal/events"
	"github.com/admitly/portal-service/internal/navigation"
	"github.com/admitly/portal-service/internal/observability"
)

// ErrUnknownEntry is returned when navigating to an id not in the history.
var ErrUnknownEntry = errors.New("history entry not found")

// NavigationService records visits and serves history commands per session.
type NavigationService struct {
	registry   *navigation.Registry
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NavigationDeps bundles NavigationService collaborators.
type NavigationDeps struct {
	Registry   *navigation.Registry
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// NewNavigationService builds the service.
func NewNavigationService(deps NavigationDeps) *NavigationService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NavigationService{
		registry:   deps.Registry,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// Visit records a completed location change for the session and returns
// the recorded entry with the resulting history.
func (s *NavigationService) Visit(ctx context.Context, key navigation.SessionKey, loc navigation.Location, title string) (navigation.Entry, []navigation.Entry) {
	tracker, entry, created := s.registry.Open(key, loc, title)
	history := tracker.Entries()
	s.metrics.ObserveHistoryLength(len(history))

	s.publish(ctx, key, events.EventLocationChanged, events.LocationChangedPayload{
		EntryID:       entry.ID,
		Label:         entry.Label,
		HistoryLength: len(history),
		NewSession:    created,
	})
	return entry, history
}

// Tracker returns the session's tracker, if the session has reported a visit.
func (s *NavigationService) Tracker(key navigation.SessionKey) (*navigation.Tracker, bool) {
	return s.registry.Get(key)
}

// Navigate asks nav to move to the entry with id.
func (s *NavigationService) Navigate(ctx context.Context, key navigation.SessionKey, tracker *navigation.Tracker, id string, nav navigation.Navigator) (navigation.Entry, error) {
	entry, ok := tracker.Lookup(id)
	if !ok {
		return navigation.Entry{}, ErrUnknownEntry
	}
	if err := tracker.NavigateTo(nav, entry); err != nil {
		return navigation.Entry{}, err
	}
	s.publish(ctx, key, events.EventNavigationRequested, events.NavigationRequestedPayload{Target: entry.ID})
	return entry, nil
}

// Clear collapses the history to its current entry.
func (s *NavigationService) Clear(ctx context.Context, key navigation.SessionKey, tracker *navigation.Tracker) []navigation.Entry {
	before := tracker.Len()
	tracker.ClearHistory()
	history := tracker.Entries()

	payload := events.HistoryClearedPayload{Removed: before - len(history)}
	if current, ok := tracker.Current(); ok {
		payload.Kept = current.ID
	}
	s.publish(ctx, key, events.EventHistoryCleared, payload)
	return history
}

// EndSession drops the session's history.
func (s *NavigationService) EndSession(key navigation.SessionKey) bool {
	return s.registry.Close(key)
}

func (s *NavigationService) publish(ctx context.Context, key navigation.SessionKey, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, events.New(eventType, key.IdentityID, key.SessionID, payload)); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(eventType)), zap.Error(err))
	}
}
