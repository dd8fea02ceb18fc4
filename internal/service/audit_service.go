package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/admitly/portal-service/internal/events"
)

// AuditSink receives audit events for external delivery.
type AuditSink interface {
	Deliver(ctx context.Context, event events.Event) error
}

// AuditService writes an audit trail for portal events. Dashboard
// resolutions and history clears are also handed to the sink.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	sink       AuditSink
}

// NewAuditService creates the service. sink may be nil.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, sink AuditSink) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
		sink:       sink,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventDashboardResolved, a.handleDashboardResolved)
	a.dispatcher.Subscribe(events.EventLocationChanged, a.handleLocationChanged)
	a.dispatcher.Subscribe(events.EventNavigationRequested, a.handleNavigationRequested)
	a.dispatcher.Subscribe(events.EventHistoryCleared, a.handleHistoryCleared)
}

func (a *AuditService) handleDashboardResolved(ctx context.Context, event events.Event) error {
	a.logger.Info("DashboardResolved", a.fields(event)...)
	return a.deliver(ctx, event)
}

func (a *AuditService) handleLocationChanged(_ context.Context, event events.Event) error {
	a.logger.Debug("LocationChanged", a.fields(event)...)
	return nil
}

func (a *AuditService) handleNavigationRequested(_ context.Context, event events.Event) error {
	a.logger.Debug("NavigationRequested", a.fields(event)...)
	return nil
}

func (a *AuditService) handleHistoryCleared(ctx context.Context, event events.Event) error {
	a.logger.Info("HistoryCleared", a.fields(event)...)
	return a.deliver(ctx, event)
}

func (a *AuditService) fields(event events.Event) []zap.Field {
	return []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("subject_id", event.SubjectID),
		zap.String("session_id", event.SessionID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	}
}

func (a *AuditService) deliver(ctx context.Context, event events.Event) error {
	if a.sink == nil {
		return nil
	}
	if err := a.sink.Deliver(ctx, event); err != nil {
		a.logger.Warn("audit delivery failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return err
	}
	return nil
}
