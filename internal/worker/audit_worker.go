package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/admitly/portal-service/internal/config"
	"github.com/admitly/portal-service/internal/events"
	"github.com/admitly/portal-service/internal/service"
)

// ErrQueueFull is returned when the delivery backlog is at capacity.
var ErrQueueFull = errors.New("audit queue full")

// AuditWorker posts audit events to a webhook from a background goroutine,
// so request handlers never wait on the remote endpoint.
type AuditWorker struct {
	url     string
	timeout time.Duration
	queue   chan events.Event
	logger  *zap.Logger
	done    chan struct{}
}

// NewAuditWorker builds a worker for cfg.WebhookURL. Call Run to start it.
func NewAuditWorker(cfg config.AuditConfig, logger *zap.Logger) *AuditWorker {
	size := cfg.QueueSize
	if size <= 0 {
		size = 256
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditWorker{
		url:     cfg.WebhookURL,
		timeout: cfg.WebhookTimeout(),
		queue:   make(chan events.Event, size),
		logger:  logger.Named("audit_webhook"),
		done:    make(chan struct{}),
	}
}

// StartAuditWorker registers the audit handlers on dispatcher. When a
// webhook is configured it also starts the delivery worker, which stops
// when ctx is done. The returned worker is nil without a webhook.
func StartAuditWorker(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AuditConfig) *AuditWorker {
	if cfg.WebhookURL == "" {
		service.NewAuditService(dispatcher, logger, nil).RegisterHandlers()
		return nil
	}

	w := NewAuditWorker(cfg, logger)
	go w.Run(ctx)
	service.NewAuditService(dispatcher, logger, w).RegisterHandlers()
	return w
}

// Deliver queues event without blocking.
func (w *AuditWorker) Deliver(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run posts queued events until ctx is done. Events still queued at that
// point are dropped.
func (w *AuditWorker) Run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			if n := len(w.queue); n > 0 {
				w.logger.Warn("dropping undelivered audit events", zap.Int("count", n))
			}
			return
		case event := <-w.queue:
			if err := w.post(event); err != nil {
				w.logger.Warn("audit webhook failed",
					zap.String("event_id", event.ID),
					zap.String("event_type", string(event.Type)),
					zap.Error(err))
			}
		}
	}
}

// Done is closed once Run returns.
func (w *AuditWorker) Done() <-chan struct{} {
	return w.done
}

func (w *AuditWorker) post(event events.Event) error {
	agent := fiber.Post(w.url)
	agent.Timeout(w.timeout)
	agent.JSON(event)
	if err := agent.Parse(); err != nil {
		return err
	}

	status, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return fmt.Errorf("webhook responded with status %d", status)
	}
	return nil
}
