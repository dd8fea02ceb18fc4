package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/admitly/portal-service/internal/dashboard"
	"github.com/admitly/portal-service/internal/domain"
	"github.com/admitly/portal-service/internal/events"
	"github.com/admitly/portal-service/internal/observability"
	"github.com/admitly/portal-service/internal/repository"
	"github.com/admitly/portal-service/pkg/errorutil"
)

// DashboardService gathers the resolver inputs for an identity.
type DashboardService struct {
	roles      RoleProvider
	profiles   repository.ProfileRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// DashboardDeps bundles DashboardService collaborators.
type DashboardDeps struct {
	Roles      RoleProvider
	Profiles   repository.ProfileRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// NewDashboardService builds the service.
func NewDashboardService(deps DashboardDeps) *DashboardService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		roles:      deps.Roles,
		profiles:   deps.Profiles,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// Resolve returns the view for identity. A nil identity yields the
// unauthenticated view. A failed role lookup becomes part of the view; only
// profile lookup failures other than "not found" are returned as errors.
func (s *DashboardService) Resolve(ctx context.Context, identity *domain.Identity) (dashboard.View, error) {
	in := dashboard.Input{Auth: dashboard.AuthState{Identity: identity}}

	if identity != nil {
		roles, err := s.roles.Roles(ctx, identity.ID)
		if err != nil {
			s.logger.Warn("role lookup failed", zap.String("user_id", identity.ID), zap.Error(err))
			in.Roles.Err = err
		} else {
			in.Roles.Roles = roles
			profile, err := s.profiles.GetByUserID(ctx, identity.ID)
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				s.logger.Warn("profile missing for identity", zap.String("user_id", identity.ID))
			case err != nil:
				return dashboard.View{}, errorutil.NewServiceUnavailable("profile lookup failed", err)
			default:
				in.Profile = profile
			}
		}
	}

	view := dashboard.Resolve(in)
	s.metrics.RecordResolution(string(view.Kind), string(view.Dashboard))

	if identity != nil && s.dispatcher != nil {
		payload := events.DashboardResolvedPayload{
			Kind:      string(view.Kind),
			Dashboard: string(view.Dashboard),
			Role:      string(view.Role),
			Roles:     in.Roles.Roles.Strings(),
		}
		if err := s.dispatcher.Publish(ctx, events.New(events.EventDashboardResolved, identity.ID, "", payload)); err != nil {
			s.logger.Warn("publish dashboard_resolved", zap.Error(err))
		}
	}
	return view, nil
}
