package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/admitly/portal-service/internal/domain"
	"github.com/admitly/portal-service/internal/observability"
	"github.com/admitly/portal-service/internal/repository"
)

// RoleProvider returns the role set of an identity.
type RoleProvider interface {
	Roles(ctx context.Context, userID string) (domain.RoleSet, error)
}

// RoleService reads roles through a cache-aside layer. Cache failures are
// logged and never fail the lookup.
type RoleService struct {
	repo    repository.RoleRepository
	cache   repository.RoleCache
	ttl     time.Duration
	logger  *zap.Logger
	metrics *observability.Metrics
}

// RoleServiceDeps bundles RoleService collaborators. Cache may be nil.
type RoleServiceDeps struct {
	Repo     repository.RoleRepository
	Cache    repository.RoleCache
	CacheTTL time.Duration
	Logger   *zap.Logger
	Metrics  *observability.Metrics
}

// NewRoleService builds the service.
func NewRoleService(deps RoleServiceDeps) *RoleService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoleService{
		repo:    deps.Repo,
		cache:   deps.Cache,
		ttl:     deps.CacheTTL,
		logger:  logger,
		metrics: deps.Metrics,
	}
}

func (s *RoleService) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

// Roles returns the identity's role set.
func (s *RoleService) Roles(ctx context.Context, userID string) (domain.RoleSet, error) {
	if s.cacheEnabled() {
		roles, err := s.cache.Get(ctx, userID)
		switch {
		case err == nil:
			s.metrics.RecordRoleCache("hit")
			return roles, nil
		case errors.Is(err, repository.ErrCacheMiss):
			s.metrics.RecordRoleCache("miss")
		default:
			s.metrics.RecordRoleCache("error")
			s.logger.Warn("role cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	roles, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		if err := s.cache.Set(ctx, userID, roles, s.ttl); err != nil {
			s.logger.Warn("role cache write failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return roles, nil
}

// Invalidate drops the cached roles so the next lookup hits storage.
func (s *RoleService) Invalidate(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, userID)
}
