package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitly/portal-service/internal/domain"
)

func TestRoleServiceCachesLookups(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[string]domain.RoleSet{"u1": {domain.RoleAgent}}}
	cache := newFakeRoleCache()
	svc := NewRoleService(RoleServiceDeps{Repo: repo, Cache: cache, CacheTTL: time.Minute})

	for i := 0; i < 3; i++ {
		roles, err := svc.Roles(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSet{domain.RoleAgent}, roles)
	}
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, time.Minute, cache.lastTTL)

	require.NoError(t, svc.Invalidate(context.Background(), "u1"))
	_, err := svc.Roles(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestRoleServiceIgnoresCacheFailures(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[string]domain.RoleSet{"u1": {domain.RoleStudent}}}
	cache := newFakeRoleCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	svc := NewRoleService(RoleServiceDeps{Repo: repo, Cache: cache, CacheTTL: time.Minute})

	roles, err := svc.Roles(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSet{domain.RoleStudent}, roles)
}

func TestRoleServiceWithoutCache(t *testing.T) {
	repo := &fakeRoleRepo{err: errors.New("rpc failed")}
	svc := NewRoleService(RoleServiceDeps{Repo: repo})

	_, err := svc.Roles(context.Background(), "u1")
	assert.EqualError(t, err, "rpc failed")
	assert.NoError(t, svc.Invalidate(context.Background(), "u1"))
}

func TestRoleServiceZeroTTLSkipsCache(t *testing.T) {
	repo := &fakeRoleRepo{roles: map[string]domain.RoleSet{"u1": {domain.RoleAdmin}}}
	cache := newFakeRoleCache()
	svc := NewRoleService(RoleServiceDeps{Repo: repo, Cache: cache})

	_, _ = svc.Roles(context.Background(), "u1")
	_, _ = svc.Roles(context.Background(), "u1")
	assert.Equal(t, 2, repo.calls)
	assert.Empty(t, cache.entries)
}
