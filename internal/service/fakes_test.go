package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/admitly/portal-service/internal/domain"
	"github.com/admitly/portal-service/internal/events"
	"github.com/admitly/portal-service/internal/repository"
)

type fakeRoleRepo struct {
	roles map[string]domain.RoleSet
	err   error
	calls int
}

func (f *fakeRoleRepo) ListByUser(_ context.Context, userID string) (domain.RoleSet, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[userID], nil
}

type fakeRoleCache struct {
	mu      sync.Mutex
	entries map[string]domain.RoleSet
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newFakeRoleCache() *fakeRoleCache {
	return &fakeRoleCache{entries: map[string]domain.RoleSet{}}
}

func (f *fakeRoleCache) Get(_ context.Context, userID string) (domain.RoleSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	roles, ok := f.entries[userID]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return roles, nil
}

func (f *fakeRoleCache) Set(_ context.Context, userID string, roles domain.RoleSet, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[userID] = roles
	f.lastTTL = ttl
	return nil
}

func (f *fakeRoleCache) Invalidate(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, userID)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
	err      error
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

type recordingDispatcher struct {
	events.Dispatcher
	published []events.Event
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{Dispatcher: events.NewInMemoryDispatcher()}
}

func (r *recordingDispatcher) Publish(ctx context.Context, e events.Event) error {
	r.published = append(r.published, e)
	return r.Dispatcher.Publish(ctx, e)
}

func (r *recordingDispatcher) types() []events.EventType {
	out := make([]events.EventType, 0, len(r.published))
	for _, e := range r.published {
		out = append(out, e.Type)
	}
	return out
}
