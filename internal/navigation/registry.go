package navigation

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionKey identifies one application session of one identity.
type SessionKey struct {
	IdentityID string
	SessionID  string
}

func (k SessionKey) String() string {
	return k.IdentityID + ":" + k.SessionID
}

// Registry holds one Tracker per session. Idle sessions expire after the
// configured TTL and the least recently used session is evicted at capacity.
type Registry struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Tracker]
	opts     []Option
}

// RegistryConfig bounds the registry.
type RegistryConfig struct {
	MaxSessions int
	SessionTTL  time.Duration
	// OnEvict is called with the session key whenever a tracker is dropped.
	OnEvict func(key string)
	// TrackerOptions are applied to every new tracker.
	TrackerOptions []Option
}

// NewRegistry builds an empty registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	size := cfg.MaxSessions
	if size <= 0 {
		size = 10000
	}
	var onEvict expirable.EvictCallback[string, *Tracker]
	if cfg.OnEvict != nil {
		onEvict = func(key string, _ *Tracker) { cfg.OnEvict(key) }
	}
	return &Registry{
		sessions: expirable.NewLRU[string, *Tracker](size, onEvict, cfg.SessionTTL),
		opts:     cfg.TrackerOptions,
	}
}

// Open records a location change for the session. The first change seeds a
// new tracker; later ones go through OnLocationChange. The session's expiry
// is refreshed either way.
func (r *Registry) Open(key SessionKey, loc Location, title string) (*Tracker, Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key.String()
	if t, ok := r.sessions.Get(k); ok {
		entry := t.OnLocationChange(loc, title)
		r.sessions.Add(k, t)
		return t, entry, false
	}

	t := NewTracker(loc, title, r.opts...)
	r.sessions.Add(k, t)
	current, _ := t.Current()
	return t, current, true
}

// Get returns the session's tracker, if any.
func (r *Registry) Get(key SessionKey) (*Tracker, bool) {
	return r.sessions.Get(key.String())
}

// Close drops the session's tracker.
func (r *Registry) Close(key SessionKey) bool {
	return r.sessions.Remove(key.String())
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}
