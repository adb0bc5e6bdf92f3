package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"ai-tutoring-be/pkg/store"
)

// SessionRepository keeps tutoring sessions in process memory. Entries expire
// on a TTL so an always-on process does not grow without bound.
//
// Appends for the same session id serialize on a per-key mutex; distinct
// session ids never block each other.
type SessionRepository struct {
	cache *cache.Cache
	locks sync.Map // session id -> *sync.Mutex
}

func NewSessionRepository(ttl, sweepInterval time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	if sweepInterval <= 0 {
		sweepInterval = 10 * time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, sweepInterval),
	}
}

// GetOrCreate resolves an existing session or creates a fresh one. When no
// session id is supplied one is derived as "<user_id>_<unix_ts>".
func (r *SessionRepository) GetOrCreate(userID, sessionID string) *store.Session {
	if sessionID == "" {
		sessionID = fmt.Sprintf("%s_%d", userID, time.Now().Unix())
	}

	mu := r.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return snapshot(x.(*store.Session))
	}

	session := &store.Session{
		ID:        sessionID,
		UserID:    userID,
		History:   []store.ChatTurn{},
		CreatedAt: time.Now(),
	}
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
	return snapshot(session)
}

// Get returns a snapshot of the session, if present.
func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	mu := r.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return snapshot(x.(*store.Session)), true
	}
	return nil, false
}

// Append adds turns to the session history. No-op when the session expired
// between resolution and append; the next request recreates it.
func (r *SessionRepository) Append(sessionID string, turns ...store.ChatTurn) {
	mu := r.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	x, found := r.cache.Get(sessionID)
	if !found {
		return
	}
	session := x.(*store.Session)
	session.History = append(session.History, turns...)
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	mu := r.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) lockFor(sessionID string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// snapshot copies the session so callers never share the mutable history
// slice with concurrent appends.
func snapshot(s *store.Session) *store.Session {
	history := make([]store.ChatTurn, len(s.History))
	copy(history, s.History)
	return &store.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		History:   history,
		CreatedAt: s.CreatedAt,
	}
}
