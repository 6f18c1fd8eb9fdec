package repositories

import (
	"context"
	"log"
	"sync"
	"time"

	"pos-client/services"

	"github.com/google/uuid"
)

type sessionEntry struct {
	workspace *services.Workspace
	lastSeen  time.Time
}

// SessionRepository maps browser session ids to their workspaces. Workspaces
// live only in process memory and are gone after a restart.
//
// Sessions idle for longer than ttl are evicted, and once maxSessions is
// reached the least recently used one makes room for a new one. A zero ttl or
// maxSessions disables that limit.
type SessionRepository struct {
	mu          sync.Mutex
	workspaces  map[string]*sessionEntry
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

func NewSessionRepository(ttl time.Duration, maxSessions int) *SessionRepository {
	return &SessionRepository{
		workspaces:  make(map[string]*sessionEntry),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

func (r *SessionRepository) expired(e *sessionEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}

// FindByID returns a live workspace and marks it as used.
func (r *SessionRepository) FindByID(id string) (*services.Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.workspaces[id]
	if !ok {
		return nil, false
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.workspaces, id)
		return nil, false
	}
	e.lastSeen = now
	return e.workspace, true
}

func (r *SessionRepository) Create() (string, *services.Workspace) {
	id := uuid.NewString()
	w := services.NewWorkspace()

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.makeRoom(now)
	r.workspaces[id] = &sessionEntry{workspace: w, lastSeen: now}

	return id, w
}

// makeRoom drops expired sessions, then the oldest ones until a new session
// fits under maxSessions. Callers hold mu.
func (r *SessionRepository) makeRoom(now time.Time) {
	if r.maxSessions <= 0 || len(r.workspaces) < r.maxSessions {
		return
	}

	for id, e := range r.workspaces {
		if r.expired(e, now) {
			delete(r.workspaces, id)
		}
	}

	for len(r.workspaces) >= r.maxSessions {
		var oldestID string
		var oldest time.Time
		for id, e := range r.workspaces {
			if oldestID == "" || e.lastSeen.Before(oldest) {
				oldestID, oldest = id, e.lastSeen
			}
		}
		delete(r.workspaces, oldestID)
	}
}

// FindOrCreate returns the workspace for id, creating a fresh one (under a
// new id) when id is unknown, expired or malformed.
func (r *SessionRepository) FindOrCreate(id string) (string, *services.Workspace, bool) {
	if _, err := uuid.Parse(id); err == nil {
		if w, ok := r.FindByID(id); ok {
			return id, w, false
		}
	}
	newID, w := r.Create()
	return newID, w, true
}

func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.workspaces, id)
	r.mu.Unlock()
}

// Sweep evicts every session idle for longer than the ttl and returns how
// many were removed.
func (r *SessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, e := range r.workspaces {
		if r.expired(e, now) {
			delete(r.workspaces, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *SessionRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("Evicted %d idle sessions", n)
			}
		}
	}
}
