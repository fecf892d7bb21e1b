package memory

import "sync"

// Store maps a session identifier to its user profile and per-turn state.
// Sessions are created lazily on first reference and live for the life of
// the process. Access is serialized per session id so unrelated sessions
// never contend on one lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	mu      sync.Mutex
	profile map[string]any
	state   map[string]any
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*session),
	}
}

// UserProfile returns a snapshot of the session's long-lived attributes.
func (s *Store) UserProfile(sessionID string) map[string]any {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return cloneMap(sess.profile)
}

// UpdateUserProfile merges patch into the session's profile; later keys
// overwrite earlier ones.
func (s *Store) UpdateUserProfile(sessionID string, patch map[string]any) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	mergeMap(sess.profile, patch)
}

// State returns a snapshot of the session's short-lived derived facts.
func (s *Store) State(sessionID string) map[string]any {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return cloneMap(sess.state)
}

// UpdateState merges patch into the session's state map. Writes accumulate
// across turns; there is no per-turn isolation.
func (s *Store) UpdateState(sessionID string, patch map[string]any) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	mergeMap(sess.state, patch)
}

func (s *Store) session(sessionID string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}
	sess = &session{
		profile: make(map[string]any),
		state:   make(map[string]any),
	}
	s.sessions[sessionID] = sess
	return sess
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func mergeMap(dst map[string]any, patch map[string]any) {
	for k, v := range patch {
		dst[k] = v
	}
}
