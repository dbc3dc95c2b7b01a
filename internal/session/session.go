package session

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "session").Logger()

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

// Identity is the authenticated user's public identity, retained for the
// duration of a session.
type Identity struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	FullName  string  `json:"fullName"`
	Specialty *string `json:"specialty"`
}

type entry struct {
	identity  Identity
	expiresAt time.Time
}

// Store holds server-side session state keyed by opaque tokens. One Store
// is created at process start and injected into the handlers. Expired
// entries are evicted lazily on access, not by a timer sweep.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]entry
	now      func() time.Time
}

// NewStore creates a session store whose sessions expire ttl after
// issuance.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Create binds the identity to a new session and returns the opaque token
// to deliver to the client.
func (s *Store) Create(identity Identity) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = entry{identity: identity, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	logger.Debug().Str("username", identity.Username).Msg("session created")
	return token
}

// Get resolves a token to its identity. Expired sessions are evicted and
// reported as absent.
func (s *Store) Get(token string) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[token]
	if !ok {
		return Identity{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, token)
		return Identity{}, false
	}
	return e.identity, true
}

// Destroy invalidates the session; subsequent requests with the token are
// treated as unauthenticated. Destroying an unknown token is a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
