package service

import (
	"claimdesk/models"
	"claimdesk/repository"
	"claimdesk/utils"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists the serialized session record across restarts
type SessionStore interface {
	Save(key, payload string) error
	Load(key string) (string, bool, error)
	Delete(key string) error
}

// sessionRecord is the persisted form of the current-user slot
type sessionRecord struct {
	models.User
	SessionID string `json:"sessionId,omitempty"`
}

// IdentityService owns the single current-user slot.
// It resolves the actor for history entries and evaluates role membership.
type IdentityService struct {
	mu        sync.RWMutex
	users     *repository.UserRepository
	sessions  SessionStore // optional; nil keeps the session in memory only
	current   *models.User
	sessionID string
	secret    []byte
	tokenTTL  time.Duration
}

// NewIdentityService creates a new identity service
func NewIdentityService(users *repository.UserRepository, sessions SessionStore, secret []byte, tokenTTL time.Duration) *IdentityService {
	return &IdentityService{
		users:    users,
		sessions: sessions,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Login establishes the current user when the credentials match an active canonical user
func (s *IdentityService) Login(email, password string) bool {
	_, _, err := s.StartSession(email, password)
	return err == nil
}

// StartSession logs in and issues a bearer token bound to the new session.
// Any earlier session and its tokens are replaced. Fails closed: on error no slot is set.
func (s *IdentityService) StartSession(email, password string) (*models.User, string, error) {
	user, err := s.users.ValidateCredentials(email, password)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	token, err := utils.GenerateSessionJWT(user.ID, sessionID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(user, sessionID); err != nil {
		return nil, "", err
	}
	s.current = user
	s.sessionID = sessionID
	log.Printf("[session] User %s logged in (role=%s)", user.ID, user.Role)

	out := *user
	return &out, token, nil
}

// Logout clears the current user and the persisted record unconditionally
func (s *IdentityService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear("logout")
}

// CurrentUser returns a copy of the current user, or nil when logged out
func (s *IdentityService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// HasRole reports whether the current user's role is one of roles. False when logged out.
func (s *IdentityService) HasRole(roles ...models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return false
	}
	for _, r := range roles {
		if s.current.Role == r {
			return true
		}
	}
	return false
}

// Authenticate resolves a bearer token to the current user.
// Only tokens issued for the live session are accepted.
func (s *IdentityService) Authenticate(token string) (*models.User, error) {
	claims, err := utils.ParseSessionJWT(token, s.secret)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || claims.SessionID != s.sessionID || claims.UserID != s.current.ID {
		return nil, ErrNotAuthenticated
	}
	u := *s.current
	return &u, nil
}

// Restore rehydrates the slot from the persisted record at startup.
// Missing, malformed, stale or inactive records are discarded silently.
func (s *IdentityService) Restore() {
	if s.sessions == nil {
		return
	}
	payload, found, err := s.sessions.Load(repository.CurrentUserSessionKey)
	if err != nil {
		log.Printf("[session] Failed to read session record: %v", err)
		return
	}
	if !found {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rec sessionRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil || rec.ID == "" || !rec.IsActive {
		s.clear("discarded invalid session record")
		return
	}
	user, err := s.users.GetActiveUserByID(rec.ID)
	if err != nil {
		s.clear("discarded stale session record")
		return
	}
	s.current = user
	s.sessionID = rec.SessionID
	if s.sessionID == "" {
		s.sessionID = uuid.New().String()
	}
	log.Printf("[session] Restored session for user %s", user.ID)
}

// Revalidate re-checks the live slot against the canonical list and logs out
// an operator who was deactivated or removed. Returns whether a session remains.
func (s *IdentityService) Revalidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return false
	}
	user, err := s.users.GetActiveUserByID(s.current.ID)
	if err != nil || user.Role != s.current.Role {
		s.clear("session revoked")
		return false
	}
	return true
}

func (s *IdentityService) persist(user *models.User, sessionID string) error {
	if s.sessions == nil {
		return nil
	}
	payload, err := json.Marshal(sessionRecord{User: *user, SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.sessions.Save(repository.CurrentUserSessionKey, string(payload)); err != nil {
		return err
	}
	return nil
}

// clear must be called with mu held
func (s *IdentityService) clear(reason string) {
	if s.current != nil {
		log.Printf("[session] User %s signed out (%s)", s.current.ID, reason)
	}
	s.current = nil
	s.sessionID = ""
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Delete(repository.CurrentUserSessionKey); err != nil {
		log.Printf("[session] Failed to delete session record: %v", err)
	}
}
