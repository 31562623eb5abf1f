package repository

import (
	"claimdesk/models"
	"claimdesk/utils"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrUserNotFound is returned when no canonical user matches
var ErrUserNotFound = errors.New("user not found")

// SeedUser is a canonical operator with its plaintext password, hashed on load
type SeedUser struct {
	models.User
	Password string
}

// DemoUsers returns the canonical operator list shipped with the desk
func DemoUsers() []SeedUser {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []SeedUser{
		{User: models.User{ID: "1", Email: "admin@jetsmart.com", Name: "Administrador Sistema", Role: models.RoleAdmin, IsActive: true, CreatedAt: created}, Password: "password123"},
		{User: models.User{ID: "2", Email: "supervisor@jetsmart.com", Name: "Supervisor General", Role: models.RoleSupervisor, IsActive: true, CreatedAt: created}, Password: "password123"},
		{User: models.User{ID: "3", Email: "analista@jetsmart.com", Name: "Carlos Lopez", Role: models.RoleAnalyst, IsActive: true, CreatedAt: created}, Password: "password123"},
	}
}

// UserRepository holds the canonical credential list every login and session is checked against
type UserRepository struct {
	mu    sync.RWMutex
	users []*models.Credential
}

// NewUserRepository hashes the seed passwords with bcrypt (cost 0 = default) and builds the list
func NewUserRepository(seed []SeedUser, cost int) (*UserRepository, error) {
	repo := &UserRepository{}
	for _, s := range seed {
		if !s.Role.Valid() {
			return nil, fmt.Errorf("user %s has invalid role %q", s.ID, s.Role)
		}
		hash, err := utils.HashPassword(s.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for user %s: %w", s.ID, err)
		}
		repo.users = append(repo.users, &models.Credential{User: s.User, PasswordHash: hash})
	}
	return repo, nil
}

// ValidateCredentials returns the active user matching email and password.
// Unknown email, wrong password and inactive account all yield the same error.
func (r *UserRepository) ValidateCredentials(email, password string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.TrimSpace(email)
	for _, c := range r.users {
		if c.Email != email {
			continue
		}
		if !c.IsActive {
			return nil, ErrUserNotFound
		}
		if err := utils.CheckPassword(password, c.PasswordHash); err != nil {
			return nil, ErrUserNotFound
		}
		u := c.User
		return &u, nil
	}
	return nil, ErrUserNotFound
}

// GetActiveUserByID returns the canonical user when it exists and is active
func (r *UserRepository) GetActiveUserByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.users {
		if c.ID == id && c.IsActive {
			u := c.User
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// ListUsers returns every canonical user without credentials
func (r *UserRepository) ListUsers() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, c := range r.users {
		out = append(out, c.User)
	}
	return out
}

// SetActive enables or disables an operator account
func (r *UserRepository) SetActive(id string, active bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.users {
		if c.ID == id {
			c.IsActive = active
			u := c.User
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
