package service

import (
	"claimdesk/models"
	"claimdesk/repository"
	"errors"
	"fmt"
	"log"
)

// UserService handles operator account administration
type UserService struct {
	userRepo *repository.UserRepository
	identity *IdentityService
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository, identity *IdentityService) *UserService {
	return &UserService{userRepo: userRepo, identity: identity}
}

// ListUsers returns all operator accounts (admin only)
func (s *UserService) ListUsers() ([]models.User, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsers(), nil
}

// SetActive enables or disables an operator account (admin only).
// An admin cannot deactivate their own account.
func (s *UserService) SetActive(id string, active bool) (*models.User, error) {
	current, err := s.requireAdmin()
	if err != nil {
		return nil, err
	}
	if !active && current.ID == id {
		return nil, invalid("isActive", "No puede desactivar su propia cuenta")
	}
	user, err := s.userRepo.SetActive(id, active)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	log.Printf("[admin] User %s active=%t", id, active)
	return user, nil
}

// requireAdmin returns the current operator when it holds an admin role
func (s *UserService) requireAdmin() (*models.User, error) {
	current := s.identity.CurrentUser()
	if current == nil {
		return nil, ErrNotAuthenticated
	}
	for _, role := range models.AdminRoles {
		if current.Role == role {
			return current, nil
		}
	}
	return nil, ErrForbidden
}
