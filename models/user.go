package models

import "time"

// Role gates what an operator can see and do
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleAnalyst    Role = "analyst"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSupervisor || r == RoleAnalyst
}

// Role sets used by the gated surfaces
var (
	ManagerRoles = []Role{RoleAdmin, RoleSupervisor}
	AdminRoles   = []Role{RoleAdmin}
)

// User is an authenticated operator. It is also the persisted session record.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAnalyst reports whether the user only sees claims assigned to them
func (u *User) IsAnalyst() bool {
	return u != nil && u.Role == RoleAnalyst
}

// Credential is a canonical user entry with its bcrypt password hash
type Credential struct {
	User
	PasswordHash string `json:"-"`
}
