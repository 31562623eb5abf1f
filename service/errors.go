package service

import "errors"

var (
	// ErrClaimNotFound is returned for unknown ids and for claims outside the operator's scope
	ErrClaimNotFound = errors.New("claim not found")
	// ErrForbidden is returned when the current role may not perform the operation
	ErrForbidden = errors.New("operation not permitted for current role")
	// ErrNotAuthenticated is returned when no valid session is established
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is the uniform login failure
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknownAgent is returned when assigning to a name outside the agent list
	ErrUnknownAgent = errors.New("unknown agent")
)
