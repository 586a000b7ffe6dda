package domain

import "errors"

// Authentication and authorization failures. Each kind is a distinct sentinel
// so middleware and handlers can branch with errors.Is instead of inspecting
// library error types.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrMalformedToken    = errors.New("malformed token")
	ErrExpiredToken      = errors.New("token expired")
	ErrUnknownSubject    = errors.New("token subject no longer exists")
	ErrInsufficientRole  = errors.New("insufficient permissions")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password on sign-in; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// Resource lookups. Non-admins asking for an inactive record get the same
// not-found error as for a missing one, so existence is never revealed.
var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrExperienceNotFound    = errors.New("experience not found")
	ErrCertificationNotFound = errors.New("certification not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrSettingNotFound       = errors.New("setting not found")
)
