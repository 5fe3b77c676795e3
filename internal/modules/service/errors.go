package service

import "errors"

// Service layer errors for better error handling
var (
	ErrTeamMemberNotFound = errors.New("team member not found")

	// Admin gate errors. Wrong email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")

	ErrMissingField = errors.New("missing required field")
	// ErrInvalidField marks a merge body whose value types do not fit the document.
	ErrInvalidField = errors.New("invalid field value")
)
