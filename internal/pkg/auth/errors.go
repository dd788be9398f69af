package auth

import "errors"

// Error taxonomy for the auth and manager boundaries. Controllers convert
// these into JSON outcomes; nothing else crosses into the presentation
// layer. Credential-related failures collapse into ErrInvalidCredentials so
// responses can not be used to probe which emails exist.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("too many attempts, please try again later")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrNotAuthenticated   = errors.New("login required")
)
