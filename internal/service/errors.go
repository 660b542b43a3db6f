package service

import (
	"fmt"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// Common service errors
var (
	// ErrInvalidCredentials is returned when login fails because the email
	// is unknown or the password does not match. Callers cannot tell which.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
)
