package identity

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("Invalid login credentials")

// Identity is a signed-in admin as reported by the identity provider.
type Identity struct {
	UserID      string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}
