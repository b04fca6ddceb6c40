package auth

import (
	"context"
	"errors"
	"strings"

	"elextrio-site/internal/domain/identity"
	"elextrio-site/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidInput = errors.New("invalid input")

type TokenIssuer interface {
	Issue(subject, email string) (string, jwt.Claims, error)
}

// LocalProvider checks the one configured admin account against a bcrypt hash
// and signs its own tokens. It stands in for Supabase Auth in development.
type LocalProvider struct {
	email  string
	hash   []byte
	issuer TokenIssuer
}

func NewLocalProvider(email, passwordHash string, issuer TokenIssuer) *LocalProvider {
	return &LocalProvider{
		email:  normalizeEmail(email),
		hash:   []byte(strings.TrimSpace(passwordHash)),
		issuer: issuer,
	}
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (identity.Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" || p.email == "" || len(p.hash) == 0 {
		return identity.Identity{}, ErrInvalidCredentials
	}
	if email != p.email {
		return identity.Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(password)); err != nil {
		return identity.Identity{}, ErrInvalidCredentials
	}

	subject := "local:" + email
	tok, claims, err := p.issuer.Issue(subject, email)
	if err != nil {
		return identity.Identity{}, err
	}
	id := identity.Identity{UserID: subject, Email: email, AccessToken: tok}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

// SignOut has nothing to revoke; issued tokens simply expire.
func (p *LocalProvider) SignOut(ctx context.Context, accessToken string) error {
	return nil
}

// HashPassword produces the ADMIN_PASSWORD_HASH value for a password.
func HashPassword(password string) (string, error) {
	if !isValidPassword(password) {
		return "", ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrInternal
	}
	return string(hash), nil
}

func isValidPassword(pw string) bool {
	pw = strings.TrimSpace(pw)
	if len(pw) < 8 {
		return false
	}
	return true
}
