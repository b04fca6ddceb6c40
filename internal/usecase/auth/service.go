package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"elextrio-site/internal/domain/identity"
	"elextrio-site/internal/pkg/jwt"
	"elextrio-site/internal/session"
)

var (
	ErrInvalidCredentials = identity.ErrInvalidCredentials
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
)

// Provider is the identity backend: Supabase Auth in production, local
// credentials in development.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (identity.Identity, error)
	SignOut(ctx context.Context, accessToken string) error
}

type TokenValidator interface {
	Validate(token string) (jwt.Claims, error)
}

type WorkspaceDropper interface {
	Drop(key string)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Session     session.Session `json:"session"`
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (LoginResult, error)
	Logout(ctx context.Context, s session.Session) error
	Authenticate(token string) (session.Session, error)
}

type Service struct {
	provider   Provider
	tokens     TokenValidator
	workspaces WorkspaceDropper
	logger     *log.Logger
}

func NewService(provider Provider, tokens TokenValidator, workspaces WorkspaceDropper, logger *log.Logger) *Service {
	return &Service{provider: provider, tokens: tokens, workspaces: workspaces, logger: logger}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	if s.provider == nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	id, err := s.provider.SignIn(ctx, email, in.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.logf("[Auth] login rejected email=%s", email)
			return LoginResult{}, ErrInvalidCredentials
		}
		s.logf("[Auth] login provider error email=%s err=%v", email, err)
		return LoginResult{}, ErrInternal
	}

	sess, err := s.Authenticate(id.AccessToken)
	if err != nil {
		s.logf("[Auth] provider token rejected email=%s err=%v", email, err)
		return LoginResult{}, ErrInternal
	}

	s.logf("[Auth] login user_id=%s session=%s", sess.UserID, sess.Key())
	return LoginResult{AccessToken: id.AccessToken, ExpiresAt: sess.ExpiresAt, Session: sess}, nil
}

// Logout ends the provider session and discards the admin's list state.
// Provider failures are logged; the local state is dropped regardless.
func (s *Service) Logout(ctx context.Context, sess session.Session) error {
	if s.provider != nil && sess.AccessToken != "" {
		if err := s.provider.SignOut(ctx, sess.AccessToken); err != nil {
			s.logf("[Auth] provider sign-out failed session=%s err=%v", sess.Key(), err)
		}
	}
	if s.workspaces != nil {
		s.workspaces.Drop(sess.Key())
	}
	s.logf("[Auth] logout user_id=%s session=%s", sess.UserID, sess.Key())
	return nil
}

// Authenticate turns a bearer token into a session. Any valid token is an admin.
func (s *Service) Authenticate(token string) (session.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" || s.tokens == nil {
		return session.Session{}, ErrUnauthorized
	}
	c, err := s.tokens.Validate(token)
	if err != nil {
		return session.Session{}, ErrUnauthorized
	}
	sess := session.Session{
		ID:          c.SessionID,
		UserID:      c.Subject,
		Email:       c.Email,
		Role:        c.Role,
		AccessToken: token,
	}
	if c.ExpiresAt != nil {
		sess.ExpiresAt = c.ExpiresAt.Time
	}
	return sess, nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}
