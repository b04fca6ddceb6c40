// Package supabase holds the Supabase Auth REST client used for admin sign-in.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"elextrio-site/internal/domain/identity"

	"github.com/gofiber/fiber/v3/client"
)

type AuthClient struct {
	base    string
	anonKey string
	http    *client.Client
	now     func() time.Time
}

// NewAuthClient takes the auth root, e.g. https://xyz.supabase.co/auth/v1.
func NewAuthClient(base, anonKey string, timeout time.Duration) *AuthClient {
	cc := client.New()
	if timeout > 0 {
		cc.SetTimeout(timeout)
	}
	return &AuthClient{
		base:    strings.TrimRight(base, "/"),
		anonKey: anonKey,
		http:    cc,
		now:     time.Now,
	}
}

type passwordGrant struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	ExpiresAt   int64  `json:"expires_at"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type authError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
}

func (e authError) message() string {
	for _, m := range []string{e.Msg, e.ErrorDescription, e.Error} {
		if m != "" {
			return m
		}
	}
	return ""
}

func (a *AuthClient) SignIn(ctx context.Context, email, password string) (identity.Identity, error) {
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("apikey", a.anonKey).
		SetParam("grant_type", "password").
		SetJSON(passwordGrant{Email: email, Password: password}).
		Post(a.base + "/token")
	if err != nil {
		return identity.Identity{}, err
	}
	defer resp.Close()

	if code := resp.StatusCode(); code == http.StatusBadRequest || code == http.StatusUnauthorized {
		var e authError
		_ = json.Unmarshal(resp.Body(), &e)
		if e.ErrorCode == "invalid_credentials" || e.Error == "invalid_grant" || e.message() == identity.ErrInvalidCredentials.Error() {
			return identity.Identity{}, identity.ErrInvalidCredentials
		}
		if msg := e.message(); msg != "" {
			return identity.Identity{}, errors.New(msg)
		}
		return identity.Identity{}, identity.ErrInvalidCredentials
	} else if code >= 300 {
		return identity.Identity{}, fmt.Errorf("auth responded %d", code)
	}

	var tok tokenResponse
	if err := resp.JSON(&tok); err != nil {
		return identity.Identity{}, fmt.Errorf("decode auth response: %w", err)
	}
	if tok.AccessToken == "" {
		return identity.Identity{}, errors.New("auth response missing access token")
	}

	exp := time.Unix(tok.ExpiresAt, 0)
	if tok.ExpiresAt == 0 {
		exp = a.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	}
	return identity.Identity{
		UserID:      tok.User.ID,
		Email:       tok.User.Email,
		AccessToken: tok.AccessToken,
		ExpiresAt:   exp.UTC(),
	}, nil
}

// SignOut revokes the session behind accessToken. An already revoked token is not an error.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("apikey", a.anonKey).
		SetHeader("Authorization", "Bearer "+accessToken).
		Post(a.base + "/logout")
	if err != nil {
		return err
	}
	defer resp.Close()

	switch code := resp.StatusCode(); {
	case code < 300, code == http.StatusUnauthorized, code == http.StatusForbidden, code == http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("auth logout responded %d", code)
	}
}
