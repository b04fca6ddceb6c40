package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims mirrors the access tokens issued by Supabase Auth.
type Claims struct {
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"session_id,omitempty"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Issue(subject, email string) (token string, claims Claims, err error)
	Validate(tokenString string) (Claims, error)
}

// HMACService signs and checks HS256 tokens with the project's JWT secret.
type HMACService struct {
	secret    []byte
	audience  string
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret, audience string, expiresIn time.Duration) *HMACService {
	return &HMACService{
		secret:    []byte(secret),
		audience:  audience,
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) Issue(subject, email string) (string, Claims, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 {
		return "", Claims{}, ErrTokenInvalid
	}
	now := s.now().UTC()
	c := Claims{
		Email:     email,
		Role:      "authenticated",
		SessionID: uuid.NewString(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn)),
		},
	}
	if s.audience != "" {
		c.Audience = jwtlib.ClaimStrings{s.audience}
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return signed, c, nil
}

func (s *HMACService) Validate(tokenString string) (Claims, error) {
	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	}
	if s.audience != "" {
		opts = append(opts, jwtlib.WithAudience(s.audience))
	}

	var c Claims
	tok, err := jwtlib.NewParser(opts...).ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid || c.Subject == "" {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
