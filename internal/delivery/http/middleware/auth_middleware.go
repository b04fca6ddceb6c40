package middleware

import (
	"strings"
	"time"

	"elextrio-site/internal/session"

	"github.com/gofiber/fiber/v3"
)

type Authenticator interface {
	Authenticate(token string) (session.Session, error)
}

// AuthMiddleware admits requests carrying a valid admin access token. Browsers
// cannot set headers on a WebSocket handshake, so access_token in the query is
// accepted as well.
type AuthMiddleware struct {
	auth Authenticator
	now  func() time.Time
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, now: time.Now}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			token = strings.TrimSpace(c.Query("access_token"))
		}
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		s, err := m.auth.Authenticate(token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid or expired session", nil, err)
		}
		if s.Expired(m.now()) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid or expired session", nil, nil)
		}

		session.Attach(c, s)
		return c.Next()
	}
}

func BearerToken(c fiber.Ctx) (string, bool) {
	return bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
