// Package session carries the authenticated admin through a request.
package session

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

const localsKey = "admin_session"

type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccessToken string    `json:"-"`
}

// Key identifies the admin workspace. Sessions without an id fall back to the user.
func (s Session) Key() string {
	if s.ID != "" {
		return s.ID
	}
	return "user:" + s.UserID
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func Attach(c fiber.Ctx, s Session) {
	c.Locals(localsKey, s)
}

func From(c fiber.Ctx) (Session, bool) {
	s, ok := c.Locals(localsKey).(Session)
	return s, ok
}
