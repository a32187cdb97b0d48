package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "grohub-session"
	sessionKey  = "id"

	// SessionIDContextKey is where the resolved session ID lives on the
	// echo context.
	SessionIDContextKey = "session_id"
)

// SessionID assigns every browser a stable random identifier, stored in the
// session cookie. All dashboard state (profile draft, settings) is keyed by
// it. There are no accounts; the cookie is the identity.
func SessionID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, _ := session.Get(sessionName, c)
		id, ok := sess.Values[sessionKey].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			sess.Values[sessionKey] = id
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				return err
			}
		}
		c.Set(SessionIDContextKey, id)
		return next(c)
	}
}

// SessionIDFrom returns the session ID placed on the context by SessionID.
func SessionIDFrom(c echo.Context) string {
	if id, ok := c.Get(SessionIDContextKey).(string); ok {
		return id
	}
	return ""
}
