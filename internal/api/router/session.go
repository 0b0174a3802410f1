package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "brainfeed_session"
	sessionMaxAge = 365 * 24 * time.Hour
)

// sessionID returns the visitor's session id, issuing a new cookie when the
// request carries none or a malformed one.
func sessionID(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
