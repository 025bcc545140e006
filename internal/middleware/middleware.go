package middleware

import (
	"net/http"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextUserKey holds the *service.SessionClaims of the logged-in user.
	ContextUserKey = "user"
	// ContextVisitorKey holds the visitor id string used for flash messages.
	ContextVisitorKey = "visitor"

	// VisitorCookieName identifies a browser across requests, logged in or not.
	VisitorCookieName = "visitor_id"

	notLoggedInMsg   = "You are not logged in."
	notAuthorizedMsg = "Not authorized"
)

// EnsureVisitorID guarantees every request carries a visitor id cookie and
// exposes the id on the context.
func EnsureVisitorID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := ""
		if ck, err := c.Cookie(VisitorCookieName); err == nil && ck.Value != "" {
			id = ck.Value
		} else {
			id = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     VisitorCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
		}
		c.Set(ContextVisitorKey, id)
		return next(c)
	}
}

// VisitorID returns the request's visitor id, or "".
func VisitorID(c echo.Context) string {
	if id, ok := c.Get(ContextVisitorKey).(string); ok {
		return id
	}
	return ""
}

// LoadSession reads the session cookie once per request and, when the token
// verifies, stores the claims on the context. It never rejects the request:
// an absent or invalid cookie just means an anonymous visitor.
func LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ck, err := c.Cookie(service.SessionCookieName)
		if err == nil && ck.Value != "" {
			if claims, err := service.VerifySessionToken(ck.Value); err == nil {
				c.Set(ContextUserKey, claims)
			}
		}
		return next(c)
	}
}

// CurrentUser returns the session claims set by LoadSession, or nil.
func CurrentUser(c echo.Context) *service.SessionClaims {
	claims, ok := c.Get(ContextUserKey).(*service.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// RequireLogin redirects anonymous visitors to the homepage with a flashed
// warning.
func RequireLogin(cc cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				flashAndForget(c, cc, "danger", notLoggedInMsg)
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}

// RequireAdmin redirects non-admins to the login page with a flashed warning.
func RequireAdmin(cc cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := CurrentUser(c)
			if claims == nil || !claims.IsAdmin {
				flashAndForget(c, cc, "danger", notAuthorizedMsg)
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// flashAndForget queues a flash without failing the request when redis is
// down; the redirect still matters more than the notice.
func flashAndForget(c echo.Context, cc cache.Cache, category, message string) {
	_ = service.AddFlash(c.Request().Context(), cc, VisitorID(c), category, message)
}

// Flash is flashAndForget for handlers.
func Flash(c echo.Context, cc cache.Cache, category, message string) {
	flashAndForget(c, cc, category, message)
}

// SetSessionCookie marks the user as logged in.
func SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     service.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie logs the user out.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     service.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
