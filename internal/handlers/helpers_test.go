package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	appmiddleware "github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/rendering"
)

const testSessionID = "test-session"

// testVerifyDelay keeps the simulated verification fast in handler tests.
const testVerifyDelay = 5 * time.Millisecond

// newTestEcho builds an echo instance with the renderer, validator and
// session plumbing the handlers expect, pinned to a fixed session ID.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appmiddleware.SessionIDContextKey, testSessionID)
			return next(c)
		}
	})
	return e
}

// postForm performs a form POST against the echo instance and returns the
// recorder.
func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
