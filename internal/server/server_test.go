package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/config"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	appmiddleware "github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/rendering"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/settings"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/storage"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
)

// newServerForTests assembles a Server without touching the environment,
// the filesystem or background goroutines.
func newServerForTests(t *testing.T) *Server {
	t.Helper()

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.Use(appmiddleware.SessionID)

	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	return &Server{
		E:        e,
		Cfg:      config.New(),
		bus:      bus,
		editors:  profile.NewManager(0),
		settings: settings.NewService(),
		images:   storage.NewImageService(storage.NewAferoStore(afero.NewMemMapFs()), 0),
		notifier: view.NewFlashNotifier(),
	}
}

func TestRegisterRoutes_ServesCoreEndpoints(t *testing.T) {
	s := newServerForTests(t)
	s.RegisterRoutes()

	for _, path := range []string{"/health", "/", "/dashboard"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Redirect slog's output to a buffer so the log can be inspected.
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, nil))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "a deliberate unhandled error occurred")
	assert.Contains(t, logOutput, "stack_trace=")
}

func TestHTTPErrorHandler_PassesThroughHTTPErrors(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)

	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
