package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/config"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/livereload"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/logging"
	appmiddleware "github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/rendering"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/settings"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/storage"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
	"github.com/grohubglobal/Dynamic-web-sub000/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	bus      *pubsub.WatermillBridge
	editors  *profile.Manager
	settings *settings.Service
	images   *storage.ImageService
	notifier view.Notifier

	// Development-only live reload plumbing; nil in production.
	reloadHub     *livereload.Hub
	reloadHandler *livereload.Handler
	watcher       *livereload.Watcher

	// cancel stops the background goroutines started by New.
	cancel context.CancelFunc
}

// New creates a new Server instance.
func New() *Server {
	logging.New()
	// config.New reads a .env file first if one exists.
	cfg := config.New()

	ctx, cancel := context.WithCancel(context.Background())

	bus := pubsub.NewWatermillBridge()
	editors := profile.NewManager(cfg.VerifyDelay)
	settingsSvc := settings.NewService()
	images := storage.NewImageService(storage.NewOSStore(cfg.UploadDir), cfg.UploadDelay)
	notifier := view.NewFlashNotifier()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(appmiddleware.Logger)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))
	e.Use(appmiddleware.SessionID)

	if cfg.IsDevelopment() {
		// Serve assets from disk so the watcher sees edits immediately.
		e.Static("/static", "web/static")
	} else {
		e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	}

	s := &Server{
		E:        e,
		Cfg:      cfg,
		bus:      bus,
		editors:  editors,
		settings: settingsSvc,
		images:   images,
		notifier: notifier,
		cancel:   cancel,
	}

	if cfg.IsDevelopment() {
		s.startLiveReload(ctx)
	}
	s.subscribeEventLog(ctx)

	return s
}

// startLiveReload wires the asset watcher to websocket clients.
func (s *Server) startLiveReload(ctx context.Context) {
	hub := livereload.NewHub()
	go hub.Run()

	handler, err := livereload.NewHandler(ctx, hub, s.bus)
	if err != nil {
		slog.Error("Failed to start live reload subscriber", "error", err)
		os.Exit(1)
	}

	watcher, err := livereload.NewWatcher(s.bus, "web/static", "web/src")
	if err != nil {
		slog.Error("Failed to start asset watcher", "error", err)
		os.Exit(1)
	}
	go watcher.Run(ctx)

	s.reloadHub = hub
	s.reloadHandler = handler
	s.watcher = watcher
}

// setupErrorHandling logs unhandled errors with a stack trace before
// delegating to Echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	defaultHandler := e.HTTPErrorHandler
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			err = echo.NewHTTPError(http.StatusInternalServerError)
		}
		defaultHandler(err, c)
	}
}
