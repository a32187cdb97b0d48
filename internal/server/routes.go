package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler(s.Cfg.IsDevelopment())
	dashboardHandler := handlers.NewDashboardHandler(s.editors, s.settings, s.Cfg.IsDevelopment())
	editorHandler := handlers.NewEditorHandler(s.editors, s.notifier, s.bus)
	uploadHandler := handlers.NewUploadHandler(s.editors, s.images, s.notifier)
	settingsHandler := handlers.NewSettingsHandler(s.settings, s.bus)
	shareHandler := handlers.NewShareHandler(s.editors, s.Cfg.BaseURL)
	fileHandler := handlers.NewFileHandler(s.images)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", homeHandler.HomeGet)

	s.E.GET("/dashboard", dashboardHandler.DashboardGet)
	s.E.GET("/dashboard/tab", dashboardHandler.TabGet)

	s.E.GET("/dashboard/edit", editorHandler.ModalGet)
	s.E.POST("/dashboard/edit/field", editorHandler.FieldPost)
	s.E.GET("/dashboard/edit/verification", editorHandler.VerificationGet)
	s.E.POST("/dashboard/edit/skills/add", editorHandler.SkillAddPost)
	s.E.POST("/dashboard/edit/skills/remove", editorHandler.SkillRemovePost)
	s.E.POST("/dashboard/edit/save", editorHandler.SavePost)
	s.E.POST("/dashboard/edit/cancel", editorHandler.CancelPost)
	s.E.POST("/dashboard/edit/image", uploadHandler.ImagePost, rateLimiter)

	s.E.GET("/dashboard/settings", settingsHandler.ModalGet)
	s.E.POST("/dashboard/settings/privacy", settingsHandler.PrivacyPost)
	s.E.POST("/dashboard/settings/notifications", settingsHandler.NotificationsPost)
	s.E.POST("/dashboard/settings/appearance", settingsHandler.AppearancePost)
	s.E.POST("/dashboard/settings/account", settingsHandler.AccountPost)

	s.E.GET("/dashboard/share", shareHandler.ModalGet)
	s.E.GET("/share/:target", shareHandler.DispatchGet)

	s.E.GET("/files/images/:name", fileHandler.ImageGet)

	if s.reloadHandler != nil {
		s.E.GET("/dev/reload", s.reloadHandler.ServeWS)
	}

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
