package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/settings"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/storage"
)

func TestHome_RendersMarketingPage(t *testing.T) {
	e := newTestEcho()
	e.GET("/", handlers.NewHomeHandler(false).HomeGet)

	rec := get(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Grohub")
	assert.Contains(t, body, "/dashboard")
}

func TestDashboard_RendersProfileHeaderAndTabs(t *testing.T) {
	e := newTestEcho()
	h := handlers.NewDashboardHandler(profile.NewManager(testVerifyDelay), settings.NewService(), false)
	e.GET("/dashboard", h.DashboardGet)

	rec := get(e, "/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Alex Morgan")
	assert.Contains(t, body, `id="profile-header"`)
	assert.Contains(t, body, `id="tab-area"`)
}

func TestDashboardTab_UnknownTabFallsBackToOverview(t *testing.T) {
	e := newTestEcho()
	h := handlers.NewDashboardHandler(profile.NewManager(testVerifyDelay), settings.NewService(), false)
	e.GET("/dashboard/tab", h.TabGet)

	rec := get(e, "/dashboard/tab?tab=nonsense")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="tab-area"`)
}

func TestFileHandler_ServesStoredImage(t *testing.T) {
	images := storage.NewImageService(storage.NewAferoStore(afero.NewMemMapFs()), 0)
	url, err := images.SaveImage(t.Context(), "avatar.png", "image/png", 4, strings.NewReader("data"))
	require.NoError(t, err)

	e := newTestEcho()
	e.GET("/files/images/:name", handlers.NewFileHandler(images).ImageGet)

	rec := get(e, url)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestFileHandler_MissingImageIs404(t *testing.T) {
	images := storage.NewImageService(storage.NewAferoStore(afero.NewMemMapFs()), 0)

	e := newTestEcho()
	e.GET("/files/images/:name", handlers.NewFileHandler(images).ImageGet)

	rec := get(e, "/files/images/nope.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
