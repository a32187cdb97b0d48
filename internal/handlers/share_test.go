package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
)

const testBaseURL = "http://grohub.test"

func newShareServer(t *testing.T) (*echo.Echo, *profile.Manager) {
	t.Helper()

	editors := profile.NewManager(testVerifyDelay)
	h := handlers.NewShareHandler(editors, testBaseURL)

	e := newTestEcho()
	e.GET("/dashboard/share", h.ModalGet)
	e.GET("/share/:target", h.DispatchGet)
	return e, editors
}

func TestShareModal_ShowsGeneratedText(t *testing.T) {
	e, _ := newShareServer(t)

	rec := get(e, "/dashboard/share")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Check out Alex Morgan&#39;s profile on Grohub!")
	assert.Contains(t, body, "/share/twitter")
	assert.Contains(t, body, "/share/facebook")
	assert.Contains(t, body, "/share/linkedin")
}

func TestShareDispatch_CopyReturnsText(t *testing.T) {
	e, _ := newShareServer(t)

	rec := get(e, "/share/copy")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Check out Alex Morgan's profile on Grohub!")
}

func TestShareDispatch_TwitterRedirects(t *testing.T) {
	e, _ := newShareServer(t)

	rec := get(e, "/share/twitter")
	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get(echo.HeaderLocation)
	assert.Contains(t, location, "twitter.com/intent/tweet")

	parsed, err := url.Parse(location)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), "Alex Morgan")
}

func TestShareDispatch_UnknownTargetIsNoOp(t *testing.T) {
	e, _ := newShareServer(t)

	rec := get(e, "/share/myspace")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestShareDispatch_ReflectsSavedProfileOnly(t *testing.T) {
	e, editors := newShareServer(t)

	editor := editors.Get(testSessionID)
	editor.Begin()
	editor.SetField(profile.FieldName, "Jordan Reed")
	// Draft is not saved, so the share text still uses the saved name.
	rec := get(e, "/share/copy")
	assert.Contains(t, rec.Body.String(), "Alex Morgan")
	assert.NotContains(t, rec.Body.String(), "Jordan Reed")
}
