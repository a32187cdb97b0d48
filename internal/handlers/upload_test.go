package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/storage"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
)

func newUploadServer(t *testing.T) (*echo.Echo, *profile.Manager) {
	t.Helper()

	editors := profile.NewManager(testVerifyDelay)
	images := storage.NewImageService(storage.NewAferoStore(afero.NewMemMapFs()), 0)
	h := handlers.NewUploadHandler(editors, images, view.NewFlashNotifier())

	e := newTestEcho()
	e.POST("/dashboard/edit/image", h.ImagePost)
	return e, editors
}

// multipartUpload builds a multipart body with an explicit part content
// type, which is what the MIME guard inspects.
func multipartUpload(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func postUpload(e *echo.Echo, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/dashboard/edit/image", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUpload_AcceptsImageAndUpdatesDraft(t *testing.T) {
	e, editors := newUploadServer(t)

	body, contentType := multipartUpload(t, "avatar.png", "image/png", "png-bytes")
	rec := postUpload(e, body, contentType)

	require.Equal(t, http.StatusOK, rec.Code)

	imageURL := editors.Get(testSessionID).Draft().ProfileImage
	assert.True(t, strings.HasPrefix(imageURL, "/files/images/"), "got %q", imageURL)
	assert.Contains(t, rec.Body.String(), imageURL)
	assert.False(t, editors.Get(testSessionID).Uploading(), "uploading flag is cleared")
}

func TestUpload_RejectsNonImage(t *testing.T) {
	e, editors := newUploadServer(t)

	body, contentType := multipartUpload(t, "notes.txt", "text/plain", "hello")
	rec := postUpload(e, body, contentType)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please choose an image file.")
	assert.Empty(t, editors.Get(testSessionID).Draft().ProfileImage)
	assert.False(t, editors.Get(testSessionID).Uploading())
}

func TestUpload_MissingFileRejected(t *testing.T) {
	e, _ := newUploadServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())

	rec := postUpload(e, body, writer.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
