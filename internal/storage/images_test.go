package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/storage"
)

func newTestService() *storage.ImageService {
	return storage.NewImageService(storage.NewAferoStore(afero.NewMemMapFs()), 0)
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	svc := newTestService()
	_, err := svc.SaveImage(context.Background(), "doc.pdf", "application/pdf", 100, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrNotAnImage)
}

func TestSaveImage_RejectsOversizeHeader(t *testing.T) {
	svc := newTestService()
	_, err := svc.SaveImage(context.Background(), "big.jpg", "image/jpeg", 10*1024*1024, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
}

func TestSaveImage_RejectsOversizeBody(t *testing.T) {
	svc := newTestService()
	// Declared size lies; the actual body is over the cap.
	body := io.MultiReader(
		strings.NewReader(strings.Repeat("a", int(storage.MaxImageBytes))),
		strings.NewReader("overflow"),
	)
	_, err := svc.SaveImage(context.Background(), "big.jpg", "image/jpeg", 1024, body)
	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
}

func TestSaveImage_StoresAndServes(t *testing.T) {
	svc := newTestService()
	url, err := svc.SaveImage(context.Background(), "avatar.PNG", "image/png", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/files/images/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is normalized to lower case, got %q", url)

	name := strings.TrimPrefix(url, "/files/images/")
	rc, err := svc.Open(context.Background(), name)
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestOpen_StripsPathComponents(t *testing.T) {
	svc := newTestService()
	_, err := svc.Open(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
