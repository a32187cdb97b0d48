package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// MaxImageBytes is the upload size limit for profile images (5 MiB).
const MaxImageBytes int64 = 5 * 1024 * 1024

// imageDir is the path prefix inside the store for profile images.
const imageDir = "images"

// ImageService persists profile images behind the upload guard: only
// image/* content up to MaxImageBytes is accepted. The configured delay
// simulates the latency of an upload pipeline and carries no semantic
// meaning; tests set it to zero.
type ImageService struct {
	store Store
	delay time.Duration
}

// NewImageService creates an image service over a storage backend.
func NewImageService(store Store, delay time.Duration) *ImageService {
	return &ImageService{store: store, delay: delay}
}

// SaveImage validates and stores an uploaded image, returning the URL path
// it will be served under. mimeType and declaredSize come from the
// multipart header; the copy is capped regardless, so a lying header
// cannot smuggle an oversize body through.
func (s *ImageService) SaveImage(ctx context.Context, filename, mimeType string, declaredSize int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s", domain.ErrNotAnImage, mimeType)
	}
	if declaredSize > MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes", domain.ErrImageTooLarge, declaredSize)
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	storagePath := path.Join(imageDir, uuid.NewString()+ext)

	written, err := s.store.Save(ctx, storagePath, io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("saving image: %w", err)
	}
	if written > MaxImageBytes {
		_ = s.store.Delete(ctx, storagePath)
		return "", fmt.Errorf("%w: body larger than declared", domain.ErrImageTooLarge)
	}

	return "/files/" + storagePath, nil
}

// Open returns a stored image by its bare filename, as used by the serving
// handler. The name is stripped of any path components first.
func (s *ImageService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.store.Get(ctx, path.Join(imageDir, path.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	return rc, err
}
