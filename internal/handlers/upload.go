package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/storage"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/partials"
)

// UploadHandler accepts profile image uploads from the edit modal.
type UploadHandler struct {
	editors  *profile.Manager
	images   *storage.ImageService
	notifier view.Notifier
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(editors *profile.Manager, images *storage.ImageService, notifier view.Notifier) *UploadHandler {
	return &UploadHandler{editors: editors, images: images, notifier: notifier}
}

// ImagePost stores the uploaded image and points the draft at it. Rejected
// uploads leave the current image in place and flash the reason.
func (h *UploadHandler) ImagePost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req UploadImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	editor := h.editors.Get(middleware.SessionIDFrom(c))
	editor.SetUploading(true)
	defer editor.SetUploading(false)

	src, err := req.File.Open()
	if err != nil {
		logger.Error("failed to open uploaded file", "error", err)
		return h.rejected(c, editor, "Upload failed. Please try again.")
	}
	defer src.Close()

	mimeType := req.File.Header.Get("Content-Type")
	url, err := h.images.SaveImage(ctx, req.File.Filename, mimeType, req.File.Size, src)
	switch {
	case errors.Is(err, domain.ErrNotAnImage):
		return h.rejected(c, editor, "Please choose an image file.")
	case errors.Is(err, domain.ErrImageTooLarge):
		return h.rejected(c, editor, "Images must be 5 MB or smaller.")
	case err != nil:
		logger.Error("failed to store image", "error", err)
		return h.rejected(c, editor, "Upload failed. Please try again.")
	}

	editor.SetField(profile.FieldImage, url)
	return c.Render(http.StatusOK, "", partials.EditImageSection(url, false))
}

func (h *UploadHandler) rejected(c echo.Context, editor *profile.Editor, message string) error {
	h.notifier.NotifyError(c, message)
	return c.Render(http.StatusOK, "", gomponents.Group([]gomponents.Node{
		partials.EditImageSection(editor.Draft().ProfileImage, false),
		partials.Flash(view.GetFlashData(c), true),
	}))
}
