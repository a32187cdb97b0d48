package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders any supported component type (gomponents or templ) to
// HTML. The input is interface{} so heterogeneous component trees can pass
// through one pipeline.
type Renderer interface {
	// RenderComponent renders a component to bytes, for htmx fragments
	// and websocket payloads.
	RenderComponent(ctx context.Context, component interface{}) ([]byte, error)

	// RenderPage writes a full-page response on Echo's context.
	RenderPage(c echo.Context, status int, component interface{}) error
}

// gomponentNode is the structural interface satisfied by gomponents.Node,
// which only requires an io.Writer.
type gomponentNode interface {
	Render(w io.Writer) error
}

// UniversalRenderer implements Renderer and Echo's echo.Renderer over both
// component kinds used in this codebase.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a UniversalRenderer.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

func (r *UniversalRenderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T: must be templ.Component or implement Render(io.Writer) error", component)
	}
}

// RenderComponent implements Renderer.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("rendering component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer for full HTTP responses.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTML)
	c.Response().WriteHeader(status)
	if err := r.render(c.Request().Context(), component, c.Response().Writer); err != nil {
		c.Logger().Error("failed to stream component to response writer:", err)
		return err
	}
	return nil
}

// Render implements echo.Renderer so handlers can call c.Render. The name
// parameter is unused; the component itself is passed as data.
func (r *UniversalRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTML)
	}
	return r.render(c.Request().Context(), data, w)
}
