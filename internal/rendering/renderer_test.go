package rendering_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/rendering"
)

func TestRenderComponent_Gomponents(t *testing.T) {
	r := rendering.NewUniversalRenderer()
	node := html.Div(html.Class("card"), gomponents.Text("hello"))

	out, err := r.RenderComponent(context.Background(), node)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div class="card">hello</div>`)
}

func TestRenderComponent_Templ(t *testing.T) {
	r := rendering.NewUniversalRenderer()
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<span>templ</span>")
		return err
	})

	out, err := r.RenderComponent(context.Background(), component)
	require.NoError(t, err)
	assert.Equal(t, "<span>templ</span>", string(out))
}

func TestRenderComponent_UnsupportedType(t *testing.T) {
	r := rendering.NewUniversalRenderer()
	_, err := r.RenderComponent(context.Background(), 42)
	assert.Error(t, err)
}

func TestRenderPage_SetsContentType(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	r := rendering.NewUniversalRenderer()
	err := r.RenderPage(c, http.StatusOK, html.P(gomponents.Text("page")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTML, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "<p>page</p>")
}
