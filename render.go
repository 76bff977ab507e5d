package website

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/testingfly/website/suspense"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
//
// When streaming is enabled on the request context the component writes
// straight to the underlying ResponseWriter, so suspense boundaries reach
// the client early. Otherwise the page is rendered into a buffer first and
// a failed render leaves the response uncommitted for the error handler.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	ctx := c.Request().Context()
	if !suspense.Streaming(ctx) {
		var buf bytes.Buffer
		if err := cmp.Render(ctx, &buf); err != nil {
			return err
		}
		return c.HTMLBlob(code, buf.Bytes())
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(ctx, c.Response().Writer)
}
