package view

import (
	"embed"
	"html/template"
	"io"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/service"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html templates/*/*.html
var templatesFS embed.FS

// Renderer implements echo.Renderer over the embedded templates. Every
// render receives the drained flash queue, the CSRF token, and the current
// session claims alongside the handler's own data.
type Renderer struct {
	templates *template.Template
	cc        cache.Cache
}

func New(cc cache.Cache) (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html", "templates/*/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t, cc: cc}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	d, ok := data.(map[string]any)
	if !ok || d == nil {
		d = map[string]any{}
	}
	if _, present := d["Flash"]; !present {
		// Best effort: a broken flash store must not take the page down.
		if msgs, err := service.PopFlashes(c.Request().Context(), r.cc, middleware.VisitorID(c)); err == nil {
			d["Flash"] = msgs
		}
	}
	if _, present := d["CSRF"]; !present {
		if token, ok := c.Get("csrf").(string); ok {
			d["CSRF"] = token
		}
	}
	if _, present := d["User"]; !present {
		if claims := middleware.CurrentUser(c); claims != nil {
			d["User"] = claims
		}
	}
	return r.templates.ExecuteTemplate(w, name, d)
}
