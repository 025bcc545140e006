package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/service"
	"cafe-directory/internal/view"
	"cafe-directory/internal/worker"
)

func newRouter(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := view.New(&cache.FakeCache{})
	require.NoError(t, err)
	e.Renderer = r

	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)

	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp, service.NewMapFetcher("key", t.TempDir()), zap.NewNop())
	return e
}

func TestSetupRoutes(t *testing.T) {
	e := newRouter(t)

	want := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/signup"},
		{http.MethodPost, "/signup"},
		{http.MethodGet, "/login"},
		{http.MethodPost, "/login"},
		{http.MethodPost, "/logout"},
		{http.MethodGet, "/cafes"},
		{http.MethodGet, "/cafes/add"},
		{http.MethodPost, "/cafes/add"},
		{http.MethodGet, "/cafes/:id"},
		{http.MethodGet, "/cafes/:id/edit"},
		{http.MethodPost, "/cafes/:id/edit"},
		{http.MethodPost, "/cafes/:id/delete"},
		{http.MethodGet, "/search"},
		{http.MethodGet, "/profile"},
		{http.MethodGet, "/profile/edit"},
		{http.MethodPost, "/profile/edit"},
		{http.MethodGet, "/api/likes"},
		{http.MethodPost, "/api/like"},
		{http.MethodPost, "/api/unlike"},
	}

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, w := range want {
		require.True(t, registered[w.method+" "+w.path], "%s %s not registered", w.method, w.path)
	}
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	e := newRouter(t)

	cases := []struct {
		method   string
		target   string
		location string
	}{
		{http.MethodGet, "/cafes", "/"},
		{http.MethodGet, "/search", "/"},
		{http.MethodGet, "/profile", "/"},
		{http.MethodGet, "/cafes/add", "/login"},
		{http.MethodPost, "/cafes/3/delete", "/login"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code, "%s %s", tc.method, tc.target)
		require.Equal(t, tc.location, rec.Header().Get(echo.HeaderLocation), "%s %s", tc.method, tc.target)
	}
}

func TestNewHTTPErrorHandler(t *testing.T) {
	newContext := func(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
		t.Helper()
		e := echo.New()
		r, err := view.New(&cache.FakeCache{})
		require.NoError(t, err)
		e.Renderer = r

		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("web 404 renders the not-found page", func(t *testing.T) {
		c, rec := newContext(t, "/missing")
		NewHTTPErrorHandler(zap.NewNop())(echo.NewHTTPError(http.StatusNotFound), c)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Page not found")
	})

	t.Run("web 500 renders the error page", func(t *testing.T) {
		c, rec := newContext(t, "/cafes")
		NewHTTPErrorHandler(zap.NewNop())(errors.New("boom"), c)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("api errors are JSON", func(t *testing.T) {
		c, rec := newContext(t, "/api/like")
		NewHTTPErrorHandler(zap.NewNop())(errors.New("boom"), c)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})
}
