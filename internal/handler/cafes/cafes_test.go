package cafes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/service"
	"cafe-directory/internal/view"
	"cafe-directory/internal/worker"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i any) error {
	return tv.v.Struct(i)
}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := view.New(&cache.FakeCache{})
	require.NoError(t, err)
	e.Renderer = r
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func flashCache(messages *[]string) *cache.FakeCache {
	return &cache.FakeCache{
		RPushFn: func(ctx context.Context, key string, values ...any) *redis.IntCmd {
			for _, v := range values {
				*messages = append(*messages, string(v.([]byte)))
			}
			return redis.NewIntResult(1, nil)
		},
		ExpireFn: func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(true, nil)
		},
	}
}

// fakePool records submitted tasks without running them.
type fakePool struct {
	tasks []worker.Task
}

func (p *fakePool) Submit(t worker.Task) { p.tasks = append(p.tasks, t) }
func (p *fakePool) Stop()                {}

type cafeDetailRow struct {
	id   int
	name string
	err  error
}

func (r cafeDetailRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.id
	*dest[1].(*string) = r.name
	*dest[2].(*string) = "A cozy spot"
	*dest[3].(*string) = "https://example.com"
	*dest[4].(*string) = "1 Main St"
	*dest[5].(*string) = "sf"
	*dest[6].(*string) = "/static/images/default-cafe.jpg"
	*dest[7].(*string) = "sf"
	*dest[8].(*string) = "San Francisco"
	*dest[9].(*string) = "CA"
	return nil
}

type insertIDRow struct {
	id int
}

func (r insertIDRow) Scan(dest ...any) error {
	*dest[0].(*int) = r.id
	return nil
}

type emptyRows struct{}

func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type cityRows struct {
	idx int
}

func (r *cityRows) Next() bool {
	r.idx++
	return r.idx <= 1
}

func (r *cityRows) Scan(dest ...any) error {
	*dest[0].(*string) = "sf"
	*dest[1].(*string) = "San Francisco"
	*dest[2].(*string) = "CA"
	return nil
}

func (r *cityRows) Close()                                       {}
func (r *cityRows) Err() error                                   { return nil }
func (r *cityRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *cityRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *cityRows) Values() ([]any, error)                       { return nil, nil }
func (r *cityRows) RawValues() [][]byte                          { return nil }
func (r *cityRows) Conn() *pgx.Conn                              { return nil }

func cafeForm() url.Values {
	return url.Values{
		"name":       {"Brew Lab"},
		"address":    {"1 Main St"},
		"city_code":  {"sf"},
		"speciality": {"Espresso"},
	}
}

func TestDetailHandler(t *testing.T) {
	t.Run("renders cafe with specialities", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				require.Equal(t, []any{3}, args)
				return cafeDetailRow{id: 3, name: "Brew Lab"}
			},
			QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "specialities")
				return emptyRows{}, nil
			},
		}

		e := newEcho(t)
		req := httptest.NewRequest(http.MethodGet, "/cafes/3", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, DetailHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Brew Lab")
	})

	t.Run("non-numeric id is a 404", func(t *testing.T) {
		e := newEcho(t)
		req := httptest.NewRequest(http.MethodGet, "/cafes/abc", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := DetailHandler(&database.FakeDB{})(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("missing cafe is a 404", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return cafeDetailRow{err: pgx.ErrNoRows}
			},
		}

		e := newEcho(t)
		req := httptest.NewRequest(http.MethodGet, "/cafes/99", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := DetailHandler(db)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestListHandler(t *testing.T) {
	db := &database.FakeDB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return emptyRows{}, nil
		},
	}

	e := newEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/cafes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ListHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAddHandler(t *testing.T) {
	t.Run("creates cafe and queues map fetch", func(t *testing.T) {
		tx := &database.FakeTx{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO cafes")
				return insertIDRow{id: 9}
			},
			ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "INSERT INTO specialities")
				return pgconn.NewCommandTag("INSERT 0 1"), nil
			},
			CommitFn:   func(ctx context.Context) error { return nil },
			RollbackFn: func(ctx context.Context) error { return nil },
		}
		db := &database.FakeDB{
			BeginFn: func(ctx context.Context) (pgx.Tx, error) { return tx, nil },
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				// The follow-up read feeding the map fetch.
				require.Equal(t, []any{9}, args)
				return cafeDetailRow{id: 9, name: "Brew Lab"}
			},
		}

		var messages []string
		pool := &fakePool{}
		c, rec := postCafeForm(t, "/cafes/add", cafeForm())

		h := AddHandler(db, flashCache(&messages), pool, service.NewMapFetcher("key", t.TempDir()), zap.NewNop())
		require.NoError(t, h(c))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/cafes/9", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, pool.tasks, 1)
		require.Len(t, messages, 1)
		require.Contains(t, messages[0], "Brew Lab added.")
	})

	t.Run("invalid form re-renders with cities", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "cities")
				return &cityRows{}, nil
			},
		}

		form := cafeForm()
		form.Del("name")
		c, rec := postCafeForm(t, "/cafes/add", form)

		h := AddHandler(db, &cache.FakeCache{}, &fakePool{}, service.NewMapFetcher("key", t.TempDir()), zap.NewNop())
		require.NoError(t, h(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "form-errors")
	})
}

func TestEditHandler(t *testing.T) {
	t.Run("updates and redirects", func(t *testing.T) {
		var statements []string
		tx := &database.FakeTx{
			ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				statements = append(statements, sql)
				if strings.Contains(sql, "UPDATE cafes") {
					return pgconn.NewCommandTag("UPDATE 1"), nil
				}
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
			CommitFn:   func(ctx context.Context) error { return nil },
			RollbackFn: func(ctx context.Context) error { return nil },
		}
		db := &database.FakeDB{
			BeginFn: func(ctx context.Context) (pgx.Tx, error) { return tx, nil },
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return cafeDetailRow{id: 4, name: "Brew Lab"}
			},
		}

		var messages []string
		pool := &fakePool{}
		c, rec := postCafeForm(t, "/cafes/4/edit", cafeForm())
		c.SetParamNames("id")
		c.SetParamValues("4")

		h := EditHandler(db, flashCache(&messages), pool, service.NewMapFetcher("key", t.TempDir()), zap.NewNop())
		require.NoError(t, h(c))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/cafes/4", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, statements, 3)
		require.Len(t, pool.tasks, 1)
		require.Len(t, messages, 1)
		require.Contains(t, messages[0], "edited.")
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("deletes and redirects to list", func(t *testing.T) {
		tx := &database.FakeTx{
			ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
			CommitFn:   func(ctx context.Context) error { return nil },
			RollbackFn: func(ctx context.Context) error { return nil },
		}
		db := &database.FakeDB{
			BeginFn: func(ctx context.Context) (pgx.Tx, error) { return tx, nil },
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return cafeDetailRow{id: 6, name: "Brew Lab"}
			},
		}

		var messages []string
		c, rec := postCafeForm(t, "/cafes/6/delete", url.Values{})
		c.Set(middleware.ContextVisitorKey, "visitor-1")
		c.SetParamNames("id")
		c.SetParamValues("6")

		require.NoError(t, DeleteHandler(db, flashCache(&messages))(c))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/cafes", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, messages, 1)
		require.Contains(t, messages[0], "Brew Lab deleted.")
	})

	t.Run("missing cafe is a 404", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return cafeDetailRow{err: pgx.ErrNoRows}
			},
		}

		c, _ := postCafeForm(t, "/cafes/99/delete", url.Values{})
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := DeleteHandler(db, &cache.FakeCache{})(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func postCafeForm(t *testing.T, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := newEcho(t).NewContext(req, rec)
	c.Set(middleware.ContextVisitorKey, "visitor-1")
	return c, rec
}
