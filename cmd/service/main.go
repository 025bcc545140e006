// @title        Cafe Directory API
// @version      1.0
// @description  JSON likes API of the cafe directory web app
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/router"
	"cafe-directory/internal/service"
	"cafe-directory/internal/view"
	"cafe-directory/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "cafe-directory/docs" // swag-generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newLogger       = zap.NewProduction
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}

	if os.Getenv("SESSION_SECRET") == "" {
		return fmt.Errorf("SESSION_SECRET not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("REDIS_ADDR not set")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	mapsDir := os.Getenv("MAPS_DIR")
	if mapsDir == "" {
		mapsDir = "static/maps"
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("invalid WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("logger init failed: %v", err)
	}
	defer logger.Sync()

	mapAPIKey := os.Getenv("MAPQUEST_API_KEY")
	if mapAPIKey == "" {
		logger.Warn("MAPQUEST_API_KEY not set, map fetches will fail")
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connect failed: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("redis connect failed: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	renderer, err := view.New(redis)
	if err != nil {
		return fmt.Errorf("template init failed: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer
	e.HTTPErrorHandler = router.NewHTTPErrorHandler(logger)
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.EnsureVisitorID)
	e.Use(middleware.LoadSession)
	e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:csrf",
		CookieHTTPOnly: true,
		Skipper: func(c echo.Context) bool {
			// The JSON likes API is session-gated, not form-posted.
			return strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
	}))

	maps := service.NewMapFetcher(mapAPIKey, mapsDir)
	router.Setup(e, db, redis, wp, maps, logger)

	e.Static("/static", "static")
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return startServer(e, ":8080")
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
