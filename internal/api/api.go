package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"

	"github.com/ougirez/elections/internal/api/controller"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/logger"
	"github.com/ougirez/elections/internal/pkg/store"
	"github.com/ougirez/elections/internal/service/results"
)

type APIService struct {
	router         *echo.Echo
	store          store.Store
	resultsService *results.Service
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New(), store: store}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.JSONSerializer = NewSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Pre(middleware.AddTrailingSlash())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:        uuid.NewString,
		RequestIDHandler: requestIDHandler,
	}))
	svc.router.Use(requestLogger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSAllowOriginsKey),
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	if viper.GetBool(constants.ViperMetricsEnabledKey) {
		svc.router.Use(MetricsMiddleware)
		svc.router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	}

	svc.resultsService = results.NewService(store)
	cntrl := controller.NewController(svc.resultsService, viper.GetString(constants.ViperAPIBaseURLKey))

	svc.router.GET("/health/", svc.Health)

	svc.router.GET("/", cntrl.GetEventTypes)
	events := svc.router.Group("/:event_type")
	events.GET("/", cntrl.GetYears)
	events.GET("/:year/", cntrl.GetOverview)
	events.GET("/:year/:area/", cntrl.GetResultsByArea)
	events.GET("/:year/:area/:area_id/", cntrl.GetResultsByArea)

	return svc, nil
}

// Health reports whether the store answers.
func (svc *APIService) Health(ctx echo.Context) error {
	if err := svc.store.Ping(ctx.Request().Context()); err != nil {
		logger.Errorf(ctx.Request().Context(), "store.Ping: %s", err.Error())
		return constants.NewCodedError(http.StatusServiceUnavailable, "store unavailable")
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
