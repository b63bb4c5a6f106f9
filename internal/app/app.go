package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/e-bazaar/config"
	"github.com/alimikegami/e-bazaar/internal/controller"
	"github.com/alimikegami/e-bazaar/internal/middleware"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/alimikegami/e-bazaar/internal/service"
	"github.com/alimikegami/e-bazaar/internal/upload"
	"github.com/alimikegami/e-bazaar/pkg/response"
	"github.com/alimikegami/e-bazaar/pkg/utils"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies are the collaborators New does not build from config itself.
// Tracer and Registry are optional.
type Dependencies struct {
	Store     upload.Store
	Publisher service.EventPublisher
	Mailer    service.OrderMailer
	Tracer    trace.Tracer
	Registry  *prometheus.Registry
}

// New wires the middleware chain and every route onto a fresh echo instance.
func New(config *config.Config, db *mongo.Database, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &utils.CustomValidator{}

	e.Use(middleware.Logger)
	e.Use(echomiddleware.Recover())
	if deps.Tracer != nil {
		e.Use(middleware.Tracing(deps.Tracer))
	}

	metricsConfig := echoprometheus.MiddlewareConfig{}
	if deps.Registry != nil {
		metricsConfig.Registerer = deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig))

	e.Use(echomiddleware.CORS())
	e.Use(middleware.Auth(config.JWTSecret, middleware.DefaultPublicPaths(config.APIURL)))

	e.Static(upload.PublicPath, config.UploadDir)

	sellerRepo := repository.CreateNewSellerRepository(db)
	categoryRepo := repository.CreateNewCategoryRepository(db)
	userRepo := repository.CreateNewUserRepository(db)
	orderRepo := repository.CreateNewOrderRepository(db)

	sellerSvc := service.CreateSellerService(sellerRepo, categoryRepo, userRepo, deps.Store, deps.Publisher)
	categorySvc := service.CreateCategoryService(categoryRepo)
	userSvc := service.CreateUserService(userRepo, *config)
	orderSvc := service.CreateOrderService(orderRepo, sellerRepo, userRepo, deps.Publisher, deps.Mailer)

	g := e.Group(config.APIURL)

	controller.CreateSellerController(g.Group("/sellers"), sellerSvc)
	controller.CreateSellerController(g.Group("/products"), sellerSvc)
	controller.CreateCategoryController(g.Group("/categories"), categorySvc)
	controller.CreateUserController(g.Group("/users"), userSvc)
	controller.CreateOrderController(g.Group("/orders"), orderSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	return e
}

type App struct {
	DB       *mongo.Database
	Config   *config.Config
	Server   *echo.Echo
	Registry *prometheus.Registry
	metrics  *echo.Echo
}

// Start serves the metrics endpoint in the background when METRICS_PORT is
// set and blocks serving the API.
func (app *App) Start() error {
	if app.Config.MetricsPort != "" {
		app.metrics = echo.New()
		app.metrics.HideBanner = true

		handlerConfig := echoprometheus.HandlerConfig{}
		if app.Registry != nil {
			handlerConfig.Gatherer = app.Registry
		}
		app.metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(handlerConfig))

		go func() {
			if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.metrics != nil {
		if err := app.metrics.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to stop metrics server")
		}
	}

	return app.Server.Shutdown(ctx)
}
