package main

import (
	"context"
	"net/http"

	"consultanit/cmd/internal/config"
	"consultanit/cmd/internal/http/handler"
	"consultanit/cmd/internal/infrastructure/datosgov"
	"consultanit/cmd/internal/infrastructure/rues"
	"consultanit/cmd/internal/service"
	"consultanit/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars from SSM in production, .env otherwise
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	// Registries, queried in this order
	primary := datosgov.NewClient(cfg.DatosGovURL)
	secondary := rues.NewClient(cfg.RuesURL)

	nitService := service.NewNitService(primary, secondary)
	nitRoutes := handler.NewNitRoute(nitService, validate)

	e := echo.New()
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/api/nit", nitRoutes.GetCompany)
	e.GET("/api/nit/:nit", nitRoutes.GetCompany)
	e.POST("/api/nit", nitRoutes.GetCompany)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("nit", validators.IsNIT)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
