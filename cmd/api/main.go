package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/sys360/internal/bootstrap"
	httpapi "github.com/jhoicas/sys360/internal/interfaces/http"
	"github.com/jhoicas/sys360/pkg/config"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/jhoicas/sys360/pkg/metrics"
)

const swaggerFile = "./docs/swagger.json"

// @title						Sys360 ERP API
// @version					1.0
// @description				PDV, estoque, caixa e frota sobre SQLite.
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}
	if cfg.JWT.Secret == "" {
		panic("config: JWT_SECRET es obligatorio")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Dir: cfg.Log.Dir})
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctr, err := bootstrap.New(ctx, cfg, metrics.Default(), log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar base de datos")
	}
	defer ctr.Close()

	if cfg.App.SeedDefaults {
		if err := ctr.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 * 1024 * 1024,
	})
	app.Use(recover.New())

	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Sys360 API Docs",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpapi.Router(app, ctr.RouterDeps())

	go func() {
		addr := cfg.HTTP.Addr()
		log.Info().Str("addr", addr).Msg("servidor HTTP iniciado")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor detenido")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("servidor apagado")
}
