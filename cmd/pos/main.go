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

	"github.com/jhoicas/carniceria-pos/internal/application/auth"
	"github.com/jhoicas/carniceria-pos/internal/application/usecase"
	"github.com/jhoicas/carniceria-pos/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/carniceria-pos/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/carniceria-pos/internal/interfaces/http"
	"github.com/jhoicas/carniceria-pos/pkg/config"
	"github.com/jhoicas/carniceria-pos/pkg/logger"
	"github.com/jhoicas/carniceria-pos/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando terminal POS")

	sess := session.NewStore()
	be := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, sess)

	ticketGen := infrapdf.NewMarotoTicketGenerator()

	authUC := auth.NewAuthUseCase(be, sess)
	catalogUC := usecase.NewCatalogUseCase(be)
	saleUC := usecase.NewSaleUseCase(be, be, ticketGen, cfg.Ticket.StoreName, cfg.Ticket.Dir, log)
	reportUC := usecase.NewReportUseCase(be)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Carnicería POS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		SaleUC:    saleUC,
		ReportUC:  reportUC,
		Session:   sess,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("terminal detenido")
}
