package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-cliente/internal/application/adjustment"
	"github.com/jhoicas/Inventario-cliente/internal/application/catalog"
	"github.com/jhoicas/Inventario-cliente/internal/application/hydrate"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/report"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/snapshot"
	httpRouter "github.com/jhoicas/Inventario-cliente/internal/interfaces/http"
	"github.com/jhoicas/Inventario-cliente/internal/store"
	"github.com/jhoicas/Inventario-cliente/pkg/config"
	"github.com/jhoicas/Inventario-cliente/pkg/logger"
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
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando cliente de inventario")

	st := store.New()

	// Hidratación explícita y única desde el snapshot persistido. Hasta aquí
	// el store sirve sus defaults compilados.
	snapStore := snapshot.NewFileStore(cfg.Snapshot.Path, log)
	hydrator := hydrate.New(snapStore, st, log)
	if err := hydrator.Run(); err != nil {
		log.Warn().Err(err).Msg("hidratación fallida, arrancando con estado vacío")
	}

	apiClient := restapi.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)

	catalogUC := catalog.NewUseCase(apiClient, st, catalog.Config{
		PageLimit:  cfg.Upstream.ProductLimit,
		LoadAllMax: cfg.Upstream.LoadAllMaxPage,
	}, log)
	adjustmentUC := adjustment.NewUseCase(apiClient, catalogUC, st, adjustment.Config{
		PageLimit: cfg.Upstream.AdjustLimit,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  cfg.App.Name,
			"hydrated": hydrator.Hydrated(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:           st,
		CatalogUC:       catalogUC,
		AdjustmentUC:    adjustmentUC,
		PDF:             report.NewMarotoReportGenerator(),
		AppName:         cfg.App.Name,
		AdjustPageLimit: cfg.Upstream.AdjustLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Persistir el subconjunto durable del estado antes de salir.
	if err := snapStore.Save(snapshot.Snapshot{
		Products:    st.Products(),
		Adjustments: st.Adjustments(),
	}); err != nil {
		log.Error().Err(err).Msg("guardar snapshot")
	}

	log.Info().Msg("cliente detenido")
}
