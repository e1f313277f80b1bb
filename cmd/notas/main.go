package main

import (
	"fmt"
	"os"

	"github.com/blackteam/notas/internal/config"
	"github.com/blackteam/notas/internal/db"
	"github.com/blackteam/notas/internal/excel"
	httphandler "github.com/blackteam/notas/internal/http"
	"github.com/blackteam/notas/internal/logger"
	"github.com/blackteam/notas/internal/pdf"
	"github.com/blackteam/notas/internal/repository"
	"github.com/blackteam/notas/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	customerRepo := repository.NewCustomerRepository(database)
	notaRepo := repository.NewNotaRepository(database)

	customerService := service.NewCustomerService(customerRepo, log)
	notaService := service.NewNotaService(
		notaRepo,
		customerRepo,
		pdf.NewGenerator(cfg.Shop),
		pdf.NewExporter(cfg.Notas.OutputDir),
		pdf.NewViewer(),
		excel.NewGenerator(),
		service.NotaOptions{OpenAfterExport: cfg.Notas.OpenAfterExport},
		log,
	)

	handler := httphandler.NewHandler(customerService, notaService, log)
	router := httphandler.NewRouter(handler, cfg.HTTP.AllowedOrigins, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().
		Str("addr", addr).
		Str("notas_dir", cfg.Notas.OutputDir).
		Msg("starting notas service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
