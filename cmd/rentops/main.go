package main

import (
	"fmt"
	"os"

	"github.com/mchen-dev/rentops/internal/auth"
	"github.com/mchen-dev/rentops/internal/config"
	"github.com/mchen-dev/rentops/internal/db"
	"github.com/mchen-dev/rentops/internal/excel"
	httphandler "github.com/mchen-dev/rentops/internal/http"
	"github.com/mchen-dev/rentops/internal/http/middleware"
	"github.com/mchen-dev/rentops/internal/logger"
	"github.com/mchen-dev/rentops/internal/pdf"
	"github.com/mchen-dev/rentops/internal/repository"
	"github.com/mchen-dev/rentops/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	propertyRepo := repository.NewPropertyRepository(database)
	tenantRepo := repository.NewTenantRepository(database)
	parkingRepo := repository.NewParkingRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	leaseRepo := repository.NewLeaseRepository(database)
	scheduleRepo := repository.NewScheduleRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)

	catalogService := service.NewCatalogService(propertyRepo, tenantRepo, parkingRepo, ticketRepo)
	leaseService := service.NewLeaseService(leaseRepo, propertyRepo, parkingRepo, tenantRepo, transactionRepo, cfg)
	scheduleService := service.NewScheduleService(scheduleRepo, leaseRepo)
	transactionService := service.NewTransactionService(transactionRepo, scheduleRepo, leaseRepo)
	dashboardService := service.NewDashboardService(leaseRepo, propertyRepo, transactionRepo, ticketRepo)
	reportService := service.NewReportService(
		leaseRepo, tenantRepo, propertyRepo, parkingRepo, scheduleRepo, transactionRepo,
		pdf.NewGenerator(), excel.NewGenerator(),
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		catalogService, leaseService, scheduleService,
		transactionService, dashboardService, reportService,
		cfg.Storage.UploadDir, log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting rentops service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
