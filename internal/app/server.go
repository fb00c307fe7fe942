// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"transporte-service/internal/config"
	"transporte-service/internal/db"
	catalogHandler "transporte-service/internal/handlers/catalog"
	inspectionHandler "transporte-service/internal/handlers/inspection"
	vehicleHandler "transporte-service/internal/handlers/vehicle"
	"transporte-service/internal/repository/postgres"
	catalogUsecase "transporte-service/internal/service/catalogs"
	inspectionUsecase "transporte-service/internal/service/inspections"
	modificationUsecase "transporte-service/internal/service/modification"
	searchUsecase "transporte-service/internal/service/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL (three databases) -----
	vehiclePool, err := db.Connect(ctx, s.cfg.VehicleDBURL)
	if err != nil {
		return fmt.Errorf("failed to connect to vehicle database: %w", err)
	}
	concessionPool, err := db.Connect(ctx, s.cfg.ConcessionDBURL)
	if err != nil {
		return fmt.Errorf("failed to connect to concession database: %w", err)
	}
	usersPool, err := db.Connect(ctx, s.cfg.UsersDBURL)
	if err != nil {
		return fmt.Errorf("failed to connect to users database: %w", err)
	}

	if s.cfg.RunMigrations {
		if err := db.RunMigrations(ctx, s.cfg.VehicleDBURL); err != nil {
			return err
		}
		logger.Info("vehicle database migrations applied")
	}

	// ----- Catalog cache: Redis when available, in-process otherwise -----
	var cache catalogUsecase.Cache
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		PoolSize: 10,
	})
	if err != nil {
		logger.Warn("redis unavailable, using in-process catalog cache", zap.Error(err))
		cache = catalogUsecase.NewMemoryCache()
	} else {
		cache = catalogUsecase.NewRedisCache(redisClient)
	}

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(vehiclePool)
	catalogRepo := postgres.NewCatalogRepository(vehiclePool)
	categoryRepo := postgres.NewCategoryRepository(vehiclePool)
	vehicleRepo := postgres.NewVehicleRepository(vehiclePool)
	auditRepo := postgres.NewAuditRepository(vehiclePool)
	inspectionRepo := postgres.NewInspectionRepository(vehiclePool)
	insuranceRepo := postgres.NewInsuranceRepository(concessionPool)
	userRepo := postgres.NewUserRepository(usersPool)

	// ----- Services (Usecases) -----
	catalogService := catalogUsecase.NewService(catalogRepo, cache, s.cfg.CatalogCacheTTL, logger)
	modificationService := modificationUsecase.NewService(
		dbWrapper,
		catalogRepo,
		categoryRepo,
		vehicleRepo,
		auditRepo,
		insuranceRepo,
		userRepo,
		catalogService,
		s.cfg.ModifyTimeout,
		logger,
	)
	searchService := searchUsecase.NewService(vehicleRepo, logger)
	inspectionService := inspectionUsecase.NewService(inspectionRepo, vehicleRepo, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		VehicleHandler:    vehicleHandler.NewVehicleHandler(modificationService, searchService),
		CatalogHandler:    catalogHandler.NewCatalogHandler(catalogService),
		InspectionHandler: inspectionHandler.NewInspectionHandler(inspectionService),
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	s.http = &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.engine}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests before closing.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
