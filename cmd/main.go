package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"review_project/internal/config"
	"review_project/internal/middleware"
	"review_project/internal/repository"
	"review_project/internal/repository/memory"
	"review_project/internal/service"
	grpcserver "review_project/internal/transport/grpc"
	httpserver "review_project/internal/transport/http"
	"review_project/internal/utils"
	"review_project/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stores struct {
	users     service.UserStore
	employees service.EmployeeStore
	reviews   service.ReviewStore
}

func openStores(cfg *config.Config) (stores, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		db := memory.NewDB()
		return stores{users: db.Users(), employees: db.Employees(), reviews: db.Reviews()}, func() {}, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return stores{}, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return stores{}, nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := repository.AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return stores{}, nil, err
	}

	return stores{
		users:     repository.NewUserRepository(db),
		employees: repository.NewEmployeeRepository(db),
		reviews:   repository.NewReviewRepository(db),
	}, func() { _ = sqlDB.Close() }, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.InitLogger(logger.Options{File: cfg.LogFile, Level: cfg.LogLevel}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Logger.Sync()

	if cfg.UsesDefaultSecret() {
		logger.Logger.Warn("JWT_SECRET is not set, tokens are signed with the default development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing := false
	if cfg.OTelEndpoint != "" {
		tp, err := middleware.InitTracer(ctx, cfg.OTelEndpoint, "review-service")
		if err != nil {
			logger.Logger.Fatal("Failed to init tracer", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(shutdownCtx)
		}()
		tracing = true
	}

	st, closeStores, err := openStores(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStores()

	if cfg.SeedDemoData {
		created, err := service.Seed(ctx, st.users, st.employees, service.DemoAccounts)
		if err != nil {
			logger.Logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
		logger.Logger.Info("Demo data seeded", zap.Int("created", created))
	}

	codec := utils.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(st.users, codec)
	workflow := service.NewReviewWorkflow(st.reviews, st.employees)
	employees := service.NewEmployeeService(st.employees, st.users)
	policy := service.NewAccessPolicy(workflow)

	deps := grpcserver.Dependencies{
		Auth:      auth,
		Workflow:  workflow,
		Employees: employees,
		Policy:    policy,
		Tracing:   tracing,
	}
	if cfg.RedisAddr != "" {
		cache := middleware.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err := cache.Ping(ctx); err != nil {
			logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer cache.Close()
		deps.Cache = cache
	}

	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Logger.Fatal("Failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}
	grpcSrv := grpcserver.NewServer(deps)
	go func() {
		logger.Logger.Info("gRPC server listening", zap.String("addr", grpcLis.Addr().String()))
		if err := grpcSrv.Serve(grpcLis); err != nil {
			logger.Logger.Error("gRPC server stopped", zap.Error(err))
			stop()
		}
	}()

	mux, err := httpserver.NewHandler(auth, workflow, employees, policy).Mux()
	if err != nil {
		logger.Logger.Fatal("Failed to register routes", zap.Error(err))
	}
	httpSrv := httpserver.NewServer(cfg.HTTPAddr, mux, cfg.AllowedOrigins())
	go func() {
		logger.Logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcSrv.GracefulStop()
}
