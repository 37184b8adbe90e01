package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/dyqani/backend/internal/application/catalog"
	identityapp "github.com/dyqani/backend/internal/application/identity"
	orderingapp "github.com/dyqani/backend/internal/application/ordering"
	"github.com/dyqani/backend/internal/infrastructure/auth"
	"github.com/dyqani/backend/internal/infrastructure/config"
	"github.com/dyqani/backend/internal/infrastructure/event"
	"github.com/dyqani/backend/internal/infrastructure/logger"
	"github.com/dyqani/backend/internal/infrastructure/notification"
	"github.com/dyqani/backend/internal/infrastructure/persistence"
	"github.com/dyqani/backend/internal/infrastructure/storage"
	"github.com/dyqani/backend/internal/interfaces/http/handler"
	"github.com/dyqani/backend/internal/interfaces/http/middleware"
	"github.com/dyqani/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting dyqani backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogLevel := gormlogger.Warn
	if cfg.Log.Level == "debug" {
		gormLogLevel = gormlogger.Info
	}

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	// Redis backs the token blacklist. Without it revocation is
	// process-local, which is fine for a single instance.
	var blacklist auth.TokenBlacklist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		defer func() {
			_ = redisClient.Close()
		}()
		log.Info("redis connected")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	bannerRepo := persistence.NewGormBannerRepository(db.DB)
	stockRepo := persistence.NewGormLedgerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Object storage for logo and banner uploads
	var objectStorage catalogapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, log)
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			log.Fatal("failed to ensure storage bucket", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		log.Warn("no storage bucket configured, using stub object storage")
		objectStorage = storage.NewStubObjectStorage()
	}

	// Order notifications go out by email when SMTP is configured
	var notifier orderingapp.OrderNotifier
	if cfg.SMTP.Host != "" {
		notifier = notification.NewSMTPNotifier(cfg.SMTP, log)
	} else {
		log.Warn("no smtp host configured, order notifications are log-only")
		notifier = notification.NewLogNotifier(log)
	}

	// Event bus and subscriptions
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(orderingapp.NewOrderNotificationHandler(log, notifier, cfg.SMTP.AdminEmail))
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("failed to start event bus", zap.Error(err))
	}

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, campaignRepo, stockRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	campaignService := catalogapp.NewCampaignService(campaignRepo, productRepo)
	bannerService := catalogapp.NewBannerService(bannerRepo)
	uploadService := catalogapp.NewUploadService(objectStorage, cfg.Storage.KeyPrefix, cfg.Storage.PresignExpiration)
	priceResolver := orderingapp.NewPriceResolver(campaignRepo)
	placementService := orderingapp.NewPlacementService(txScope, productRepo, priceResolver)
	placementService.SetEventPublisher(eventBus)
	orderService := orderingapp.NewOrderService(orderRepo)
	orderService.SetEventPublisher(eventBus)

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	handlers := router.Handlers{
		System:   handler.NewSystemHandler(db, version),
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Category: handler.NewCategoryHandler(categoryService),
		Campaign: handler.NewCampaignHandler(campaignService),
		Banner:   handler.NewBannerHandler(bannerService),
		Checkout: handler.NewCheckoutHandler(placementService),
		Order:    handler.NewOrderHandler(orderService),
		Upload:   handler.NewUploadHandler(uploadService),
	}

	jwtCfg := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	}

	router.New(engine, handlers, jwtCfg, cfg.HTTP).Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.App.Port),
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(ctx); err != nil {
		log.Error("event bus stop failed", zap.Error(err))
	}

	log.Info("server exited")
}
