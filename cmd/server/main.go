package main

import (
	"context"
	"log"
	"slices"

	"dealwish-backend/auth"
	"dealwish-backend/config"
	"dealwish-backend/handlers"
	"dealwish-backend/logging"
	"dealwish-backend/middleware"
	"dealwish-backend/migrations"
	"dealwish-backend/repository"
	"dealwish-backend/service"
	"dealwish-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	// Initialize database connection
	db, err := initPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize Postgres: %v", err)
	}
	defer db.Close()
	logger.Info(ctx, "postgres connection established")

	if cfg.MigrateOnStart {
		if err := migrations.UpFromPool(ctx, db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		logger.Info(ctx, "migrations applied")
	}

	// Initialize image storage
	images, err := storage.NewImageResolver(storage.StorageConfig{
		Type:         storage.StorageType(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		LocalBaseURL: cfg.StorageLocalBaseURL,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.S3Region,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
		PresignTTL:   cfg.S3PresignTTL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info(ctx, "image storage initialized", "type", cfg.StorageType)

	verifier := newVerifier(cfg)
	logger.Info(ctx, "token verification configured", "mode", cfg.AuthMode)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dealRepo := repository.NewDealRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	users := service.NewUserDirectory(userRepo, logger)
	catalog := service.NewDealCatalog(dealRepo, images, logger)
	wishlistService := service.NewWishlistService(
		service.WithWishlistRepository(wishlistRepo),
		service.WithDealRepository(dealRepo),
		service.WithEventRecorder(service.NewEventRecorder(analyticsRepo, logger)),
		service.WithImageResolver(images),
		service.WithLogger(logger),
	)

	// Initialize handlers
	authn := middleware.NewAuthenticator(verifier, users, logger)
	dealHandler := handlers.NewDealHandler(catalog, logger)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, logger)

	// Setup Gin router
	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	if local, ok := images.(*storage.LocalImageResolver); ok {
		r.Static(local.BaseURL(), local.BasePath())
	}

	handlers.RegisterRoutes(r, authn, dealHandler, wishlistHandler)

	logger.Info(ctx, "server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func newVerifier(cfg *config.Config) auth.Verifier {
	if cfg.AuthMode == config.AuthModeJWT {
		return auth.NewJWTVerifier([]byte(cfg.SupabaseJWTSecret), cfg.JWTAudience)
	}
	return auth.NewRemoteVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil, cfg.AuthTimeout)
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
