package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopper/cache"
	"shopper/config"
	"shopper/controllers"
	"shopper/database"
	"shopper/logger"
	"shopper/repository"
	"shopper/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Initialize(cfg.AppEnv)
	defer logger.Log.Sync()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Log.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		db.Close(shutdownCtx)
	}()
	logger.Log.Info("connected to mongodb", zap.String("db", cfg.DBName))

	var productCache *cache.ProductCache
	if cfg.RedisAddr != "" {
		productCache, err = cache.NewProductCache(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Log.Fatal("redis connection failed", zap.Error(err))
		}
		defer productCache.Close()
		logger.Log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	productRepo := repository.NewProductRepository(db.Products)
	userRepo := repository.NewUserRepository(db.Users)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "auth-token"},
		MaxAge:       12 * time.Hour,
	}))

	routes.Register(r, routes.Deps{
		Products:  controllers.NewProductController(productRepo, productCache),
		Auth:      controllers.NewAuthController(userRepo, cfg.JWTSecret),
		Cart:      controllers.NewCartController(userRepo),
		Upload:    controllers.NewUploadController(cfg.UploadDir, cfg.BaseURL),
		JWTSecret: cfg.JWTSecret,
		UploadDir: cfg.UploadDir,
	})

	logger.Log.Info("server running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
