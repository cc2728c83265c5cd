package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"secret-server/internal/config"
	"secret-server/internal/domain/services"
	"secret-server/internal/infrastructure/cache"
	"secret-server/internal/infrastructure/database"
	"secret-server/internal/interfaces/handlers"
	"secret-server/pkg/logger"
)

func Run(cfg config.Config) error {
	if err := logger.InitLogger(cfg.Env); err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	features := services.FeatureToggles{
		FoldersEnabled:       cfg.Features.FoldersEnabled,
		ResourceTypesEnabled: cfg.Features.ResourceTypesEnabled,
	}

	groupSvc := services.NewGroupService(db.DB())
	permissionSvc := services.NewPermissionService(db.DB(), groupSvc)
	folderFilter := services.NewFolderFilter(db.DB())
	finder := services.NewResourceFinder(db.DB(), permissionSvc, folderFilter, features)
	resourceSvc := services.NewResourceService(finder, features)
	metadataSvc := services.NewMetadataService(db.DB())

	sessionCache := services.NewRedisSessionCache(redisClient, cfg.Auth.TokenDuration)
	authSvc := services.NewAuthService(db.DB(), sessionCache, cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)

	authHandler := handlers.NewAuthHandler(authSvc)
	resourceHandler := handlers.NewResourceHandler(resourceSvc)
	metadataHandler := handlers.NewMetadataHandler(metadataSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("", handlers.AuthMiddleware(authSvc))
		{
			authed.DELETE("/auth/logout", authHandler.Logout)

			authed.GET("/resources", resourceHandler.Index)
			authed.GET("/resources/:id", resourceHandler.View)
			authed.GET("/groups/:id/resources", resourceHandler.SharedWithGroup)

			authed.GET("/metadata/rotate-key/resources", metadataHandler.RotateKeyIndex)
			authed.GET("/metadata/upgrade/resources", metadataHandler.UpgradeIndex)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
