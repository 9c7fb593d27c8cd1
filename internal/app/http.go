package app

import (
	"context"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"course-service/internal/auth"
	"course-service/internal/catalog"
	"course-service/internal/config"
	"course-service/internal/handler"
	"course-service/internal/logger"
	"course-service/internal/middleware"
	"course-service/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	verifier, err := setupVerifier(cfg)
	if err != nil {
		return nil, nil, err
	}

	sessionStore := session.NewRedisStore(infra.Redis.Client, cfg.SessionTTL)
	catalogStore := catalog.NewRedisStore(infra.Redis.Client)
	catalogSvc := catalog.NewService(catalogStore, infra.Blobs, cfg.MaxUploadBytes)

	h := handler.NewHandler(verifier, sessionStore, catalogSvc, infra.Blobs, cfg.SessionTTL)
	gate := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	router.LoadHTMLGlob(filepath.Join(cfg.TemplateDir, "*.html"))
	router.Static("/static", cfg.StaticDir)

	h.RegisterRoutes(router, gate)

	return router, func() error {
		return infra.Redis.Close()
	}, nil
}

// setupVerifier prefers an externally supplied hash; deriving it from a
// plaintext secret at startup is kept only as a fallback for older
// deployments.
func setupVerifier(cfg config.Config) (*auth.Verifier, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH not set, hashing ADMIN_PASSWORD at startup", nil)
		var err error
		hash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, err
		}
	}

	return auth.NewVerifier(cfg.AdminEmail, hash), nil
}
