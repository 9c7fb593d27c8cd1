package app

import (
	"context"
	"fmt"

	"course-service/internal/blob"
	"course-service/internal/config"
	"course-service/internal/logger"
	"course-service/internal/redis"
)

type Infra struct {
	Redis *redis.Client
	Blobs blob.Store
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	logger.Info("redis ready", nil)

	blobs, err := setupBlobStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("blob store ready", map[string]any{"driver": cfg.StorageDriver})

	return &Infra{
		Redis: redisClient,
		Blobs: blobs,
	}, nil
}

func setupBlobStore(ctx context.Context, cfg config.Config) (blob.Store, error) {
	switch cfg.StorageDriver {
	case "s3":
		return blob.NewS3Store(blob.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		})
	case "mongo":
		return blob.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	case "local":
		return blob.NewLocalStore(cfg.LocalStorageDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
