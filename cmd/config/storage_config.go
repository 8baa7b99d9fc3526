package config

import (
	"context"

	"gcs-food-backend/internal/utils"
	"gcs-food-backend/internal/utils/storage"
)

// NewImageStore returns nil when STORAGE_DRIVER is none; images then keep the
// URL they were submitted with.
func NewImageStore(ctx context.Context, cfg *utils.Config) (storage.ImageStore, error) {
	switch cfg.StorageDriver {
	case utils.StorageS3:
		s3, err := storage.NewAwsS3(ctx, storage.AwsS3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
		if err != nil {
			return nil, err
		}
		return s3, nil
	case utils.StorageMinio:
		minio, err := storage.NewMinio(ctx, storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return minio, nil
	default:
		return nil, nil
	}
}
