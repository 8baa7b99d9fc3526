package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type AwsS3 struct {
	api    s3API
	bucket string
	region string
}

type AwsS3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

func NewAwsS3(ctx context.Context, cfg AwsS3Config) (*AwsS3, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return newAwsS3WithAPI(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Region), nil
}

func newAwsS3WithAPI(api s3API, bucket, region string) *AwsS3 {
	return &AwsS3{api: api, bucket: bucket, region: region}
}

func (s *AwsS3) UploadImage(ctx context.Context, img *Image, folder string) (string, error) {
	key := objectKey(folder, img.ContentType)
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentType:   aws.String(img.ContentType),
		ContentLength: aws.Int64(int64(len(img.Data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return s.GetPublicLinkKey(key), nil
}

func (s *AwsS3) GetPublicLinkKey(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
