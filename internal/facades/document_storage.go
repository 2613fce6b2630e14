// Package facades wraps external services behind small interfaces consumed
// by the service layer.
package facades

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/logger"
)

// presignExpiry is how long generated upload/download URLs stay valid.
const presignExpiry = 15 * time.Minute

// S3Config holds the object storage connection settings.
type S3Config struct {
	Region       string // S3 region
	Bucket       string // Bucket holding the documents
	Endpoint     string // Base endpoint, e.g. a MinIO address; empty for AWS
	AccessKey    string // Access key id
	SecretKey    string // Secret access key
	UsePathStyle bool   // Path-style addressing for MinIO-compatible stores
}

// DocumentStorageS3Facade issues presigned URLs for document upload and
// download against an S3-compatible object store.
type DocumentStorageS3Facade struct {
	presign *s3.PresignClient
	client  *s3.Client
	bucket  string
}

// NewDocumentStorageS3Facade builds the facade from connection settings.
func NewDocumentStorageS3Facade(ctx context.Context, cfg S3Config) (*DocumentStorageS3Facade, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &DocumentStorageS3Facade{
		presign: s3.NewPresignClient(client),
		client:  client,
		bucket:  cfg.Bucket,
	}, nil
}

// NewStorageKey returns a fresh object key partitioned by date.
func NewStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("documents/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// PresignUpload returns a presigned PUT URL for the given object key.
func (f *DocumentStorageS3Facade) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := f.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &f.bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		logger.Log.Errorw("failed to presign upload", "key", key, "error", err)
		return "", err
	}

	return req.URL, nil
}

// PresignDownload returns a presigned GET URL for the given object key.
func (f *DocumentStorageS3Facade) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := f.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &f.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		logger.Log.Errorw("failed to presign download", "key", key, "error", err)
		return "", err
	}

	return req.URL, nil
}

// DeleteObject removes the object behind the given key.
func (f *DocumentStorageS3Facade) DeleteObject(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &f.bucket,
		Key:    &key,
	})
	if err != nil {
		logger.Log.Errorw("failed to delete object", "key", key, "error", err)
	}
	return err
}
