package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/internal/config"
	"github.com/google/uuid"
)

// ObjectStore is the slice of the S3 client the upload service uses.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadService stores scanned document images in the configured bucket
// and hands back the object key for the document record.
type UploadService struct {
	store  ObjectStore
	bucket string
	prefix string
}

func NewUploadService(store ObjectStore, cfg config.StorageConfig) *UploadService {
	return &UploadService{store: store, bucket: cfg.Bucket, prefix: cfg.Prefix}
}

// NewObjectStore builds the real S3 client from the ambient AWS
// credential chain.
func NewObjectStore(ctx context.Context, cfg config.StorageConfig) (ObjectStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// Upload writes the object under a random per-upload directory so two
// files with the same name never collide, and returns the object key.
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := path.Join(s.prefix, uuid.New().String(), filename)

	_, err := s.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", apperr.Wrap(apperr.CodeInternal, fmt.Errorf("failed to upload %s: %w", filename, err))
	}
	return key, nil
}
