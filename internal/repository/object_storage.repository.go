package repository

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStorageRepository is a thin wrapper around S3 for statements and
// generated reports. Objects never pass through the API for uploads; callers
// hand out presigned urls instead.
type ObjectStorageRepository interface {
	PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Put(ctx context.Context, key string, contentType string, body []byte) error
}

type objectStorageRepositoryHandler struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

// NewObjectStorageRepository loads the default AWS credential chain for the
// given region
func NewObjectStorageRepository(region, bucket string) (ObjectStorageRepository, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	return &objectStorageRepositoryHandler{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
	}, nil
}

func (h *objectStorageRepositoryHandler) PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error) {
	req, err := h.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}

	return req.URL, nil
}

func (h *objectStorageRepositoryHandler) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := h.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign download for %s: %w", key, err)
	}

	return req.URL, nil
}

func (h *objectStorageRepositoryHandler) Put(ctx context.Context, key string, contentType string, body []byte) error {
	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return nil
}
