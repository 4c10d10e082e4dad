package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jarvis-assistant/assistant/pkg/config"
)

// MinIOClient archives meeting minutes as text objects
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket when missing. Objects stay private and
// are shared through presigned URLs only.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// MinutesObjectName is the object key of a meeting's minutes
func MinutesObjectName(owner, meetingID uuid.UUID) string {
	return fmt.Sprintf("minutes/%s/%s.txt", owner, meetingID)
}

// ArchiveMinutes uploads the minutes text of a meeting
func (m *MinIOClient) ArchiveMinutes(ctx context.Context, owner, meetingID uuid.UUID, minutes string) error {
	objectName := MinutesObjectName(owner, meetingID)
	_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader([]byte(minutes)), int64(len(minutes)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
		UserMetadata: map[string]string{
			"meeting-id": meetingID.String(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload minutes: %w", err)
	}
	return nil
}

// MinutesURL returns a presigned download URL for a meeting's minutes
func (m *MinIOClient) MinutesURL(ctx context.Context, owner, meetingID uuid.UUID, expiry time.Duration) (string, error) {
	objectName := MinutesObjectName(owner, meetingID)

	if _, err := m.client.StatObject(ctx, m.bucket, objectName, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to stat minutes: %w", err)
	}

	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
