// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
)

const failedNotificationsFolder = "failed-notifications"

var ErrArchiveDisabled = errors.New("S3 archive not configured")

// StorageService keeps a copy of notifications that could not be delivered
// so staff can forward them by hand.
type StorageService struct {
	s3Client s3iface.S3API
	bucket   string
	now      func() time.Time
}

func NewStorageService(cfg config.AWSConfig) (*StorageService, error) {
	if !cfg.HasS3() {
		// Return service without S3 for local development
		return &StorageService{now: time.Now}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageServiceWithClient(s3.New(sess), cfg.S3Bucket), nil
}

func NewStorageServiceWithClient(client s3iface.S3API, bucket string) *StorageService {
	return &StorageService{s3Client: client, bucket: bucket, now: time.Now}
}

func (s *StorageService) Enabled() bool {
	return s != nil && s.s3Client != nil
}

// ArchiveEmail stores the HTML of an undelivered notification and returns
// its object key.
func (s *StorageService) ArchiveEmail(ctx context.Context, applicationID, html string) (string, error) {
	if !s.Enabled() {
		return "", ErrArchiveDisabled
	}

	key := s.archiveKey(applicationID)
	body := []byte(html)
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String("text/html; charset=utf-8"),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return key, nil
}

func (s *StorageService) archiveKey(applicationID string) string {
	if applicationID == "" {
		applicationID = uuid.NewString()
	}
	return fmt.Sprintf("%s/%s/%s.html", failedNotificationsFolder, s.now().UTC().Format("2006-01-02"), applicationID)
}
