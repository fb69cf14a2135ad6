// Package gcs stores portfolio images in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/tiresomefanatic/FindPRO-Backend/config"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const publicHost = "https://storage.googleapis.com"

// ErrForeignObject is returned by Delete for URLs outside the configured bucket.
var ErrForeignObject = errors.New("object is not in the configured bucket")

// Store uploads and deletes objects in one bucket.
type Store struct {
	client *storage.Client
	bucket string
	log    *zap.Logger
}

// New opens a storage client and checks that the bucket is reachable.
// Without a credentials file the default application credentials are used.
func New(ctx context.Context, cfg config.GCSConfig, log *zap.Logger) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}

	if _, err := client.Bucket(cfg.Bucket).Attrs(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gcs bucket %s: %w", cfg.Bucket, err)
	}

	log.Info("connected to google cloud storage", zap.String("bucket", cfg.Bucket))

	return &Store{client: client, bucket: cfg.Bucket, log: log}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// Upload writes r under folder and returns the object's public URL.
func (s *Store) Upload(ctx context.Context, r io.Reader, contentType, folder string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectName := ObjectName(folder, contentType, time.Now())

	writer := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("gcs upload %s: %w", objectName, err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("gcs close writer %s: %w", objectName, err)
	}

	publicURL := PublicURL(s.bucket, objectName)
	s.log.Debug("uploaded object", zap.String("url", publicURL))

	return publicURL, nil
}

// Delete removes the object behind rawURL. URLs outside the bucket yield ErrForeignObject.
func (s *Store) Delete(ctx context.Context, rawURL string) error {
	objectName, ok := ObjectFromURL(s.bucket, rawURL)
	if !ok {
		return ErrForeignObject
	}

	if err := s.client.Bucket(s.bucket).Object(objectName).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("gcs delete %s: %w", objectName, err)
	}

	return nil
}

// Owns reports whether rawURL points into the store's bucket.
func (s *Store) Owns(rawURL string) bool {
	_, ok := ObjectFromURL(s.bucket, rawURL)
	return ok
}

// ObjectName builds <folder>/<uuid>_<nanos>.<ext>.
func ObjectName(folder, contentType string, now time.Time) string {
	return fmt.Sprintf("%s/%s_%d.%s", folder, uuid.NewString(), now.UnixNano(), Extension(contentType))
}

// Extension maps an image content type to a file extension, jpg when unknown.
func Extension(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpeg"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}

// IsImage reports whether contentType is an image type.
func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}

func PublicURL(bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", publicHost, bucket, objectName)
}

// ObjectFromURL extracts the object name from a public URL of bucket.
func ObjectFromURL(bucket, rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "https" || u.Host != "storage.googleapis.com" {
		return "", false
	}

	prefix := "/" + bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}

	name := strings.TrimPrefix(u.Path, prefix)
	if name == "" {
		return "", false
	}

	return name, true
}
