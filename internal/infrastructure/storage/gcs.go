package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const defaultGCSPublicBase = "https://storage.googleapis.com"

// GCSStore uploads to Google Cloud Storage buckets that serve objects publicly.
type GCSStore struct {
	client     *gcs.Client
	publicBase string
}

func NewGCSStore(ctx context.Context, credentialsFile, publicBase string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err != nil {
			return nil, fmt.Errorf("gcs credentials file: %w", err)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	if publicBase == "" {
		publicBase = defaultGCSPublicBase
	}
	return &GCSStore{client: c, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (s *GCSStore) Upload(ctx context.Context, bucket, key, contentType string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyObject
	}

	w := s.client.Bucket(bucket).Object(key).If(gcs.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *GCSStore) PublicURL(bucket, key string) string {
	return s.publicBase + "/" + bucket + "/" + key
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
