package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store persists incident snapshots in S3-compatible object storage
type Store struct {
	client *minio.Client
	bucket string
}

// Config holds object storage connection details
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewStore connects to the object store and ensures the bucket exists
func NewStore(ctx context.Context, config Config) (*Store, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Store{client: client, bucket: config.Bucket}, nil
}

// Put uploads a JPEG snapshot and returns its object reference
func (s *Store) Put(ctx context.Context, cameraID string, jpeg []byte, ts time.Time) (string, error) {
	key := fmt.Sprintf("%s/%s/%d.jpg", cameraID, ts.UTC().Format("2006-01-02"), ts.UnixMilli())

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(jpeg), int64(len(jpeg)),
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}
	return key, nil
}

// Get streams a snapshot back by its reference
func (s *Store) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	return obj, nil
}

// ServeHTTP streams snapshots at /api/v1/snapshots/{ref}
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ref := strings.TrimPrefix(r.URL.Path, "/api/v1/snapshots/")
	if ref == "" || ref == r.URL.Path {
		http.Error(w, "snapshot reference required", http.StatusBadRequest)
		return
	}

	obj, err := s.Get(r.Context(), ref)
	if err != nil {
		http.Error(w, "snapshot not found", http.StatusNotFound)
		return
	}
	defer obj.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := io.Copy(w, obj); err != nil {
		log.Printf("[SnapshotStore] Failed to stream %s: %v", ref, err)
	}
}

// Delete removes a snapshot by its reference
func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
