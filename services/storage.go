package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"legal_wizard_go/config"
	"legal_wizard_go/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrObjectNotFound is returned by Get for a key that was never archived
var ErrObjectNotFound = errors.New("object not found")

// StorageProvider archives source documents and exported PDFs. Archiving is
// best effort: the wizard never reads these copies back.
type StorageProvider interface {
	Put(ctx context.Context, key, contentType string, data []byte) (*StorageResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, string, error) // Returns reader, content-type, error
	Delete(ctx context.Context, key string) error
	Backend() string
}

// StorageResult describes an archived object
type StorageResult struct {
	Key      string
	Size     int64
	MimeType string
}

// R2Configured reports whether every R2 setting is present
func R2Configured(cfg *config.Config) bool {
	return cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != ""
}

// InitializeStorage picks R2 when it is configured and reachable, the local
// upload directory otherwise
func InitializeStorage(ctx context.Context, cfg *config.Config) StorageProvider {
	if !R2Configured(cfg) {
		log.Printf("Storage ready (Local filesystem - path: %s)", cfg.UploadDir)
		return NewLocalStorage(cfg.UploadDir)
	}

	r2, err := NewR2Storage(ctx, cfg)
	if err == nil {
		err = r2.ping(ctx)
	}
	if err != nil {
		log.Printf("[WARNING] R2 storage unavailable: %v. Falling back to local storage.", err)
		return NewLocalStorage(cfg.UploadDir)
	}

	log.Printf("Storage ready (Cloudflare R2 - bucket: %s)", r2.bucket)
	return r2
}

// R2Storage archives objects in a Cloudflare R2 bucket through its S3 API
type R2Storage struct {
	client *s3.Client
	bucket string
}

// NewR2Storage creates a new R2 storage provider
func NewR2Storage(ctx context.Context, cfg *config.Config) (*R2Storage, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Storage{client: client, bucket: cfg.R2BucketName}, nil
}

func (r *R2Storage) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r.bucket)}); err != nil {
		return fmt.Errorf("bucket check failed: %w", err)
	}
	return nil
}

func (r *R2Storage) Backend() string {
	return "r2"
}

// Put writes data under key
func (r *R2Storage) Put(ctx context.Context, key, contentType string, data []byte) (*StorageResult, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to R2: %w", err)
	}

	return &StorageResult{Key: key, Size: int64(len(data)), MimeType: contentType}, nil
}

// Get opens an archived object
func (r *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object from R2: %w", err)
	}

	contentType := "application/octet-stream"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}
	return result.Body, contentType, nil
}

// Delete removes an archived object
func (r *R2Storage) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from R2: %w", err)
	}
	return nil
}

// LocalStorage archives objects below a directory
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a new local storage provider
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

func (l *LocalStorage) Backend() string {
	return "local"
}

// path maps a key into baseDir, refusing keys that would escape it
func (l *LocalStorage) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.baseDir, filepath.FromSlash(clean)), nil
}

// Put writes data under key, creating parent directories
func (l *LocalStorage) Put(ctx context.Context, key, contentType string, data []byte) (*StorageResult, error) {
	fullPath, err := l.path(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StorageResult{Key: key, Size: int64(len(data)), MimeType: contentType}, nil
}

// Get opens an archived file; the content type comes from the extension
func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath, err := l.path(key)
	if err != nil {
		return nil, "", err
	}

	file, err := os.Open(fullPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", ErrObjectNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	contentType, ok := sourceMimeTypes[strings.ToLower(filepath.Ext(key))]
	if !ok {
		contentType = "application/octet-stream"
	}
	return file, contentType, nil
}

// Delete removes an archived file; missing files are not an error
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GenerateStorageKey creates a unique key below prefix keeping the file extension
func GenerateStorageKey(prefix string, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	filename := fmt.Sprintf("%s_%d%s", uuid.New().String(), time.Now().Unix(), ext)
	return path.Join(prefix, filename)
}

// GenerateSourceDocumentKey creates a storage key for an uploaded source document
func GenerateSourceDocumentKey(sessionID, originalFilename string) string {
	return GenerateStorageKey(fmt.Sprintf("wizard/%s/source", sessionID), originalFilename)
}

// GenerateExportKey creates a storage key for an exported document
func GenerateExportKey(sessionID string, docType models.DocumentType, ext string) string {
	return GenerateStorageKey(fmt.Sprintf("wizard/%s/exports/%s", sessionID, docType), "export"+ext)
}
