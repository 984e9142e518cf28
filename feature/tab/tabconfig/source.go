package tabconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"speedtab/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Source provides the raw configuration document.
type Source interface {
	// Read returns the document, creating it from Template first if it does
	// not exist yet.
	Read(ctx context.Context) ([]byte, error)
	// String describes the source for logs.
	String() string
}

// FileSource reads the configuration from a file in the data directory.
type FileSource struct {
	Dir    string
	Name   string
	logger *zap.Logger
}

// NewFileSource creates a source for dir/name.
func NewFileSource(dir, name string, logger *zap.Logger) *FileSource {
	return &FileSource{Dir: dir, Name: name, logger: logger}
}

// Path returns the full path of the configuration file.
func (s *FileSource) Path() string {
	return filepath.Join(s.Dir, s.Name)
}

func (s *FileSource) String() string {
	return "file " + s.Path()
}

// Read implements Source.
func (s *FileSource) Read(ctx context.Context) ([]byte, error) {
	path := s.Path()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		// A failed copy is only logged; the read below reports the real problem.
		if err := s.writeTemplate(path); err != nil {
			s.logger.Error("Failed to create default config file", zap.String("path", path), zap.Error(err))
		} else {
			s.logger.Info("Created default config file", zap.String("path", path))
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return raw, nil
}

func (s *FileSource) writeTemplate(path string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, Template, 0o644)
}

// ObjectSource reads the configuration from an object storage bucket, so that
// several proxies can share one document.
type ObjectSource struct {
	client storage.Client
	bucket string
	object string
	logger *zap.Logger
}

// NewObjectSource creates a source for bucket/object.
func NewObjectSource(client storage.Client, bucket, object string, logger *zap.Logger) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, object: object, logger: logger}
}

func (s *ObjectSource) String() string {
	return fmt.Sprintf("object %s/%s", s.bucket, s.object)
}

// Read implements Source.
func (s *ObjectSource) Read(ctx context.Context) ([]byte, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err == nil {
		defer obj.Close()
		var raw []byte
		raw, err = io.ReadAll(obj)
		if err == nil {
			return raw, nil
		}
	}

	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return nil, fmt.Errorf("failed to get %s: %w", s.object, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(Template), int64(len(Template)), minio.PutObjectOptions{
		ContentType: "application/yaml",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload default config %s: %w", s.object, err)
	}
	s.logger.Info("Uploaded default config object", zap.String("bucket", s.bucket), zap.String("object", s.object))

	return Template, nil
}
