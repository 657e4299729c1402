package corpus

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"passwordStrengthBackend/internal/config"
	"passwordStrengthBackend/internal/core/domain"
)

type objectOpener func(ctx context.Context) (io.ReadCloser, error)

// ObjectSource reads a corpus file stored in an S3-compatible bucket.
type ObjectSource struct {
	open   objectOpener
	hashed bool
}

func NewObjectSource(cfg config.ObjectConfig, hashed bool) (*ObjectSource, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	open := func(ctx context.Context) (io.ReadCloser, error) {
		return client.GetObject(ctx, cfg.Bucket, cfg.Object, minio.GetObjectOptions{})
	}
	return &ObjectSource{open: open, hashed: hashed}, nil
}

func (s *ObjectSource) Name() domain.CorpusSource {
	return domain.CorpusS3
}

func (s *ObjectSource) Load(ctx context.Context) ([]string, error) {
	obj, err := s.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("get corpus object: %w", err)
	}
	defer obj.Close()

	return readDigests(obj, s.hashed)
}
