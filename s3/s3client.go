package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const defaultLocation = "us-east-1"

type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
}

func (c Config) IsConfigured() bool {
	return c.Endpoint != "" && c.AccessKeyID != ""
}

func NewClient(cfg Config) (*minio.Client, error) {
	if !cfg.IsConfigured() {
		return nil, errors.New("endpoint S3 belum dikonfigurasi")
	}
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "kesalahan inisialisasi klien S3")
	}
	return minioClient, nil
}

// MakeBucket membuat bucket bila belum ada
func MakeBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: defaultLocation})
}
