package initializers

import (
	"context"

	"broilink-backend/config"
	filestorage "broilink-backend/lib/file-storage"
	s3client "broilink-backend/s3"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"
)

func InitFileStorage(ctx context.Context) {
	filestorage.NewHandler(initS3(ctx), config.Conf.S3.BucketName)
}

func initS3(ctx context.Context) *minio.Client {
	cfg := s3client.Config{
		Endpoint:        config.Conf.S3.Endpoint,
		AccessKeyID:     config.Conf.S3.AccessKeyID,
		SecretAccessKey: config.Conf.S3.SecretAccessKey,
		UseSSL:          *config.Conf.S3.UseSSL,
	}
	if !cfg.IsConfigured() {
		return nil
	}
	minioClient, err := s3client.NewClient(cfg)
	if err != nil {
		log.WithError(err).Error("Kesalahan inisialisasi klien S3")
		return nil
	}
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		log.WithError(err).Error("Koneksi S3 gagal, ListBuckets mengembalikan kesalahan")
	}
	log.Info("Klien S3 berhasil diinisialisasi")
	return minioClient
}
