package filestorage

import (
	"bytes"
	"context"
	"io"
	"sync"

	s3client "broilink-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, key string, file []byte, contentType string) error
	// Get - nil bila objek tidak ada
	Get(ctx context.Context, key string) (*Object, error)
}

type Object struct {
	Body        []byte
	ContentType string
}

var Instance Provider

// NewHandler - tanpa klien S3 foto disimpan di memori proses
func NewHandler(client *minio.Client, bucketName string) {
	if client == nil {
		log.Warn("S3 tidak dikonfigurasi, foto profil disimpan di memori")
		Instance = NewMemory()
		return
	}
	Instance = NewInstance(client, bucketName)
}

func NewInstance(client *minio.Client, bucketName string) Provider {
	return &impl{
		client:     client,
		bucketName: bucketName,
	}
}

type impl struct {
	client     *minio.Client
	bucketName string
	bucketOnce sync.Once
	bucketErr  error
}

func (i *impl) makeBucket(ctx context.Context) error {
	i.bucketOnce.Do(func() {
		i.bucketErr = s3client.MakeBucket(ctx, i.client, i.bucketName)
	})
	return i.bucketErr
}

func (i *impl) Upload(ctx context.Context, key string, file []byte, contentType string) error {
	if err := i.makeBucket(ctx); err != nil {
		return errors.Wrap(err, "kesalahan membuat bucket")
	}
	_, err := i.client.PutObject(ctx, i.bucketName, key, bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "kesalahan mengunggah file")
	}
	return nil
}

func (i *impl) Get(ctx context.Context, key string) (*Object, error) {
	obj, err := i.client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "kesalahan membaca file")
	}
	defer obj.Close()
	info, err := obj.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, errors.Wrap(err, "kesalahan membaca file")
	}
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "kesalahan membaca file")
	}
	return &Object{
		Body:        body,
		ContentType: info.ContentType,
	}, nil
}

func NewMemory() Provider {
	return memoryImpl{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

type memoryImpl struct {
	cache *cache.Cache
}

func (m memoryImpl) Upload(ctx context.Context, key string, file []byte, contentType string) error {
	body := make([]byte, len(file))
	copy(body, file)
	m.cache.Set(key, Object{Body: body, ContentType: contentType}, cache.NoExpiration)
	return nil
}

func (m memoryImpl) Get(ctx context.Context, key string) (*Object, error) {
	value, found := m.cache.Get(key)
	if !found {
		return nil, nil
	}
	obj := value.(Object)
	return &obj, nil
}
