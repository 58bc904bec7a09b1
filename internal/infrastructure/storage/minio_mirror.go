// Package storage replica los PDFs confirmados en un bucket S3 compatible (MinIO).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/pkg/config"
)

const pdfContentType = "application/pdf"

// objectAPI subconjunto de *minio.Client que usa el mirror; permite fakes en tests.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

var _ ports.DocumentMirror = (*MinioMirror)(nil)

// MinioMirror implementa ports.DocumentMirror sobre MinIO.
type MinioMirror struct {
	api    objectAPI
	bucket string
}

// NewMinioMirror conecta con el endpoint configurado y asegura que el bucket exista.
func NewMinioMirror(ctx context.Context, cfg config.StorageConfig) (*MinioMirror, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cliente minio: %w", err)
	}
	return NewMinioMirrorWithAPI(ctx, client, cfg.Bucket)
}

// NewMinioMirrorWithAPI permite inyectar la API (tests).
func NewMinioMirrorWithAPI(ctx context.Context, api objectAPI, bucket string) (*MinioMirror, error) {
	m := &MinioMirror{api: api, bucket: bucket}
	if err := m.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MinioMirror) ensureBucket(ctx context.Context) error {
	exists, err := m.api.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("storage: verificar bucket %s: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.api.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("storage: crear bucket %s: %w", m.bucket, err)
	}
	return nil
}

// PutPDF sube el PDF con la llave dada.
func (m *MinioMirror) PutPDF(ctx context.Context, key string, pdf []byte) error {
	_, err := m.api.PutObject(ctx, m.bucket, key, bytes.NewReader(pdf), int64(len(pdf)),
		minio.PutObjectOptions{ContentType: pdfContentType})
	if err != nil {
		return fmt.Errorf("storage: subir %s: %w", key, err)
	}
	return nil
}
