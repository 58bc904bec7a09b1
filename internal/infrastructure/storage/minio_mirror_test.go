package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectAPI implementa objectAPI sin red.
type fakeObjectAPI struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr         error
	putKey         string
	putSize        int64
	putContentType string
	putBody        []byte
}

func (f *fakeObjectAPI) BucketExists(context.Context, string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeObjectAPI) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeObjectAPI) PutObject(_ context.Context, _, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.putKey, f.putSize, f.putContentType = key, size, opts.ContentType
	f.putBody, _ = io.ReadAll(r)
	return minio.UploadInfo{Key: key, Size: size}, f.putErr
}

func TestNewMinioMirror_CreaBucketSiNoExiste(t *testing.T) {
	api := &fakeObjectAPI{}
	m, err := NewMinioMirrorWithAPI(context.Background(), api, "facturas")
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Equal(t, "facturas", api.madeBucket)
}

func TestNewMinioMirror_BucketExistente(t *testing.T) {
	api := &fakeObjectAPI{bucketExists: true}
	_, err := NewMinioMirrorWithAPI(context.Background(), api, "facturas")
	require.NoError(t, err)
	assert.Empty(t, api.madeBucket)
}

func TestNewMinioMirror_Errores(t *testing.T) {
	_, err := NewMinioMirrorWithAPI(context.Background(), &fakeObjectAPI{bucketExistsErr: errors.New("boom")}, "b")
	assert.ErrorContains(t, err, "verificar bucket")

	_, err = NewMinioMirrorWithAPI(context.Background(), &fakeObjectAPI{makeBucketErr: errors.New("denegado")}, "b")
	assert.ErrorContains(t, err, "crear bucket")
}

func TestPutPDF(t *testing.T) {
	api := &fakeObjectAPI{bucketExists: true}
	m := &MinioMirror{api: api, bucket: "facturas"}

	require.NoError(t, m.PutPDF(context.Background(), "facturas/abc.pdf", []byte("%PDF-1.3")))
	assert.Equal(t, "facturas/abc.pdf", api.putKey)
	assert.Equal(t, int64(8), api.putSize)
	assert.Equal(t, "application/pdf", api.putContentType)
	assert.Equal(t, []byte("%PDF-1.3"), api.putBody)

	api.putErr = errors.New("sin espacio")
	assert.ErrorContains(t, m.PutPDF(context.Background(), "facturas/abc.pdf", nil), "subir facturas/abc.pdf")
}
