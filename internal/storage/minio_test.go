package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"docqa/internal/config"
)

func TestCheckKey(t *testing.T) {
	assert.NoError(t, checkKey("uploads/abc.pdf"))
	assert.ErrorIs(t, checkKey("other/abc.pdf"), ErrInvalidKey)
	assert.ErrorIs(t, checkKey("uploads/../secret"), ErrInvalidKey)
	assert.ErrorIs(t, checkKey(""), ErrInvalidKey)
}

func TestIsNoSuchKey(t *testing.T) {
	assert.True(t, isNoSuchKey(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, isNoSuchKey(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNoSuchKey(errors.New("boom")))
}

func TestNewMinIO_RequiresSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"endpoint", config.MinIOConfig{}, "minio endpoint is required"},
		{"credentials", config.MinIOConfig{Endpoint: "localhost:9000"}, "minio credentials are required"},
		{"bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "minio bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinIO(tt.cfg)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(&config.AppConfig{Upload: config.UploadConfig{ScratchBackend: "tape"}})
	assert.EqualError(t, err, `unknown scratch backend "tape"`)
}
