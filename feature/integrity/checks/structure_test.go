package checks

import (
	"context"
	"errors"
	"testing"

	"stock-sync/core/archive"
	"stock-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("uploaded_files", 0o755))
	stores := []archive.Store{
		archive.NewLocalStore(fs, "uploaded_files"),
		archive.NewLocalStore(fs, "records"),
	}

	missing, err := CheckStructure(context.Background(), stores)
	require.NoError(t, err)
	assert.Equal(t, []string{"records"}, missing)
}

func TestFixStructure(t *testing.T) {
	fs := afero.NewMemMapFs()
	stores := []archive.Store{
		archive.NewLocalStore(fs, "uploaded_files"),
		archive.NewLocalStore(fs, "records"),
	}

	require.NoError(t, FixStructure(context.Background(), stores, zap.NewNop(), []string{"records"}))

	ok, err := afero.DirExists(fs, "records")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = afero.DirExists(fs, "uploaded_files")
	require.NoError(t, err)
	assert.False(t, ok, "roots not reported missing are left alone")

	missing, err := CheckStructure(context.Background(), stores)
	require.NoError(t, err)
	assert.Equal(t, []string{"uploaded_files"}, missing)
}

func TestCheckStructure_BucketError(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "bucket").Return(false, errors.New("connection refused"))
	stores := []archive.Store{archive.NewObjectStore(client, "bucket", "records")}

	missing, err := CheckStructure(context.Background(), stores)
	assert.Error(t, err)
	assert.Nil(t, missing)
}

func TestFixStructure_ObjectStoreMissingBucket(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "bucket").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "bucket", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "bucket", "records/", mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	stores := []archive.Store{archive.NewObjectStore(client, "bucket", "records")}

	missing, err := CheckStructure(ctx, stores)
	require.NoError(t, err)
	assert.Equal(t, []string{"records"}, missing)

	require.NoError(t, FixStructure(ctx, stores, zap.NewNop(), missing))
	client.AssertCalled(t, "MakeBucket", mock.Anything, "bucket", mock.Anything)
	client.AssertExpectations(t)
}
