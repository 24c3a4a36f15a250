package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"asset-registry/core/storage"
	"asset-registry/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "b"))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(false, nil)
		m.On("MakeBucket", ctx, "b", minio.MakeBucketOptions{}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "b"))
		m.AssertExpectations(t)
	})

	t.Run("Check fails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(false, errors.New("offline"))

		assert.ErrorContains(t, storage.EnsureBucket(ctx, m, "b"), "offline")
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	body := strings.NewReader("data")
	m.On("PutObject", ctx, "b", "backups/x.db", body, int64(4), minio.PutObjectOptions{ContentType: "application/octet-stream"}).
		Return(minio.UploadInfo{Key: "backups/x.db"}, nil)

	require.NoError(t, storage.Upload(ctx, m, "b", "backups/x.db", body, 4, "application/octet-stream"))
	m.AssertExpectations(t)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "backups/a.db", Size: 10, LastModified: now}
	ch <- minio.ObjectInfo{Key: "backups/b.db", Size: 20, LastModified: now}
	close(ch)

	m := new(mocks.Client)
	m.On("ListObjects", ctx, "b", minio.ListObjectsOptions{Prefix: "backups/", Recursive: true}).Return((<-chan minio.ObjectInfo)(ch))

	objs, err := storage.List(ctx, m, "b", "backups/")
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "backups/b.db", objs[1].Key)
	assert.Equal(t, int64(20), objs[1].Size)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("Nothing to remove", func(t *testing.T) {
		assert.NoError(t, storage.Remove(ctx, new(mocks.Client), "b", nil))
	})

	t.Run("Reports failure", func(t *testing.T) {
		errCh := make(chan minio.RemoveObjectError, 1)
		errCh <- minio.RemoveObjectError{ObjectName: "backups/a.db", Err: errors.New("denied")}
		close(errCh)

		m := new(mocks.Client)
		m.On("RemoveObjects", ctx, "b", mock.Anything, minio.RemoveObjectsOptions{}).Return((<-chan minio.RemoveObjectError)(errCh))

		err := storage.Remove(ctx, m, "b", []string{"backups/a.db"})
		assert.ErrorContains(t, err, "backups/a.db")
	})
}
