package filestorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	first := ContentHash([]byte("scan content"))
	second := ContentHash([]byte("scan content"))
	other := ContentHash([]byte("another scan"))

	require.Len(t, first, 64)
	require.Equal(t, first, second)
	require.NotEqual(t, first, other)
}

func TestBuildPath(t *testing.T) {
	hash := ContentHash([]byte("scan content"))
	storagePath := BuildPath("EMP-0001", "PASSPORT", hash, "Скан Паспорта.PDF")
	require.Equal(t, "EMP-0001/passport/"+hash+".pdf", storagePath)

	// файл без расширения
	storagePath = BuildPath("EMP-0002", "work_permit", hash, "scan")
	require.Equal(t, "EMP-0002/work_permit/"+hash, storagePath)
}

func TestLocalStorageRoundTrip(t *testing.T) {
	storage := localImpl{baseDir: t.TempDir()}
	ctx := context.Background()
	content := []byte("file body")

	storagePath := BuildPath("EMP-0001", "PATENT", ContentHash(content), "patent.jpg")
	require.NoError(t, storage.Upload(ctx, storagePath, content, "image/jpeg"))

	got, err := storage.Download(ctx, storagePath)
	require.NoError(t, err)
	require.Equal(t, content, got)

	require.NoError(t, storage.Delete(ctx, storagePath))
	_, err = storage.Download(ctx, storagePath)
	require.Error(t, err)
}
