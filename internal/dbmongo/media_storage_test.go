package dbmongo

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Integration test against a real MongoDB instance. Skipped unless
// MONGO_TEST_URI is set, e.g. mongodb://localhost:27017.
func setupStorage(t *testing.T) *MediaStorage {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping GridFS integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	db := client.Database("gogram_test")
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("photo_files_test"))
	require.NoError(t, err)

	return NewMediaStorage(&MongoClient{Client: client, Database: db, GridFS: bucket})
}

func TestMediaStorage_UploadDownloadDelete(t *testing.T) {
	ms := setupStorage(t)
	ctx := context.Background()

	content := []byte("fake image content")
	file, err := ms.UploadFile(ctx, "sunset.jpg", "image/jpeg", 42, bytes.NewReader(content))
	require.NoError(t, err)
	require.NotEmpty(t, file.ID)
	assert.Equal(t, "sunset.jpg", file.Filename)
	assert.Equal(t, int64(len(content)), file.Size)
	assert.Equal(t, uint64(42), file.UploadedBy)

	reader, meta, err := ms.DownloadFile(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "sunset.jpg", meta.Filename)
	assert.Equal(t, "image/jpeg", meta.MimeType)

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, ms.DeleteFile(ctx, file.ID))

	_, _, err = ms.DownloadFile(ctx, file.ID)
	assert.Error(t, err)
}

func TestMediaStorage_DownloadFile_InvalidID(t *testing.T) {
	ms := &MediaStorage{}

	_, _, err := ms.DownloadFile(context.Background(), "not-a-hex-id")
	assert.Error(t, err)
}

func TestMediaStorage_DeleteFile_InvalidID(t *testing.T) {
	ms := &MediaStorage{}

	err := ms.DeleteFile(context.Background(), "not-a-hex-id")
	assert.Error(t, err)
}
