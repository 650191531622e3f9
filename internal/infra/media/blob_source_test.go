package media

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	return buf.Bytes()
}

func newFileBucket(t *testing.T) string {
	t.Helper()

	return "file://" + t.TempDir()
}

func writeBlob(t *testing.T, bucketURL, key string, data []byte) {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	require.NoError(t, err)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(context.Background(), key, data, nil))
}

func newSource(allowed ...string) *blobSource {
	return newBlobSource(allowed, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobSource_OpensImage(t *testing.T) {
	bucketURL := newFileBucket(t)
	data := pngBytes(t)
	writeBlob(t, bucketURL, "logos/soda.png", data)

	source := newSource("file")
	t.Cleanup(func() { _ = source.Close() })

	file, err := source.Open(context.Background(), entity.BlobRef{Bucket: bucketURL, Key: "logos/soda.png"})
	require.NoError(t, err)
	assert.Equal(t, "soda.png", file.Filename)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, data, file.Data)
}

func TestBlobSource_RejectsInvalidRefs(t *testing.T) {
	bucketURL := newFileBucket(t)
	writeBlob(t, bucketURL, "notes.txt", []byte("plain text, not an image"))

	source := newSource(" FILE ")
	t.Cleanup(func() { _ = source.Close() })

	tests := []struct {
		name string
		ref  entity.BlobRef
	}{
		{"missing key", entity.BlobRef{Bucket: bucketURL}},
		{"scheme not allowed", entity.BlobRef{Bucket: "s3://media", Key: "a.png"}},
		{"blob not found", entity.BlobRef{Bucket: bucketURL, Key: "missing.png"}},
		{"not an image", entity.BlobRef{Bucket: bucketURL, Key: "notes.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := source.Open(context.Background(), tt.ref)
			require.ErrorIs(t, err, domainerrors.ErrInvalidImage)
		})
	}
}

func TestBlobSource_ReusesBuckets(t *testing.T) {
	bucketURL := newFileBucket(t)
	writeBlob(t, bucketURL, "a.png", pngBytes(t))
	writeBlob(t, bucketURL, "b.png", pngBytes(t))

	source := newSource("file")

	for _, key := range []string{"a.png", "b.png"} {
		_, err := source.Open(context.Background(), entity.BlobRef{Bucket: bucketURL, Key: key})
		require.NoError(t, err)
	}
	assert.Len(t, source.buckets, 1)

	require.NoError(t, source.Close())
	assert.Empty(t, source.buckets)
}
