package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"legal_wizard_go/config"
	"legal_wizard_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	tempDir := t.TempDir()
	storage := NewLocalStorage(tempDir)
	ctx := context.Background()
	key := "wizard/s1/source/id.txt"

	assert.Equal(t, "local", storage.Backend())

	t.Run("Put creates file", func(t *testing.T) {
		result, err := storage.Put(ctx, key, "text/plain", []byte("hello storage"))
		require.NoError(t, err)
		assert.Equal(t, key, result.Key)
		assert.Equal(t, int64(13), result.Size)

		_, err = os.Stat(filepath.Join(tempDir, key))
		assert.NoError(t, err)
	})

	t.Run("Get retrieves file content", func(t *testing.T) {
		reader, contentType, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()

		got, _ := io.ReadAll(reader)
		assert.Equal(t, "hello storage", string(got))
		assert.Equal(t, "application/octet-stream", contentType)
	})

	t.Run("Get detects MIME types from the extension", func(t *testing.T) {
		cases := map[string]string{
			"doc.pdf":   "application/pdf",
			"scan.WEBP": "image/webp",
			"id.jpeg":   "image/jpeg",
			"id.png":    "image/png",
		}
		for name, want := range cases {
			_, err := storage.Put(ctx, "types/"+name, want, []byte("x"))
			require.NoError(t, err)

			reader, contentType, err := storage.Get(ctx, "types/"+name)
			require.NoError(t, err)
			reader.Close()
			assert.Equal(t, want, contentType, name)
		}
	})

	t.Run("Get missing file", func(t *testing.T) {
		_, _, err := storage.Get(ctx, "nope.pdf")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("Keys cannot escape the base directory", func(t *testing.T) {
		_, err := storage.Put(ctx, "../../outside.txt", "text/plain", []byte("x"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(tempDir, "outside.txt"))
		assert.NoError(t, err)

		_, err = storage.Put(ctx, "/", "text/plain", []byte("x"))
		assert.Error(t, err)
	})

	t.Run("Delete removes file", func(t *testing.T) {
		require.NoError(t, storage.Delete(ctx, key))
		_, err := os.Stat(filepath.Join(tempDir, key))
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, storage.Delete(ctx, key), "deleting twice is fine")
	})
}

func TestKeyGeneration(t *testing.T) {
	sessionID := "s1"
	filename := "Contract.PDF"

	t.Run("GenerateStorageKey", func(t *testing.T) {
		key := GenerateStorageKey("prefix", filename)
		assert.True(t, strings.HasPrefix(key, "prefix/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
		assert.Len(t, strings.Split(filepath.Base(key), "_"), 2)
	})

	t.Run("GenerateSourceDocumentKey", func(t *testing.T) {
		key := GenerateSourceDocumentKey(sessionID, filename)
		assert.True(t, strings.HasPrefix(key, "wizard/s1/source/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
	})

	t.Run("GenerateExportKey", func(t *testing.T) {
		key := GenerateExportKey(sessionID, models.DocumentTypeFeeAgreement, ".pdf")
		assert.True(t, strings.HasPrefix(key, "wizard/s1/exports/fee_agreement/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
	})

	t.Run("Keys are unique", func(t *testing.T) {
		assert.NotEqual(t, GenerateSourceDocumentKey(sessionID, filename), GenerateSourceDocumentKey(sessionID, filename))
	})
}

func TestInitializeStorageWithoutR2(t *testing.T) {
	cfg := &config.Config{UploadDir: t.TempDir(), R2AccountID: "acc"}
	assert.False(t, R2Configured(cfg))

	provider := InitializeStorage(context.Background(), cfg)
	assert.Equal(t, "local", provider.Backend())
}

func TestR2Configured(t *testing.T) {
	cfg := &config.Config{R2AccountID: "acc", R2AccessKeyID: "key", R2SecretAccessKey: "secret", R2BucketName: "bucket"}
	assert.True(t, R2Configured(cfg))

	r2, err := NewR2Storage(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "r2", r2.Backend())
	assert.Equal(t, "bucket", r2.bucket)
}
