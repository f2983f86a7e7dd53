package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"legal_wizard_go/models"
)

const MaxUploadSize = 10 * 1024 * 1024 // 10MB

var (
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedFileType = errors.New("file type not allowed. Accepted formats: PDF, JPG, PNG, WEBP")
	ErrInvalidFileContent  = errors.New("file content does not match its extension")
)

// sourceMimeTypes maps accepted extensions to the MIME type sent to the model
var sourceMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// DetectSourceMimeType identifies a source document by its magic bytes.
// Returns "" for anything that is not an accepted type.
func DetectSourceMimeType(header []byte) string {
	switch {
	case bytes.HasPrefix(header, []byte("%PDF")):
		return "application/pdf"
	case bytes.HasPrefix(header, []byte{0xFF, 0xD8, 0xFF}):
		return "image/jpeg"
	case bytes.HasPrefix(header, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png"
	case len(header) >= 12 && string(header[0:4]) == "RIFF" && string(header[8:12]) == "WEBP":
		return "image/webp"
	}
	return ""
}

// ValidateSourceDocument checks size and extension of an upload before it is read
func ValidateSourceDocument(fileHeader *multipart.FileHeader, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = MaxUploadSize
	}
	if fileHeader.Size > maxSize {
		return fmt.Errorf("%w (%d MB)", ErrFileTooLarge, maxSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := sourceMimeTypes[ext]; !ok {
		return ErrUnsupportedFileType
	}
	return nil
}

// ReadSourceDocument validates the upload and reads it into memory. The
// extension and the sniffed content must agree.
func ReadSourceDocument(fileHeader *multipart.FileHeader, maxSize int64) (models.UploadedFile, error) {
	if err := ValidateSourceDocument(fileHeader, maxSize); err != nil {
		return models.UploadedFile{}, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("failed to read file content: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mimeType := DetectSourceMimeType(data)
	if mimeType == "" || mimeType != sourceMimeTypes[ext] {
		return models.UploadedFile{}, ErrInvalidFileContent
	}

	return models.UploadedFile{
		Name:     filepath.Base(fileHeader.Filename),
		MimeType: mimeType,
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}

// ArchiveSourceDocument stores a copy of the upload and records its key on the file
func ArchiveSourceDocument(ctx context.Context, storage StorageProvider, sessionID string, file *models.UploadedFile) error {
	if storage == nil {
		return fmt.Errorf("storage not configured")
	}

	key := GenerateSourceDocumentKey(sessionID, file.Name)
	if _, err := storage.Put(ctx, key, file.MimeType, file.Data); err != nil {
		return fmt.Errorf("failed to archive source document: %w", err)
	}
	file.StorageKey = key
	return nil
}
