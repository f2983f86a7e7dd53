package models

// UploadedFile is the source document submitted on the upload step
type UploadedFile struct {
	Name       string `json:"name"`
	MimeType   string `json:"mime_type"`
	Size       int64  `json:"size"`
	Data       []byte `json:"-"`
	StorageKey string `json:"storage_key,omitempty"`
}
