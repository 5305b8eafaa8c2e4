package models

import (
	"strconv"
	"time"
)

// Uploader

// SelectedFile represents the file the user picked and which is pending upload.
// It lives only in memory and is replaced by every new selection.
type SelectedFile struct {
	Name       string    `json:"name"`        // Filename as reported by the file picker
	MimeType   string    `json:"mime_type"`   // MIME type declared by the browser or sniffed from content
	Content    []byte    `json:"-"`           // Raw file bytes, sent as-is
	SelectedAt time.Time `json:"selected_at"` // Timestamp when the file was picked
}

// Size returns the size of the file content in bytes.
func (f *SelectedFile) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(len(f.Content))
}

// UploadResult represents the answer of the image endpoint after a successful upload.
type UploadResult struct {
	Value      *float64  `json:"value,omitempty"` // Numeric "result" field, nil when the response carried none
	ReceivedAt time.Time `json:"received_at"`     // Timestamp when the response arrived
}

// HasValue reports whether the response carried a numeric result.
func (r *UploadResult) HasValue() bool {
	return r != nil && r.Value != nil
}

// String formats the result the way it is displayed, empty when no value is present.
func (r *UploadResult) String() string {
	if !r.HasValue() {
		return ""
	}
	return strconv.FormatFloat(*r.Value, 'f', -1, 64)
}
