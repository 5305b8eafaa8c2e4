package uploader

import (
	"imgupload-go/internal/models"
)

const (
	// Endpoint is the address of the image processing backend.
	Endpoint = "http://127.0.0.1:8000/api/image"

	// FieldName is the multipart part the image is sent under.
	FieldName = "image"
)

// Component ties the selection state to the file picker and the upload button.
// One Component is owned by one browser session for its whole lifetime.
type Component struct {
	selection *Selection
	client    *Client
}

func NewComponent(client *Client) *Component {
	return &Component{
		selection: &Selection{},
		client:    client,
	}
}

// SelectedFile returns the file pending upload, or nil.
func (c *Component) SelectedFile() *models.SelectedFile {
	return c.selection.SelectedFile()
}

// Result returns the result of the most recent successful upload, or nil.
func (c *Component) Result() *models.UploadResult {
	return c.selection.Result()
}
