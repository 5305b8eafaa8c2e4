package pages

import (
	"imgupload-go/internal/models"
)

// UploadView is the state the upload component renders.
type UploadView struct {
	File   *models.SelectedFile
	Result *models.UploadResult
}
