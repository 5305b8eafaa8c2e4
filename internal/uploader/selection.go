package uploader

import (
	"sync"

	"imgupload-go/internal/models"
)

// Selection holds the currently chosen file and the last received result.
// Readers get the current values; only the picker and the submitter write.
type Selection struct {
	mu     sync.RWMutex
	file   *models.SelectedFile
	result *models.UploadResult
}

func (s *Selection) SelectedFile() *models.SelectedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.file
}

func (s *Selection) Result() *models.UploadResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

func (s *Selection) setSelectedFile(file *models.SelectedFile) {
	s.mu.Lock()
	s.file = file
	s.mu.Unlock()
}

// setResult stores the latest result. Overlapping uploads are not ordered,
// whichever response arrives last wins.
func (s *Selection) setResult(result *models.UploadResult) {
	s.mu.Lock()
	s.result = result
	s.mu.Unlock()
}
