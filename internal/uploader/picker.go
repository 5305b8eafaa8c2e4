package uploader

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"

	"imgupload-go/internal/models"
)

// OnFileChange binds the file input to the selection. The first file of the
// list becomes the selected file; an empty list (dialog cancelled) keeps the
// current selection.
func (c *Component) OnFileChange(files []*models.SelectedFile) {
	if len(files) == 0 || files[0] == nil {
		log.Debug().Msg("empty file selection, keeping current file")
		return
	}

	file := files[0]
	c.selection.setSelectedFile(file)

	log.Debug().
		Str("filename", file.Name).
		Str("mime_type", file.MimeType).
		Int64("size", file.Size()).
		Msg("file selected")
}

// FilesFromForm converts the files submitted under field into selected files,
// in the order the browser sent them. A missing field yields an empty list.
func FilesFromForm(form *multipart.Form, field string) ([]*models.SelectedFile, error) {
	if form == nil {
		return nil, nil
	}

	headers := form.File[field]
	files := make([]*models.SelectedFile, 0, len(headers))
	for _, header := range headers {
		file, err := FileFromHeader(header)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// FileFromHeader reads a browser-submitted form file into memory. The MIME
// type declared by the browser is kept; when it is missing the type is
// sniffed from the content.
func FileFromHeader(header *multipart.FileHeader) (*models.SelectedFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening form file: %w", err)
	}
	defer func(f multipart.File) {
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("error closing form file")
		}
	}(f)

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading form file: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimetype.Detect(content).String()
	}

	return &models.SelectedFile{
		Name:       header.Filename,
		MimeType:   mimeType,
		Content:    content,
		SelectedAt: time.Now(),
	}, nil
}
