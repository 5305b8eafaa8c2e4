package uploader

import (
	"context"

	"github.com/rs/zerolog/log"
)

// OnUploadClick uploads the selected file and stores the result. Failures are
// logged and leave the previous result in place; nothing is returned to the
// caller. The request is detached from ctx cancellation and a second click
// while one is pending issues a second request.
func (c *Component) OnUploadClick(ctx context.Context) {
	file := c.selection.SelectedFile()
	if file == nil {
		log.Error().Err(ErrNoFileSelected).Msg("No file selected")
		return
	}

	result, err := c.client.Upload(context.WithoutCancel(ctx), file)
	if err != nil {
		log.Error().
			Err(err).
			Str("filename", file.Name).
			Str("endpoint", c.client.Endpoint()).
			Msg("Error uploading file")
		return
	}

	c.selection.setResult(result)

	log.Info().
		Str("filename", file.Name).
		Bool("has_value", result.HasValue()).
		Str("result", result.String()).
		Msg("Upload successful")
}
