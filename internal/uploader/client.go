package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"imgupload-go/internal/models"
)

// Client posts images to the processing backend.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for endpoint. The default HTTP client has no
// timeout: an unresponsive backend keeps the request pending.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Upload sends file as the "image" part of a multipart form and decodes the
// numeric "result" field of the JSON answer. A well-formed answer without a
// numeric result yields a result with no value.
func (c *Client) Upload(ctx context.Context, file *models.SelectedFile) (*models.UploadResult, error) {
	if file == nil {
		return nil, ErrNoFileSelected
	}

	body, contentType, err := encodeForm(file)
	if err != nil {
		return nil, &UploadError{Op: "encode form", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, &UploadError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	log.Debug().
		Str("endpoint", c.endpoint).
		Str("filename", file.Name).
		Int64("size", file.Size()).
		Msg("posting image")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UploadError{Op: "post image", Err: err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			log.Error().Err(err).Msg("error closing response body")
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UploadError{Op: "post image", StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UploadError{Op: "read response", StatusCode: resp.StatusCode, Err: err}
	}

	value, err := decodeResult(raw)
	if err != nil {
		return nil, &UploadError{Op: "decode response", StatusCode: resp.StatusCode, Err: err}
	}

	return &models.UploadResult{
		Value:      value,
		ReceivedAt: time.Now(),
	}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeForm builds the multipart body with the file under FieldName.
// The part carries the file's own MIME type, like a browser form does.
func encodeForm(file *models.SelectedFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FieldName, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", mimeType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating form part: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, "", fmt.Errorf("writing form part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form: %w", err)
	}

	return body, w.FormDataContentType(), nil
}

// decodeResult extracts the "result" field. Bodies that are valid JSON but
// not an object, or objects without a numeric result, give a nil value.
func decodeResult(raw []byte) (*float64, error) {
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	obj, ok := payload.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	value, ok := obj["result"].(float64)
	if !ok {
		return nil, nil
	}
	return &value, nil
}
