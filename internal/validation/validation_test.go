package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// TestValidatorInit ensures all custom validations are registered
func TestValidatorInit(t *testing.T) {
	validate := validator.New()

	assert.NotPanics(t, func() {
		err := validate.RegisterValidation("url", validateURL)
		assert.NoError(t, err)
	})
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"Valid http URL", "http://example.com", false},
		{"Valid https URL", "https://example.com/path", false},
		{"Valid with port", "http://127.0.0.1:8000/api/image", false},
		{"Invalid scheme", "ftp://example.com", true},
		{"No scheme", "example.com", true},
		{"Invalid URL", "not-a-url", true},
		{"Empty", "", true},
		{"Invalid with fragment", "https://example.com#fragment", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	type TestStruct struct {
		Port    int    `validate:"required,min=1,max=65535"`
		Env     string `validate:"required,oneof=local production"`
		BaseURL string `validate:"required,url"`
	}

	test := TestStruct{
		Port:    70000,
		Env:     "staging",
		BaseURL: "invalid-url",
	}

	err := Validate(&test)
	assert.Error(t, err)

	errs := FormatError(err)
	assert.Len(t, errs, 3)

	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Error
	}

	assert.Equal(t, "Port must be at most 65535", fields["port"])
	assert.Equal(t, "Env must be one of: local, production", fields["env"])
	assert.Contains(t, fields["baseurl"], "Invalid URL format")
}

func TestFormatError_NonValidationError(t *testing.T) {
	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatError(errors.New("other")))
}
