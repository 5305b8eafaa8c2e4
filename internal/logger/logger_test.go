package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFormatFieldValue(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want string
	}{
		{"Method", "POST", ansi.Purple + "POST" + ansi.Reset},
		{"Success status", "200", ansi.Green + "200" + ansi.Reset},
		{"Redirect status", "303", ansi.Yellow + "303" + ansi.Reset},
		{"Server error status", "502", ansi.Red + "502" + ansi.Reset},
		{"Not a status", "42", "42"},
		{"Plain text", "cat.png", "cat.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFieldValue(ansi, tt.val))
		})
	}
}

func TestConsoleWriterWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(NewConsoleWriter(&buf, false))

	l.Info().Str("result", "42").Msg("Upload successful")

	out := buf.String()
	assert.Contains(t, out, "Upload successful")
	assert.Contains(t, out, "result=42")
	assert.NotContains(t, out, "\033[")
}
