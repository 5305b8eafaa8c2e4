package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "Valid configuration",
			envVars: map[string]string{
				"PORT":        "8080",
				"APP_ENV":     "development",
				"BASE_URL":    "http://localhost:8080",
				"FORM_MEMORY": "10MB",
				"SESSION_TTL": "2h",
			},
			want: &Config{
				Port:       8080,
				Env:        "development",
				BaseURL:    "http://localhost:8080",
				FormMemory: 10 * 1024 * 1024,
				SessionTTL: 2 * time.Hour,
			},
		},
		{
			name: "Defaults",
			envVars: map[string]string{
				"PORT": "3000",
			},
			want: &Config{
				Port:       3000,
				Env:        "production",
				BaseURL:    "http://localhost",
				FormMemory: 32 * 1024 * 1024,
				SessionTTL: 24 * time.Hour,
			},
		},
		{
			name:    "SESSION_TTL without unit",
			envVars: map[string]string{"PORT": "3000", "SESSION_TTL": "3"},
			wantErr: true,
		},
		{
			name:    "Missing PORT",
			envVars: map[string]string{"APP_ENV": "development"},
			wantErr: true,
		},
		{
			name:    "Negative PORT",
			envVars: map[string]string{"PORT": "-8080"},
			wantErr: true,
		},
		{
			name:    "PORT out of range",
			envVars: map[string]string{"PORT": "70000"},
			wantErr: true,
		},
		{
			name:    "Invalid FORM_MEMORY",
			envVars: map[string]string{"PORT": "8080", "FORM_MEMORY": "invalid"},
			wantErr: true,
		},
		{
			name:    "Zero SESSION_TTL",
			envVars: map[string]string{"PORT": "8080", "SESSION_TTL": "0s"},
			wantErr: true,
		},
		{
			name:    "Unknown APP_ENV",
			envVars: map[string]string{"PORT": "8080", "APP_ENV": "staging"},
			wantErr: true,
		},
		{
			name:    "Invalid BASE_URL",
			envVars: map[string]string{"PORT": "8080", "BASE_URL": "ftp://example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"PORT", "APP_ENV", "BASE_URL", "FORM_MEMORY", "SESSION_TTL"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			got, err := NewConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		size    string
		want    int64
		wantErr bool
	}{
		{"Valid MB size", "25MB", 25 * 1024 * 1024, false},
		{"Valid GB size", "1GB", 1 * 1024 * 1024 * 1024, false},
		{"Invalid size", "invalid", 0, true},
		{"No suffix size", "25", 25 * 1024 * 1024, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSize(tt.size)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Env: "local"}).IsDevelopment())
	assert.True(t, (&Config{Env: "development"}).IsDevelopment())
	assert.False(t, (&Config{Env: "production"}).IsDevelopment())
}
