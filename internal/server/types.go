package server

// APIResponse represents the structure of a standard API response.
// It contains a success flag, a message, and optional data.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthData is the payload of the health endpoint.
type HealthData struct {
	Status         string `json:"status"`
	Sessions       int    `json:"sessions"`
	UploadEndpoint string `json:"upload_endpoint"`
}
