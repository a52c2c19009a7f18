package models

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// TokenCheckResponse reports whether the resolved bearer token was accepted
// upstream. Always served with HTTP 200; Status carries the outcome.
type TokenCheckResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
	Error   any            `json:"error,omitempty"`
}
