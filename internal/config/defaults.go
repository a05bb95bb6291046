package config

import "time"

const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8000
	DefaultLogLevel = "info"

	DefaultAPIPrefix = "/api/v1"

	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 60 * time.Second
	DefaultIdleTimeout  = 120 * time.Second

	// DefaultMaxUploadBytes caps the size of uploaded tabular files.
	DefaultMaxUploadBytes = 256 << 20 // 256MB
)
