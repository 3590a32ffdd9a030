package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the analytics backend.
type Config struct {
	Port               string // listen address, e.g. ":8000"
	AllowOrigin        string // dashboard origin allowed by CORS
	MaxUploadFiles     int    // files accepted per upload batch
	MaxMultipartMemory int64  // multipart parse buffer in bytes
}

// Load reads configuration from the environment, after loading a local
// .env file when one exists.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8000"
	}

	allowOrigin := os.Getenv("ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "http://localhost:3000"
	}

	maxFiles := 3
	if v := os.Getenv("MAX_UPLOAD_FILES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxFiles = n
		}
	}

	return &Config{
		Port:               port,
		AllowOrigin:        allowOrigin,
		MaxUploadFiles:     maxFiles,
		MaxMultipartMemory: 64 << 20,
	}
}
