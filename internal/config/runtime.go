package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves SENSEI_RUNTIME_PATH before the .env file is loaded.
// Relative paths are kept relative to the working directory, which suits container images.
func GetRuntimePath() string {
	path := os.Getenv("SENSEI_RUNTIME_PATH")
	if path == "" {
		path = ".sensei"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
