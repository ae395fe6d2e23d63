package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadFilename returns a collision-safe name for an uploaded file,
// keeping the original extension.
func UploadFilename(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

// EnsureDir creates the directory if it does not exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
