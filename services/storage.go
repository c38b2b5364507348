package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var uploadDir string

// InitStorage sets the root directory for uploaded files and makes sure it
// exists.
func InitStorage(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return err
	}
	uploadDir = abs
	return nil
}

// UploadPath builds an absolute path under the upload root and creates the
// parent directory.
func UploadPath(parts ...string) (string, error) {
	dst := filepath.Join(append([]string{uploadDir}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	return dst, nil
}

// PathToURL converts a stored filesystem path to the public serving URL,
// e.g. /data/uploads/thumbnails/1/cover.png -> /api/v1/uploads/thumbnails/1/cover.png.
func PathToURL(path string) string {
	if path == "" || uploadDir == "" {
		return ""
	}
	rel, err := filepath.Rel(uploadDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	return "/api/v1/uploads/" + filepath.ToSlash(rel)
}

var ErrPathEscapes = errors.New("path escapes upload directory")

// ResolveUpload maps a request path to an absolute file under the upload
// root, rejecting traversal outside it.
func ResolveUpload(relPath string) (string, error) {
	full := filepath.Join(uploadDir, filepath.FromSlash(relPath))
	full = filepath.Clean(full)
	if full != uploadDir && !strings.HasPrefix(full, uploadDir+string(os.PathSeparator)) {
		return "", ErrPathEscapes
	}
	return full, nil
}

// HashFile returns the hex sha256 of a stored file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
