package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrTypeNotAllowed is returned for filenames whose extension is
	// outside the allowed set. Its text is part of the upload API's
	// error contract.
	ErrTypeNotAllowed = errors.New("File type not allowed")
	// ErrNoFilename is returned when the client filename is empty.
	ErrNoFilename = errors.New("No selected file")
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"mp3":  true,
	"wav":  true,
}

// Handler stores and serves uploaded media files under a single directory.
type Handler struct {
	dir string
}

func New(dir string) (*Handler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Handler{dir: dir}, nil
}

func (h *Handler) Dir() string {
	return h.dir
}

// Accept validates and stores one uploaded file, returning the name it was
// stored under. The stored name joins a fresh random token to a sanitized
// version of the client filename, so repeat uploads of the same name never
// collide.
func (h *Handler) Accept(r io.Reader, clientName string) (string, error) {
	if strings.TrimSpace(clientName) == "" {
		return "", ErrNoFilename
	}
	if !AllowedFile(clientName) {
		return "", ErrTypeNotAllowed
	}

	name := uuid.NewString() + "_" + sanitize(clientName)

	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store upload %s: %w", name, err)
	}
	return name, nil
}

// Resolve maps a client-supplied name to a path inside the upload
// directory. The name is reduced to its base component first, so request
// paths can never escape the directory.
func (h *Handler) Resolve(name string) (string, error) {
	clean := filepath.Base(filepath.Clean("/" + name))
	if clean == "/" || clean == "." {
		return "", os.ErrNotExist
	}

	path := filepath.Join(h.dir, clean)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// AllowedFile reports whether the final dot-delimited segment of name is
// an allowed extension, case-insensitively.
func AllowedFile(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return false
	}
	return allowedExtensions[strings.ToLower(name[i+1:])]
}

// sanitize strips directory components and replaces anything outside a
// conservative character set.
func sanitize(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), ".")
}
