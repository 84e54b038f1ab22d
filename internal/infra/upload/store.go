package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize caps resume uploads at 5 MB.
const MaxFileSize = 5 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

func AllowedFile(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Store writes resumes to a local directory and hands back the URL recorded
// on the lead. A real deployment swaps this for an object-storage client.
type Store struct {
	Dir     string
	BaseURL string
}

func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	if !AllowedFile(originalName) {
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(originalName))
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxFileSize)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.BaseURL + "/" + name, nil
}
