package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store is the object-storage port used for registration logos. The
// local-disk backend serves production today; a bucket-backed one can
// replace it without touching callers.
type Store interface {
	Upload(path string, r io.Reader) error
	PublicURL(path string) string
}

type Local struct {
	Root    string // upload directory on disk
	BaseURL string // public origin, e.g. https://hub.example.com
}

func (l *Local) Upload(path string, r io.Reader) error {
	path = filepath.Clean("/" + path)[1:] // no escaping the root
	dst := filepath.Join(l.Root, path)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Sync()
}

func (l *Local) PublicURL(path string) string {
	return strings.TrimSuffix(l.BaseURL, "/") + "/uploads/" + strings.TrimPrefix(path, "/")
}
