package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage writes images into the public images directory served
// by the static file route.
type LocalStorage struct {
	dir       string
	publicURL string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{
		dir:       dir,
		publicURL: "/images",
	}
}

func (s *LocalStorage) Save(filename string, data []byte, _ string) (*StoredImage, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write image: %w", err)
	}
	return &StoredImage{
		Filename: filename,
		URL:      s.publicURL + "/" + filename,
	}, nil
}

func (s *LocalStorage) Delete(filename string) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}
	path := filepath.Join(s.dir, filename)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
