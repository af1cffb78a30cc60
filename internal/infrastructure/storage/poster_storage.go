package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// LocalPosterStorage implements domain.PosterStorage on a local directory
type LocalPosterStorage struct {
	dir string
}

// NewLocalPosterStorage creates the poster directory if needed
func NewLocalPosterStorage(dir string) (*LocalPosterStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create poster directory: %w", err)
	}
	return &LocalPosterStorage{dir: dir}, nil
}

// Save implements domain.PosterStorage. Existing filenames are rejected so a
// poster cannot be silently overwritten by another movie's upload.
func (s *LocalPosterStorage) Save(filename string, r io.Reader) error {
	path := s.path(filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return domain.ErrPosterExists
		}
		return fmt.Errorf("failed to create poster file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write poster file: %w", err)
	}
	if n == 0 {
		os.Remove(path)
		return domain.ErrEmptyFile
	}

	return nil
}

// Open implements domain.PosterStorage
func (s *LocalPosterStorage) Open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return f, nil
}

// Remove implements domain.PosterStorage
func (s *LocalPosterStorage) Remove(filename string) error {
	err := os.Remove(s.path(filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Exists implements domain.PosterStorage
func (s *LocalPosterStorage) Exists(filename string) bool {
	_, err := os.Stat(s.path(filename))
	return err == nil
}

// path confines the filename to the poster directory.
func (s *LocalPosterStorage) path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

var _ domain.PosterStorage = (*LocalPosterStorage)(nil)
