package overlay

import (
	"io/fs"
	"path/filepath"

	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/logging"
	"github.com/firefly-engineering/hydra-pin/internal/system"
)

// Store loads and saves one overlay file.
type Store struct {
	Path string
	FS   system.FileSystem
}

// NewStore creates a Store for the overlay file at path.
func NewStore(path string, fsys system.FileSystem) *Store {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	return &Store{Path: path, FS: fsys}
}

// Load reads the overlay file. A missing file is an empty overlay.
func (s *Store) Load() (*Overlay, error) {
	data, err := s.FS.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug("overlay file does not exist yet", "path", s.Path)
			return &Overlay{}, nil
		}
		return nil, errors.FileIO("read", s.Path, err)
	}

	o, err := Parse(data)
	if err != nil {
		return nil, errors.FileIO("parse", s.Path, err)
	}

	logging.Debug("loaded overlay", "path", s.Path, "packages", len(o.Packages))
	return o, nil
}

// Save renders o and overwrites the overlay file. The write is not atomic.
func (s *Store) Save(o *Overlay) error {
	text, err := o.Render()
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to render overlay", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." && !s.FS.Exists(dir) {
		if err := s.FS.MkdirAll(dir, 0755); err != nil {
			return errors.FileIO("create directory for", s.Path, err)
		}
	}

	if err := s.FS.WriteFile(s.Path, []byte(text), 0644); err != nil {
		return errors.FileIO("write", s.Path, err)
	}

	logging.Debug("saved overlay", "path", s.Path, "packages", len(o.Packages))
	return nil
}
