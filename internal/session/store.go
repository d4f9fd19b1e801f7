package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fjacquet/creditlens/internal/fileutils"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/validation"

	"gopkg.in/yaml.v3"
)

const tokenFileMode = 0600

// Store persists a Session as a YAML file readable only by its owner.
type Store struct {
	path   string
	logger logging.Logger
	now    func() time.Time
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{path: path, logger: logger, now: time.Now}
}

// Path returns the token file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored session. A missing file yields an anonymous session.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session file %s: %w", s.path, err)
	}

	if info, err := os.Stat(s.path); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode()); err != nil {
			s.logger.WithError(err).Warn("Session file is readable by other users", logging.F(logging.FieldFile, s.path))
		}
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to decode session file %s: %w", s.path, err)
	}
	return sess, nil
}

// Save writes sess to disk, stamping SavedAt.
func (s *Store) Save(sess Session) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	sess.SavedAt = s.now().UTC()
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := fileutils.WriteFile(s.path, data, tokenFileMode); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.path, err)
	}

	s.logger.Debug("Saved session", logging.F(logging.FieldFile, s.path))
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file %s: %w", s.path, err)
	}
	s.logger.Debug("Cleared session", logging.F(logging.FieldFile, s.path))
	return nil
}
