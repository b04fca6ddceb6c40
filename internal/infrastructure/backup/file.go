// Package backup keeps the local JSON copy of every contact submission.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"elextrio-site/internal/domain/contact"
)

// FileStore appends to a JSON array on disk by rewriting the whole file.
// Appends within one process are serialized; separate processes can still race.
type FileStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

func (s *FileStore) Path() string { return s.path }

// Append records sub with a millisecond id and an ISO-8601 timestamp and returns the entry.
func (s *FileStore) Append(sub contact.Submission) (contact.BackupEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return contact.BackupEntry{}, err
	}

	now := s.now().UTC()
	e := contact.BackupEntry{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Timestamp: now.Format("2006-01-02T15:04:05.000Z07:00"),
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Company:   sub.Company,
		Message:   sub.Message,
	}
	entries = append(entries, e)

	if err := s.write(entries); err != nil {
		return contact.BackupEntry{}, err
	}
	return e, nil
}

func (s *FileStore) All() ([]contact.BackupEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load creates the file holding [] when it does not exist yet.
func (s *FileStore) load() ([]contact.BackupEntry, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.write([]contact.BackupEntry{}); err != nil {
			return nil, err
		}
		return []contact.BackupEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup file: %w", err)
	}

	entries := []contact.BackupEntry{}
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse backup file %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *FileStore) write(entries []contact.BackupEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace backup file: %w", err)
	}
	return nil
}
