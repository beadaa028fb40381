package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"take5/internal/domain"
)

// ErrReportNotFound is returned by LoadReport for an unknown id.
var ErrReportNotFound = errors.New("report not found")

// ReportFileStore keeps simulation reports under a directory.
type ReportFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewReportFileStore returns a store rooted at dir.
func NewReportFileStore(dir string) *ReportFileStore { return &ReportFileStore{dir: dir} }

// SaveReport writes r to <dir>/<id>.json and returns the path.
func (s *ReportFileStore) SaveReport(r domain.Report) (string, error) {
	if r.ID == "" {
		return "", errors.New("report has no id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	path := s.path(r.ID)
	if err := writeJSON(path, r, 0o644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

// LoadReport reads the report saved under id.
func (s *ReportFileStore) LoadReport(id string) (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.Report
	ok, err := readJSON(s.path(id), &r)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load report: %w", err)
	}
	if !ok {
		return domain.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	return r, nil
}

func (s *ReportFileStore) path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id)+".json")
}
