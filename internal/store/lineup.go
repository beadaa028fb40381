package store

import (
	"errors"
	"fmt"

	"take5/internal/domain"
)

// LoadLineup reads a JSON array of lineup entries from path.
func LoadLineup(path string) ([]domain.LineupEntry, error) {
	var entries []domain.LineupEntry
	ok, err := readJSON(path, &entries)
	if err != nil {
		return nil, fmt.Errorf("read lineup %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("lineup %s does not exist", path)
	}
	if len(entries) == 0 {
		return nil, errors.New("lineup is empty")
	}
	return entries, nil
}
