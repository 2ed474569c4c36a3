// Package file persists line records as whole flat files. It is invoked only
// at process start and shutdown; it never interleaves with catalog mutations.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	RoomsFile  = "rooms.dat"
	GuestsFile = "guests.dat"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create data directory %v: %w", dir, err)
	}

	return &Store{dir: dir}, nil
}

// Load returns the file's lines in order, dropping empty ones. A missing
// file is a first run, not an error: it yields an empty record set.
func (s *Store) Load(name string) ([]string, error) {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read %v: %w", path, err)
	}

	var lines []string

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// Save replaces the whole file with the given records, one per line.
func (s *Store) Save(name string, lines []string) error {
	path := filepath.Join(s.dir, name)

	var b strings.Builder

	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), filePerm); err != nil {
		return fmt.Errorf("write %v: %w", path, err)
	}

	return nil
}
