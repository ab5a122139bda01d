package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Repository reads a plain-text wordlist, one password per line, UTF-8
// encoded. Lines are whitespace-trimmed and blank lines skipped.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load returns the wordlist as a set. A missing file is not an error: it
// degrades to an empty set and scoring proceeds without common-password
// detection.
func (r *Repository) Load() (map[string]struct{}, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", r.path).Msg("wordlist not found, using empty set")
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}

	log.Debug().Str("path", r.path).Int("entries", len(set)).Msg("wordlist loaded")
	return set, nil
}
