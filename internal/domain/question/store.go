package question

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	platformerrors "voxterview-server-go/internal/platform/errors"
	"voxterview-server-go/internal/platform/logging"
)

// Store holds the question records loaded from a line-delimited JSON file.
type Store struct {
	records []Record
	logger  *logging.Logger
}

// NewStore loads records from path. A missing or partially corrupt file is
// not fatal: bad lines are skipped individually and a missing file yields an
// empty store, matching the "no questions" terminal outcome downstream.
func NewStore(path string, logger *logging.Logger) *Store {
	store := &Store{logger: logger}

	file, err := os.Open(path)
	if err != nil {
		logger.ErrorTag("Store", "question database not found: %s", path)
		return store
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var record Record
		if err := sonic.UnmarshalString(line, &record); err != nil {
			skipped++
			logger.WarnTag("Store", "invalid JSON skipped: %.80s", line)
			continue
		}
		store.records = append(store.records, record)
	}
	if err := scanner.Err(); err != nil {
		logger.ErrorTag("Store", "reading %s stopped early: %v", path, err)
	}

	logger.InfoTag("Store", "loaded %d questions from %s (%d skipped)", len(store.records), path, skipped)
	return store
}

// NewStoreFromRecords builds a store from in-memory records (tests, seeds).
func NewStoreFromRecords(records []Record, logger *logging.Logger) *Store {
	return &Store{records: records, logger: logger}
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}

// Sample returns up to limit records matching role and difficulty, in random
// order. It returns an empty slice, never an error, when nothing matches.
func (s *Store) Sample(role, difficulty string, limit int) ([]Record, error) {
	if limit < 0 {
		return nil, platformerrors.New(platformerrors.KindStore, "sample",
			fmt.Sprintf("negative limit: %d", limit))
	}

	var filtered []Record
	for _, record := range s.records {
		if record.Matches(role, difficulty) {
			filtered = append(filtered, record)
		}
	}

	if s.logger != nil {
		s.logger.InfoTag("Store", "filter role=%s difficulty=%s matched %d", role, difficulty, len(filtered))
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// SampleAll is the reduced-argument retrieval used as a retrieval fallback:
// all matching records in random order, no truncation.
func (s *Store) SampleAll(role, difficulty string) ([]Record, error) {
	return s.Sample(role, difficulty, 0)
}
