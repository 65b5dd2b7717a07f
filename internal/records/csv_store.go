package records

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

// CSVStore is an append-only record store backed by one CSV file. Appends are
// serialized with a mutex so concurrent sessions cannot interleave rows; no
// cross-session ordering beyond append completion is promised.
type CSVStore struct {
	path   string
	logger *logging.Logger

	mu sync.Mutex
}

// NewCSVStore creates a store writing to path. The file and its header are
// created lazily on first use.
func NewCSVStore(path string, logger *logging.Logger) *CSVStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &CSVStore{path: path, logger: logger}
}

// Append writes one record as a new row. The row layout follows Header();
// columns the record does not set are left empty.
func (s *CSVStore) Append(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureHeader(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	defer f.Close()

	header := Header()
	row := make([]string, len(header))
	for i, col := range header {
		row[i] = rec[col]
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	if err := f.Sync(); err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	s.logger.Debug("records: row appended", "path", s.path)
	return nil
}

// ListAll returns every stored row in append order.
func (s *CSVStore) ListAll(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Old files may predate the callback columns.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, &StorageError{Op: "list", Err: err}
	}

	var out []Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &StorageError{Op: "list", Err: err}
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		out = append(out, rec)
	}
	if out == nil {
		out = []Record{}
	}
	return out, nil
}

// ensureHeader creates the file with the canonical header if it is missing or
// empty. Caller holds the mutex.
func (s *CSVStore) ensureHeader() error {
	info, err := os.Stat(s.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &StorageError{Op: "init", Err: err}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &StorageError{Op: "init", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header()); err != nil {
		return &StorageError{Op: "init", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Op: "init", Err: err}
	}
	s.logger.Info("records: store initialized", "path", s.path)
	return nil
}
