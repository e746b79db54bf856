package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/disc/internal/disc"
)

// ResultsKey is the fixed blob key holding the whole result list.
const ResultsKey = "disc_assessment_results"

// ErrStorageUnavailable indicates the blob store could not be read or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageError wraps a blob store failure. It matches ErrStorageUnavailable
// with errors.Is and also unwraps to the underlying cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorageUnavailable, e.Err} }

// StoredResult is the durable record of one completed assessment. It holds
// raw answers only; profiles are recomputed whenever records are read.
type StoredResult struct {
	ID          string          `json:"id,omitempty"`
	RawAnswers  []disc.Answer   `json:"rawAnswers"`
	Respondent  disc.Respondent `json:"userInfo"`
	SubmittedAt time.Time       `json:"timestamp"`
}

// ResultRepo appends, lists and clears stored results in a BlobStore.
type ResultRepo struct {
	mu     sync.Mutex
	blobs  BlobStore
	logger *slog.Logger
}

// NewResultRepo creates a ResultRepo. A nil logger discards log output.
func NewResultRepo(blobs BlobStore, logger *slog.Logger) *ResultRepo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResultRepo{blobs: blobs, logger: logger}
}

// Append adds r to the end of the stored list.
func (r *ResultRepo) Append(ctx context.Context, result StoredResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	list = append(list, result)

	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := r.blobs.Set(ctx, ResultsKey, string(b)); err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	r.logger.Debug("result appended", "id", result.ID, "count", len(list))
	return nil
}

// ListAll returns every stored result in insertion order. An absent or
// unreadable value yields an empty list.
func (r *ResultRepo) ListAll(ctx context.Context) ([]StoredResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// ClearAll removes every stored result. Confirmation is the caller's job.
func (r *ResultRepo) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.blobs.Remove(ctx, ResultsKey); err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	r.logger.Info("all results cleared")
	return nil
}

func (r *ResultRepo) load(ctx context.Context) ([]StoredResult, error) {
	raw, ok, err := r.blobs.Get(ctx, ResultsKey)
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	if !ok {
		return []StoredResult{}, nil
	}
	list, err := decodeResults(raw)
	if err != nil {
		r.logger.Warn("discarding unreadable stored results", "key", ResultsKey, "error", err)
		return []StoredResult{}, nil
	}
	return list, nil
}

func decodeResults(raw string) ([]StoredResult, error) {
	if err := validateResultsJSON(raw); err != nil {
		return nil, err
	}
	var list []StoredResult
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	if list == nil {
		list = []StoredResult{}
	}
	return list, nil
}
