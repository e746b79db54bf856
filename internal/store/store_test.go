package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/disc/internal/disc"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Blobs() == nil {
		t.Fatal("expected non-nil blob store")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// In-memory databases report "memory" for journal_mode; see
		// TestOpenFileUsesWAL.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "disc.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSQLiteBlobStore(t *testing.T) {
	s := openTestStore(t)
	blobs := s.Blobs()
	ctx := context.Background()

	if _, ok, err := blobs.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("get absent: ok=%v err=%v", ok, err)
	}

	if err := blobs.Set(ctx, "k", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := blobs.Set(ctx, "k", "two"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := blobs.Get(ctx, "k")
	if err != nil || !ok || v != "two" {
		t.Fatalf("get = %q, %v, %v; want two, true, nil", v, ok, err)
	}

	if err := blobs.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := blobs.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if _, ok, _ := blobs.Get(ctx, "k"); ok {
		t.Fatal("expected key to be gone")
	}
}

func sampleResult(id string, most disc.Category) StoredResult {
	answers := make([]disc.Answer, 0, 12)
	for q := 1; q <= 12; q++ {
		answers = append(answers, disc.Answer{QuestionID: q, MostLikely: most, LeastLikely: disc.Steadiness})
	}
	return StoredResult{
		ID:          id,
		RawAnswers:  answers,
		Respondent:  disc.Respondent{Name: "Ada", Email: "ada@example.com"},
		SubmittedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestResultRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := NewResultRepo(s.Blobs(), nil)
	ctx := context.Background()

	list, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	if err := repo.Append(ctx, sampleResult("a", disc.Dominance)); err != nil {
		t.Fatalf("append a: %v", err)
	}
	if err := repo.Append(ctx, sampleResult("b", disc.Influence)); err != nil {
		t.Fatalf("append b: %v", err)
	}

	list, err = repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 results, got %d", len(list))
	}
	if list[0].ID != "a" || list[1].ID != "b" {
		t.Errorf("order = %s,%s; want a,b", list[0].ID, list[1].ID)
	}
	got := list[1]
	want := sampleResult("b", disc.Influence)
	if !got.SubmittedAt.Equal(want.SubmittedAt) {
		t.Errorf("timestamp = %v, want %v", got.SubmittedAt, want.SubmittedAt)
	}
	if got.Respondent != want.Respondent {
		t.Errorf("respondent = %+v, want %+v", got.Respondent, want.Respondent)
	}
	for i := range want.RawAnswers {
		if got.RawAnswers[i] != want.RawAnswers[i] {
			t.Errorf("answer %d = %+v, want %+v", i, got.RawAnswers[i], want.RawAnswers[i])
		}
	}
}

func TestResultRepoWireFormat(t *testing.T) {
	blobs := NewMemoryBlobStore()
	repo := NewResultRepo(blobs, nil)
	ctx := context.Background()

	r := sampleResult("", disc.Conscientiousness)
	r.RawAnswers[0].LeastLikely = disc.None
	if err := repo.Append(ctx, r); err != nil {
		t.Fatalf("append: %v", err)
	}

	raw, ok, _ := blobs.Get(ctx, ResultsKey)
	if !ok {
		t.Fatal("expected value under results key")
	}
	for _, want := range []string{
		`"rawAnswers":[{"questionId":1,"mostLikely":"C","leastLikely":null}`,
		`"userInfo":{"name":"Ada","email":"ada@example.com"}`,
		`"timestamp":"2026-01-02T03:04:05Z"`,
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("stored JSON missing %s\n%s", want, raw)
		}
	}
	if strings.Contains(raw, `"id"`) {
		t.Errorf("empty id should be omitted: %s", raw)
	}
}

func TestResultRepoUnreadableValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{oops"},
		{"not an array", `{"rawAnswers":[]}`},
		{"missing userInfo", `[{"rawAnswers":[],"timestamp":"2026-01-02T03:04:05Z"}]`},
		{"bad category", `[{"rawAnswers":[{"questionId":1,"mostLikely":"X"}],"userInfo":{"name":"a","email":"a@b"},"timestamp":"2026-01-02T03:04:05Z"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blobs := NewMemoryBlobStore()
			ctx := context.Background()
			if err := blobs.Set(ctx, ResultsKey, tt.raw); err != nil {
				t.Fatal(err)
			}
			repo := NewResultRepo(blobs, nil)

			list, err := repo.ListAll(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(list) != 0 {
				t.Fatalf("expected empty list, got %d", len(list))
			}

			// The next append starts a fresh list.
			if err := repo.Append(ctx, sampleResult("x", disc.Dominance)); err != nil {
				t.Fatalf("append: %v", err)
			}
			list, _ = repo.ListAll(ctx)
			if len(list) != 1 {
				t.Fatalf("expected 1 result after append, got %d", len(list))
			}
		})
	}
}

func TestResultRepoToleratesExtraFields(t *testing.T) {
	blobs := NewMemoryBlobStore()
	ctx := context.Background()
	raw := `[{"answers":{"D":1},"rawAnswers":[{"questionId":1,"mostLikely":"D","leastLikely":"C"}],` +
		`"userInfo":{"name":"Ada","email":"ada@example.com"},"timestamp":"2026-01-02T03:04:05.000Z"}]`
	if err := blobs.Set(ctx, ResultsKey, raw); err != nil {
		t.Fatal(err)
	}

	list, err := NewResultRepo(blobs, nil).ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 result, got %d", len(list))
	}
	if list[0].RawAnswers[0].MostLikely != disc.Dominance {
		t.Errorf("mostLikely = %v, want D", list[0].RawAnswers[0].MostLikely)
	}
}

func TestResultRepoClearAll(t *testing.T) {
	s := openTestStore(t)
	repo := NewResultRepo(s.Blobs(), nil)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Append(ctx, sampleResult(id, disc.Steadiness)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after clear, got %d", len(list))
	}
	// Clearing an empty store is fine.
	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("clear empty: %v", err)
	}
}

type failingBlobStore struct{ err error }

func (f failingBlobStore) Get(context.Context, string) (string, bool, error) {
	return "", false, f.err
}
func (f failingBlobStore) Set(context.Context, string, string) error { return f.err }
func (f failingBlobStore) Remove(context.Context, string) error    { return f.err }

func TestResultRepoStorageUnavailable(t *testing.T) {
	cause := errors.New("disk on fire")
	repo := NewResultRepo(failingBlobStore{err: cause}, nil)
	ctx := context.Background()

	checks := map[string]error{
		"append": repo.Append(ctx, sampleResult("a", disc.Dominance)),
		"clear":  repo.ClearAll(ctx),
	}
	_, listErr := repo.ListAll(ctx)
	checks["list"] = listErr

	for op, err := range checks {
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Errorf("%s: expected ErrStorageUnavailable, got %v", op, err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("%s: expected underlying cause, got %v", op, err)
		}
		var se *StorageError
		if !errors.As(err, &se) {
			t.Errorf("%s: expected *StorageError, got %T", op, err)
		}
	}
}
