// Package results is the read side of stored assessments: it rehydrates
// stored raw answers into scored entries and filters them for the admin
// dashboard.
package results

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/disc/internal/assessment"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/scoring"
	"github.com/abhisek/disc/internal/store"
)

// Entry is one stored result with its recomputed profile.
type Entry struct {
	// Index is the 1-based position in insertion order.
	Index  int
	Record store.StoredResult
	Result scoring.Result
}

// DisplaySecondary returns the secondary style for display, falling back to
// Dominance when none was identified.
func (e Entry) DisplaySecondary() disc.Category {
	if e.Result.HasSecondary() {
		return e.Result.Secondary
	}
	return disc.Dominance
}

// Record converts a finished submission into its stored form.
func Record(sub assessment.Submission) store.StoredResult {
	return store.StoredResult{
		ID:          sub.ID,
		RawAnswers:  sub.RawAnswers,
		Respondent:  sub.Respondent,
		SubmittedAt: sub.SubmittedAt,
	}
}

// Rehydrate scores every record. Scores are never read from storage.
func Rehydrate(records []store.StoredResult) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Index:  i + 1,
			Record: r,
			Result: scoring.Score(r.RawAnswers),
		}
	}
	return entries
}

// Lister is the subset of store.ResultRepo needed to load entries.
type Lister interface {
	ListAll(ctx context.Context) ([]store.StoredResult, error)
}

// Load lists every stored record and rehydrates it.
func Load(ctx context.Context, repo Lister) ([]Entry, error) {
	records, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return Rehydrate(records), nil
}

// Filter selects entries by primary style. The zero value matches all.
type Filter struct {
	Primary disc.Category
}

// All matches every entry.
var All = Filter{}

// ParseFilter parses "all" (or empty) or a category letter.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return All, nil
	}
	c, err := disc.ParseCategory(s)
	if err != nil {
		return All, fmt.Errorf("parse filter: %w", err)
	}
	return Filter{Primary: c}, nil
}

// IsAll reports whether f matches every entry.
func (f Filter) IsAll() bool { return !f.Primary.IsSet() }

func (f Filter) String() string {
	if f.IsAll() {
		return "all"
	}
	return string(f.Primary)
}

// Match reports whether e passes the filter.
func (f Filter) Match(e Entry) bool {
	return f.IsAll() || e.Result.Primary == f.Primary
}

// FilterByPrimary returns the entries that pass f, preserving order.
func FilterByPrimary(entries []Entry, f Filter) []Entry {
	if f.IsAll() {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Distribution counts entries by primary style.
func Distribution(entries []Entry) disc.Profile {
	var p disc.Profile
	for _, e := range entries {
		p.Add(e.Result.Primary)
	}
	return p
}
