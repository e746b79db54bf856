package results

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/disc/internal/assessment"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/store"
)

// record builds a stored result whose most-likely picks are most, in order.
func record(name string, most ...disc.Category) store.StoredResult {
	answers := make([]disc.Answer, len(most))
	for i, c := range most {
		answers[i] = disc.Answer{QuestionID: i + 1, MostLikely: c, LeastLikely: disc.Conscientiousness}
	}
	return store.StoredResult{
		RawAnswers:  answers,
		Respondent:  disc.Respondent{Name: name, Email: name + "@example.com"},
		SubmittedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sampleRecords() []store.StoredResult {
	return []store.StoredResult{
		record("ann", "D", "D", "I"),
		record("bob", "S", "S", "S"),
		record("cat", "I", "D", "D"),
		record("dan", "C", "I"),
	}
}

func TestRehydrateRecomputesScores(t *testing.T) {
	entries := Rehydrate(sampleRecords())
	require.Len(t, entries, 4)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Index)
	}
	assert.Equal(t, disc.Dominance, entries[0].Result.Primary)
	assert.Equal(t, disc.Influence, entries[0].Result.Secondary)
	assert.Equal(t, disc.Steadiness, entries[1].Result.Primary)
	assert.Equal(t, disc.Dominance, entries[2].Result.Primary)
	// Tie between I and C resolves to I.
	assert.Equal(t, disc.Influence, entries[3].Result.Primary)
	assert.Equal(t, disc.Conscientiousness, entries[3].Result.Secondary)
}

func TestDisplaySecondaryDefaultsToDominance(t *testing.T) {
	entries := Rehydrate([]store.StoredResult{record("solo", "S", "S", "S")})
	require.Len(t, entries, 1)

	e := entries[0]
	assert.False(t, e.Result.HasSecondary())
	assert.Equal(t, disc.None, e.Result.Secondary)
	assert.Equal(t, disc.Dominance, e.DisplaySecondary())
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"", All},
		{"all", All},
		{"ALL", All},
		{"d", Filter{Primary: disc.Dominance}},
		{" C ", Filter{Primary: disc.Conscientiousness}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFilter("x")
	assert.ErrorIs(t, err, disc.ErrUnknownCategory)
}

func TestFilterByPrimary(t *testing.T) {
	entries := Rehydrate(sampleRecords())

	all := FilterByPrimary(entries, All)
	assert.Equal(t, entries, all)

	dom := FilterByPrimary(entries, Filter{Primary: disc.Dominance})
	require.Len(t, dom, 2)
	assert.Equal(t, "ann", dom[0].Record.Respondent.Name)
	assert.Equal(t, "cat", dom[1].Record.Respondent.Name)
	// Original numbering is kept.
	assert.Equal(t, 3, dom[1].Index)

	assert.Empty(t, FilterByPrimary(entries, Filter{Primary: disc.Conscientiousness}))
	assert.Empty(t, FilterByPrimary(nil, All))
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, "all", All.String())
	assert.Equal(t, "S", Filter{Primary: disc.Steadiness}.String())
}

func TestDistribution(t *testing.T) {
	p := Distribution(Rehydrate(sampleRecords()))
	assert.Equal(t, disc.Profile{D: 2, I: 1, S: 1, C: 0}, p)
	assert.Equal(t, disc.Profile{}, Distribution(nil))
}

func TestRecordFromSubmission(t *testing.T) {
	sub := assessment.Submission{
		ID:          "id-1",
		RawAnswers:  []disc.Answer{{QuestionID: 1, MostLikely: disc.Influence, LeastLikely: disc.Dominance}},
		Respondent:  disc.Respondent{Name: "Ada", Email: "ada@example.com"},
		SubmittedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	}
	r := Record(sub)
	assert.Equal(t, sub.ID, r.ID)
	assert.Equal(t, sub.RawAnswers, r.RawAnswers)
	assert.Equal(t, sub.Respondent, r.Respondent)
	assert.Equal(t, sub.SubmittedAt, r.SubmittedAt)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	repo := store.NewResultRepo(store.NewMemoryBlobStore(), nil)
	for _, r := range sampleRecords() {
		require.NoError(t, repo.Append(ctx, r))
	}

	entries, err := Load(ctx, repo)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "dan", entries[3].Record.Respondent.Name)
	assert.Equal(t, disc.Influence, entries[3].Result.Primary)
}

type brokenLister struct{}

func (brokenLister) ListAll(context.Context) ([]store.StoredResult, error) {
	return nil, &store.StorageError{Op: "read", Err: errors.New("gone")}
}

func TestLoadPropagatesStorageError(t *testing.T) {
	_, err := Load(context.Background(), brokenLister{})
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}
