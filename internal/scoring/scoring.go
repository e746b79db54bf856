// Package scoring turns raw answers into a DISC profile.
//
// Only the "most likely" selection of each answer is tallied. The "least
// likely" selection is kept with the stored record but does not move the
// profile. Ties between categories are broken by the canonical order
// D, I, S, C.
package scoring

import (
	"sort"
	"strings"

	"github.com/abhisek/disc/internal/disc"
)

// Result is the derived profile for one answer set. It is never persisted.
type Result struct {
	Primary disc.Category
	// Secondary is disc.None when the second-ranked category scored zero.
	Secondary disc.Category
	Profile   disc.Profile
	// Ranking lists all four categories, highest count first.
	Ranking   [4]disc.Category
	Narrative string
}

// HasSecondary reports whether a secondary style was identified.
func (r Result) HasSecondary() bool {
	return r.Secondary.IsSet()
}

// Score computes the profile, ranking and narrative for answers.
func Score(answers []disc.Answer) Result {
	var profile disc.Profile
	for _, a := range answers {
		if a.MostLikely.Valid() {
			profile.Add(a.MostLikely)
		}
	}

	ranked := disc.AllCategories()
	sort.SliceStable(ranked, func(i, j int) bool {
		return profile.Get(ranked[i]) > profile.Get(ranked[j])
	})

	r := Result{
		Primary: ranked[0],
		Profile: profile,
	}
	copy(r.Ranking[:], ranked)
	if profile.Get(ranked[1]) > 0 {
		r.Secondary = ranked[1]
	}
	r.Narrative = narrative(r.Primary, r.Secondary)
	return r
}

func narrative(primary, secondary disc.Category) string {
	style, _ := disc.StyleFor(primary)

	var b strings.Builder
	b.WriteString(style.Description)
	if secondary.IsSet() {
		sec, _ := disc.StyleFor(secondary)
		b.WriteString(" With ")
		b.WriteString(string(secondary))
		b.WriteString(" as your secondary style, you also tend to ")
		b.WriteString(sec.Tendency)
		b.WriteString(".")
	}
	return b.String()
}
