package disc

// Answer holds a respondent's two selections for one question.
type Answer struct {
	QuestionID  int      `json:"questionId"`
	MostLikely  Category `json:"mostLikely"`
	LeastLikely Category `json:"leastLikely"`
}

// IsFullyAnswered reports whether both selections are set.
func (a Answer) IsFullyAnswered() bool {
	return a.MostLikely.IsSet() && a.LeastLikely.IsSet()
}

// Respondent identifies the person taking the assessment.
type Respondent struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile holds the per-category counts derived from a set of answers.
type Profile struct {
	D int `json:"D"`
	I int `json:"I"`
	S int `json:"S"`
	C int `json:"C"`
}

// Get returns the count for c. Unknown categories count as zero.
func (p Profile) Get(c Category) int {
	switch c {
	case Dominance:
		return p.D
	case Influence:
		return p.I
	case Steadiness:
		return p.S
	case Conscientiousness:
		return p.C
	default:
		return 0
	}
}

// Add increments the count for c. Unknown categories are ignored.
func (p *Profile) Add(c Category) {
	switch c {
	case Dominance:
		p.D++
	case Influence:
		p.I++
	case Steadiness:
		p.S++
	case Conscientiousness:
		p.C++
	}
}

// Total returns the sum of all four counts.
func (p Profile) Total() int {
	return p.D + p.I + p.S + p.C
}

// Percent returns c's share of the total as a whole percentage, rounded
// down. It is zero when the profile is empty.
func (p Profile) Percent(c Category) int {
	total := p.Total()
	if total == 0 {
		return 0
	}
	return p.Get(c) * 100 / total
}
