package assessment

import (
	"fmt"

	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/disc"
)

// Collector holds at most one Answer per question of its catalog.
type Collector struct {
	cat     *catalog.Catalog
	answers map[int]*disc.Answer
}

// NewCollector creates an empty collector for cat.
func NewCollector(cat *catalog.Catalog) *Collector {
	return &Collector{
		cat:     cat,
		answers: make(map[int]*disc.Answer),
	}
}

// SetMostLikely records the "most like me" pick for a question.
func (c *Collector) SetMostLikely(questionID int, category disc.Category) error {
	a, err := c.upsert(questionID, category)
	if err != nil {
		return err
	}
	a.MostLikely = category
	return nil
}

// SetLeastLikely records the "least like me" pick for a question.
func (c *Collector) SetLeastLikely(questionID int, category disc.Category) error {
	a, err := c.upsert(questionID, category)
	if err != nil {
		return err
	}
	a.LeastLikely = category
	return nil
}

func (c *Collector) upsert(questionID int, category disc.Category) (*disc.Answer, error) {
	if _, err := c.cat.IndexOf(questionID); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, fmt.Errorf("question %d: %w: %q", questionID, disc.ErrUnknownCategory, string(category))
	}
	a, ok := c.answers[questionID]
	if !ok {
		a = &disc.Answer{QuestionID: questionID}
		c.answers[questionID] = a
	}
	return a, nil
}

// AnswerFor returns the current answer, or an unset one without storing it.
func (c *Collector) AnswerFor(questionID int) disc.Answer {
	if a, ok := c.answers[questionID]; ok {
		return *a
	}
	return disc.Answer{QuestionID: questionID}
}

// IsFullyAnswered reports whether both picks are set for the question.
func (c *Collector) IsFullyAnswered(questionID int) bool {
	return c.AnswerFor(questionID).IsFullyAnswered()
}

// IsComplete reports whether every question in the catalog is fully answered.
func (c *Collector) IsComplete() bool {
	for _, q := range c.cat.Questions() {
		if !c.IsFullyAnswered(q.ID) {
			return false
		}
	}
	return true
}

// Answers returns the touched answers in catalog order.
func (c *Collector) Answers() []disc.Answer {
	out := make([]disc.Answer, 0, len(c.answers))
	for _, q := range c.cat.Questions() {
		if a, ok := c.answers[q.ID]; ok {
			out = append(out, *a)
		}
	}
	return out
}
