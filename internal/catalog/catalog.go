package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/disc/internal/disc"
)

// ErrOutOfRange is returned for an index or question ID outside the catalog.
var ErrOutOfRange = errors.New("out of range")

// OptionsPerQuestion is fixed: one option per DISC category.
const OptionsPerQuestion = 4

// Option is one selectable statement within a question.
type Option struct {
	Text     string
	Category disc.Category
}

// Question is a single forced-choice item.
type Question struct {
	ID      int
	Prompt  string
	Options [OptionsPerQuestion]Option
}

// OptionFor returns the option carrying category c.
func (q Question) OptionFor(c disc.Category) (Option, bool) {
	for _, o := range q.Options {
		if o.Category == c {
			return o, true
		}
	}
	return Option{}, false
}

// Catalog is an immutable ordered list of questions.
type Catalog struct {
	questions []Question
	index     map[int]int
}

// New builds a catalog after validating the questions.
func New(questions []Question) (*Catalog, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	c := &Catalog{
		questions: make([]Question, len(questions)),
		index:     make(map[int]int, len(questions)),
	}
	copy(c.questions, questions)
	for i, q := range c.questions {
		c.index[q.ID] = i
	}
	return c, nil
}

// Size returns the number of questions.
func (c *Catalog) Size() int {
	return len(c.questions)
}

// Get returns the question at index.
func (c *Catalog) Get(index int) (Question, error) {
	if index < 0 || index >= len(c.questions) {
		return Question{}, fmt.Errorf("question index %d: %w", index, ErrOutOfRange)
	}
	return c.questions[index], nil
}

// IndexOf returns the position of the question with the given ID.
func (c *Catalog) IndexOf(questionID int) (int, error) {
	i, ok := c.index[questionID]
	if !ok {
		return 0, fmt.Errorf("question id %d: %w", questionID, ErrOutOfRange)
	}
	return i, nil
}

// Questions returns a copy of all questions in order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// validateQuestions checks ids, prompts and category coverage.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "catalog has no questions")
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d (index %d)", q.ID, i)
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate id", prefix))
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: empty prompt", prefix))
		}

		covered := make(map[disc.Category]int, OptionsPerQuestion)
		for _, o := range q.Options {
			if !o.Category.Valid() {
				errs = append(errs, fmt.Sprintf("%s: option %q has invalid category %q", prefix, o.Text, string(o.Category)))
				continue
			}
			covered[o.Category]++
		}
		for _, cat := range disc.AllCategories() {
			if n := covered[cat]; n != 1 {
				errs = append(errs, fmt.Sprintf("%s: category %s appears %d times, want 1", prefix, cat, n))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
