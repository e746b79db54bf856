package assessment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/disc"
)

// State is the navigation state of a session.
type State int

const (
	StateNotStarted State = iota // Intake form not yet accepted
	StateInProgress              // Answering the question at Index()
	StateCompleted               // Submitted; terminal
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Submission is handed to the presentation layer when a session completes.
type Submission struct {
	ID          string
	RawAnswers  []disc.Answer
	Respondent  disc.Respondent
	SubmittedAt time.Time
}

// Session walks one respondent through a catalog. A completed session is
// not reused; create a new one to reassess.
type Session struct {
	cat        *catalog.Catalog
	collector  *Collector
	state      State
	index      int
	respondent disc.Respondent

	now   func() time.Time
	newID func() string
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator overrides the submission ID source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// NewSession creates a not-started session over cat.
func NewSession(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		cat:       cat,
		collector: NewCollector(cat),
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates the intake form and moves to the first question.
// Every unmet condition is reported, joined into one error.
func (s *Session) Start(respondent disc.Respondent, consent bool) error {
	if s.state != StateNotStarted {
		return ErrAlreadyStarted
	}

	var errs []error
	if strings.TrimSpace(respondent.Name) == "" {
		errs = append(errs, &ValidationError{Field: FieldName, Reason: "name is required"})
	}
	email := strings.TrimSpace(respondent.Email)
	if email == "" || !strings.Contains(email, "@") {
		errs = append(errs, &ValidationError{Field: FieldEmail, Reason: "a valid email address is required"})
	}
	if !consent {
		errs = append(errs, &ValidationError{Field: FieldConsent, Reason: "consent is required to proceed"})
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.respondent = disc.Respondent{
		Name:  strings.TrimSpace(respondent.Name),
		Email: email,
	}
	s.state = StateInProgress
	s.index = 0
	return nil
}

// SelectMostLikely records the "most like me" pick on any question.
func (s *Session) SelectMostLikely(questionID int, c disc.Category) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	return s.collector.SetMostLikely(questionID, c)
}

// SelectLeastLikely records the "least like me" pick on any question.
func (s *Session) SelectLeastLikely(questionID int, c disc.Category) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	return s.collector.SetLeastLikely(questionID, c)
}

// CanNext reports whether Next would advance.
func (s *Session) CanNext() bool {
	if s.state != StateInProgress || s.index+1 >= s.cat.Size() {
		return false
	}
	q, err := s.cat.Get(s.index)
	if err != nil {
		return false
	}
	return s.collector.IsFullyAnswered(q.ID)
}

// Next advances one question. It returns false and leaves the state
// unchanged when the current question is not fully answered or is the last.
func (s *Session) Next() bool {
	if !s.CanNext() {
		return false
	}
	s.index++
	return true
}

// CanPrevious reports whether Previous would move back.
func (s *Session) CanPrevious() bool {
	return s.state == StateInProgress && s.index > 0
}

// Previous moves back one question. It returns false on the first question.
func (s *Session) Previous() bool {
	if !s.CanPrevious() {
		return false
	}
	s.index--
	return true
}

// CanSubmit reports whether Submit would complete the session: the current
// question is the last one and every question in the catalog is answered.
func (s *Session) CanSubmit() bool {
	return s.state == StateInProgress && s.IsLast() && s.collector.IsComplete()
}

// Submit completes the session and returns the handoff record.
func (s *Session) Submit() (Submission, bool) {
	if !s.CanSubmit() {
		return Submission{}, false
	}
	s.state = StateCompleted
	return Submission{
		ID:          s.newID(),
		RawAnswers:  s.collector.Answers(),
		Respondent:  s.respondent,
		SubmittedAt: s.now().UTC(),
	}, true
}

// State returns the navigation state.
func (s *Session) State() State {
	return s.state
}

// Index returns the current question index (meaningful while in progress).
func (s *Session) Index() int {
	return s.index
}

// IsLast reports whether the current question is the last in the catalog.
func (s *Session) IsLast() bool {
	return s.index == s.cat.Size()-1
}

// Current returns the question at the current index while in progress.
func (s *Session) Current() (catalog.Question, bool) {
	if s.state != StateInProgress {
		return catalog.Question{}, false
	}
	q, err := s.cat.Get(s.index)
	if err != nil {
		return catalog.Question{}, false
	}
	return q, true
}

// CurrentAnswer returns the answer for the current question.
func (s *Session) CurrentAnswer() disc.Answer {
	q, ok := s.Current()
	if !ok {
		return disc.Answer{}
	}
	return s.collector.AnswerFor(q.ID)
}

// Answered returns how many questions are fully answered.
func (s *Session) Answered() int {
	n := 0
	for _, a := range s.collector.Answers() {
		if a.IsFullyAnswered() {
			n++
		}
	}
	return n
}

// Respondent returns the accepted respondent details.
func (s *Session) Respondent() disc.Respondent {
	return s.respondent
}

// Catalog returns the catalog the session runs over.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Collector exposes the session's answers for read access.
func (s *Session) Collector() *Collector {
	return s.collector
}
