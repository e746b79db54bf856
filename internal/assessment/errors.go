package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyStarted = errors.New("assessment already started")
	ErrNotInProgress  = errors.New("assessment is not in progress")
)

// Fields checked when a session starts.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldConsent = "consent"
)

// ValidationError reports one unmet start precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidationErrors returns every ValidationError joined into err, in the
// order they were reported.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		var ve *ValidationError
		if errors.As(e, &ve) {
			out = append(out, ve)
		}
	}
	walk(err)
	return out
}

// InvalidFields lists the field names of ValidationErrors(err).
func InvalidFields(err error) []string {
	var fields []string
	for _, ve := range ValidationErrors(err) {
		fields = append(fields, ve.Field)
	}
	return fields
}
