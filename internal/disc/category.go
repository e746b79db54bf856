package disc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a value is not one of D, I, S or C.
var ErrUnknownCategory = errors.New("unknown DISC category")

// Category is one of the four DISC behavioral categories.
type Category string

const (
	None              Category = ""
	Dominance         Category = "D"
	Influence         Category = "I"
	Steadiness        Category = "S"
	Conscientiousness Category = "C"
)

// AllCategories returns the categories in canonical priority order.
// Ties in scoring are broken by this order.
func AllCategories() []Category {
	return []Category{Dominance, Influence, Steadiness, Conscientiousness}
}

// ParseCategory parses a single-letter category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D":
		return Dominance, nil
	case "I":
		return Influence, nil
	case "S":
		return Steadiness, nil
	case "C":
		return Conscientiousness, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// IsSet reports whether c holds a category.
func (c Category) IsSet() bool {
	return c != None
}

// Valid reports whether c is one of the four categories.
func (c Category) Valid() bool {
	switch c {
	case Dominance, Influence, Steadiness, Conscientiousness:
		return true
	default:
		return false
	}
}

// Priority returns the tie-break rank of c (0 is highest), or -1.
func (c Category) Priority() int {
	for i, cat := range AllCategories() {
		if cat == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string {
	if c == None {
		return "-"
	}
	return string(c)
}

// MarshalJSON encodes an unset category as null.
func (c Category) MarshalJSON() ([]byte, error) {
	if c == None {
		return []byte("null"), nil
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON accepts null or one of the four category letters.
func (c *Category) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = None
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
