package qa

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Answer is a community reply embedded in a Question.
type Answer struct {
	ID        int
	Body      string
	Timestamp string
}

// Question is a single anonymous post. Timestamp is display text ("2 hours
// ago"), not a parsed time.
type Question struct {
	ID          int
	Body        string
	Category    Category
	Timestamp   string
	AnswerCount int
	Answers     []Answer
}

// Clone returns a copy that shares no slices with q.
func (q Question) Clone() Question {
	q.Answers = append([]Answer(nil), q.Answers...)
	return q
}

// AnswerLabel renders the answer count the way the cards show it.
func (q Question) AnswerLabel() string {
	return Pluralize(q.AnswerCount)
}

// Pluralize formats an answer count.
func Pluralize(count int) string {
	if count == 1 {
		return "1 answer"
	}
	return fmt.Sprintf("%d answers", count)
}

// Filter returns the questions matching filter, preserving order. FilterAll
// matches everything; any other value must be a known category.
func Filter(questions []Question, filter string) ([]Question, error) {
	if filter == FilterAll {
		return append([]Question(nil), questions...), nil
	}
	category := Category(filter)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, filter)
	}
	matches := []Question{}
	for _, q := range questions {
		if q.Category == category {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

// Truncate caps value at limit runes. A non-positive limit disables the cap.
func Truncate(value string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}

// Blank reports whether value has no visible characters.
func Blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
