package qa

import "fmt"

// QuestionDraft is the content of the ask form at submit time. An empty
// Category means none was picked.
type QuestionDraft struct {
	Body     string
	Category Category
}

// Validate reports ErrIncompleteQuestion when either field is missing.
func (d QuestionDraft) Validate() error {
	if Blank(d.Body) || d.Category == "" {
		return ErrIncompleteQuestion
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, d.Category)
	}
	return nil
}

// AnswerDraft is a reply typed under one question.
type AnswerDraft struct {
	QuestionID int
	Body       string
}

func (d AnswerDraft) Validate() error {
	if Blank(d.Body) {
		return ErrEmptyAnswer
	}
	return nil
}
