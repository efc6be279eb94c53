package qa

import "errors"

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrIncompleteQuestion = errors.New("question and category are required")
	ErrEmptyAnswer        = errors.New("answer cannot be empty")
)
