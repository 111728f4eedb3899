package conjugatio

import (
	"errors"
	"fmt"
)

var (
	ErrNoLatinSection = errors.New("no Latin section")
	ErrTableNotFound  = errors.New("conjugation table not found")
)

// LocateError reports that a structural anchor of the page is missing.
// It aborts reformatting of that page only.
type LocateError struct {
	Kind error
	Msg  string
}

func (e *LocateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *LocateError) Unwrap() error { return e.Kind }

func notFoundf(format string, args ...any) error {
	return &LocateError{Kind: ErrTableNotFound, Msg: fmt.Sprintf(format, args...)}
}
