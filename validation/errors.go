package validation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalid = errors.New("invalid")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every failed rule of one input.
type ValidationError struct {
	Items []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, item := range e.Items {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(item.Message)
	}
	return b.String()
}

// Add appends a message unless the same field already carries it.
func (e *ValidationError) Add(field, msg string) {
	for _, item := range e.Items {
		if item.Field == field && item.Message == msg {
			return
		}
	}
	e.Items = append(e.Items, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for _, item := range other.Items {
		e.Add(item.Field, item.Message)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (e *ValidationError) HasAny() bool {
	return e != nil && len(e.Items) > 0
}

func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		out = append(out, item.Message)
	}
	return out
}

// Err returns nil when nothing was added, so callers can `return v.Err()`.
func (e *ValidationError) Err() error {
	if !e.HasAny() {
		return nil
	}
	return e
}

// New builds a ValidationError holding one message.
func New(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}
