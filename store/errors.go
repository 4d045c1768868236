package store

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrIssueNotFound        = errors.New("issue not found")
	ErrContributionNotFound = errors.New("contribution not found")
	ErrPostNotFound         = errors.New("post not found")
)

// ValidationError reports every field that failed validation. A call
// that returns one has made no change to the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
