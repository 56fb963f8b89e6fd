package scheme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilRecord is reported when a scheme is asked to validate a nil record.
var ErrNilRecord = errors.New("record is nil")

// FieldFailure describes why one field failed a scheme.
type FieldFailure struct {
	Field  string
	Reason string
}

// ValidationError lists every field of a record that failed a scheme. It is
// the error a scheme's yatable returns, so tagging never happens alongside it.
type ValidationError struct {
	Scheme   string
	Failures []FieldFailure
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return fmt.Sprintf("scheme %q: %s", e.Scheme, strings.Join(parts, "; "))
}
