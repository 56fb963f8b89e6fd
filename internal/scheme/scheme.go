// Package scheme builds yatables over records from configured schemes.
//
// A scheme is a named list of field checks. Its tagger validates a record and
// tags it with the scheme identifier when every check passes, so later code
// can ask "did this record pass Clone Trooper?" with a single lookup.
package scheme

import (
	"fmt"

	"github.com/sufield/yatabl"
	"github.com/sufield/yatabl/internal/config"
)

// Scheme is a configured tagging scheme.
type Scheme struct {
	// Name is the configured scheme name.
	Name string

	// ID is the identifier records passing the scheme are tagged with. It is
	// yatabl.Name(Name) unless the scheme is configured as a token.
	ID yatabl.Identifier

	Fields []Field

	tagger yatabl.Yatable[yatabl.Record, *yatabl.Record]
}

// New builds a scheme from its config section. The section is assumed to
// have passed config.Validate.
func New(sec config.SchemeSection) *Scheme {
	s := &Scheme{
		Name:   sec.Name,
		ID:     yatabl.Name(sec.Name),
		Fields: make([]Field, len(sec.Fields)),
	}
	if sec.Token {
		s.ID = yatabl.NewToken(sec.Name)
	}
	for i, f := range sec.Fields {
		s.Fields[i] = newField(f)
	}
	s.tagger = yatabl.TagFuncAs(s.ID, s.validator)
	return s
}

// Validate checks r against every field and returns a *ValidationError
// listing all failures, or nil.
func (s *Scheme) Validate(r *yatabl.Record) error {
	if r == nil {
		return fmt.Errorf("scheme %q: %w", s.Name, ErrNilRecord)
	}

	var failures []FieldFailure
	for _, f := range s.Fields {
		if reason := f.check(*r); reason != "" {
			failures = append(failures, FieldFailure{Field: f.Name, Reason: reason})
		}
	}
	if len(failures) > 0 {
		return &ValidationError{Scheme: s.Name, Failures: failures}
	}
	return nil
}

// Tagger returns the scheme's yatable: it validates a record and, on
// success, tags that same record with s.ID.
func (s *Scheme) Tagger() yatabl.Yatable[yatabl.Record, *yatabl.Record] {
	return s.tagger
}

func (s *Scheme) validator(r *yatabl.Record) (*yatabl.Record, error) {
	if err := s.Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}
