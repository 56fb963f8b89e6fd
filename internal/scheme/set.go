package scheme

import (
	"fmt"

	"github.com/sufield/yatabl"
	"github.com/sufield/yatabl/internal/config"
	"github.com/sufield/yatabl/internal/debug"
)

// Set is an ordered collection of schemes loaded from one file.
type Set struct {
	schemes []*Scheme
	byName  map[string]*Scheme
}

// Build validates cfg and constructs its schemes in file order.
func Build(cfg config.FileConfig) (*Set, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid scheme config: %w", err)
	}

	set := &Set{
		schemes: make([]*Scheme, 0, len(cfg.Schemes)),
		byName:  make(map[string]*Scheme, len(cfg.Schemes)),
	}
	for _, sec := range cfg.Schemes {
		s := New(sec)
		set.schemes = append(set.schemes, s)
		set.byName[s.Name] = s
	}

	debug.GetLogger().Debugw("scheme set built", "schemes", len(set.schemes))
	return set, nil
}

// Schemes returns the schemes in file order.
func (s *Set) Schemes() []*Scheme {
	return s.schemes
}

// Lookup returns the scheme with the given name.
func (s *Set) Lookup(name string) (*Scheme, bool) {
	sc, ok := s.byName[name]
	return sc, ok
}

// Failure records a scheme a record did not pass.
type Failure struct {
	Scheme string
	Err    error
}

// Result is the outcome of applying a Set to one record.
type Result struct {
	// Tag is the identifier the record carries afterwards. It is only
	// meaningful when Tagged is true.
	Tag    yatabl.Identifier
	Tagged bool

	// Passed lists the schemes the record passed, in order.
	Passed []string

	// Failed lists the schemes the record failed, in order.
	Failed []Failure
}

// Apply runs every scheme's tagger over r in order. Each passing scheme
// re-tags r, so the resulting tag is that of the last passing scheme. A
// record that passes nothing keeps whatever tag it had before.
func (s *Set) Apply(r *yatabl.Record) Result {
	var res Result
	for _, sc := range s.schemes {
		if _, err := sc.Tagger()(r); err != nil {
			res.Failed = append(res.Failed, Failure{Scheme: sc.Name, Err: err})
			continue
		}
		res.Passed = append(res.Passed, sc.Name)
	}

	if id, err := yatabl.GetIdentifier(r); err == nil {
		res.Tag = id
		res.Tagged = true
	}

	debug.GetLogger().Debugw("schemes applied",
		"passed", len(res.Passed),
		"failed", len(res.Failed),
		"tag", res.Tag.String(),
	)
	return res
}

// Matches reports whether r is currently tagged by any of the named schemes.
// Unknown names never match.
func (s *Set) Matches(r *yatabl.Record, names ...string) bool {
	ids := make([]yatabl.Identifier, 0, len(names))
	for _, name := range names {
		if sc, ok := s.byName[name]; ok {
			ids = append(ids, sc.ID)
		}
	}
	return yatabl.IsTaggedOneOf(r, ids...)
}
