package yatabl

import "fmt"

type identifierKind uint8

const (
	kindAnonymous identifierKind = iota
	kindName
	kindToken
)

// token is the unique allocation behind a token Identifier. It must not be
// zero-sized: distinct zero-size allocations may share an address.
type token struct {
	description string
}

// Identifier names a tagging scheme. It is either anonymous (the zero value),
// a name compared by string equality, or a token compared by identity.
//
// Identifiers are comparable with ==, which is the only comparison the
// library performs. There is no normalization and no hierarchy: Name("Rex")
// and Name("rex") are different schemes.
type Identifier struct {
	kind identifierKind
	name string
	tok  *token
}

// Anonymous is the identifier of a tag attached without a name.
var Anonymous Identifier

// Name returns an identifier compared by string equality. The empty string is
// a valid name and is distinct from Anonymous.
func Name(name string) Identifier {
	return Identifier{kind: kindName, name: name}
}

// NewToken returns an identifier equal only to itself. The description is
// used for display and plays no part in comparisons; two tokens created with
// the same description are different identifiers.
func NewToken(description string) Identifier {
	return Identifier{kind: kindToken, tok: &token{description: description}}
}

// IsAnonymous reports whether id is the anonymous identifier.
func (id Identifier) IsAnonymous() bool {
	return id.kind == kindAnonymous
}

// IsToken reports whether id was created by NewToken.
func (id Identifier) IsToken() bool {
	return id.kind == kindToken
}

// Name returns the string of a named identifier. ok is false for anonymous
// identifiers and tokens.
func (id Identifier) Name() (name string, ok bool) {
	if id.kind != kindName {
		return "", false
	}
	return id.name, true
}

// String renders the identifier for logs and CLI output.
func (id Identifier) String() string {
	switch id.kind {
	case kindName:
		return id.name
	case kindToken:
		return fmt.Sprintf("token(%s)", id.tok.description)
	default:
		return "<anonymous>"
	}
}
