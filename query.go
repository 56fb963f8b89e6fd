package yatabl

// IsTagged reports whether v carries a tag, whatever its identifier.
// A nil pointer is never tagged.
func IsTagged[T any](v *T) bool {
	_, _, ok := lookup(v)
	return ok
}

// IsTaggedAs reports whether v carries a tag whose identifier equals id.
// IsTaggedAs(Anonymous, v) matches anonymous tags only.
func IsTaggedAs[T any](id Identifier, v *T) bool {
	meta, _, ok := lookup(v)
	return ok && meta.id == id
}

// IsTaggedOneOf reports whether v is tagged with any of ids.
func IsTaggedOneOf[T any](v *T, ids ...Identifier) bool {
	meta, _, ok := lookup(v)
	if !ok {
		return false
	}
	for _, id := range ids {
		if meta.id == id {
			return true
		}
	}
	return false
}

// GetIdentifier returns the identifier v was tagged with, or Anonymous for an
// anonymous tag. Calling it on an untagged value is a contract violation and
// returns a *ContractError matching ErrNotTagged.
func GetIdentifier[T any](v *T) (Identifier, error) {
	meta, _, ok := lookup(v)
	if !ok {
		return Anonymous, notTagged("GetIdentifier", v)
	}
	return meta.id, nil
}

// Untag returns the value the tag was attached to, which is v itself. The tag
// is left in place; Untag only recovers the structural value. Calling it on
// an untagged value returns a *ContractError matching ErrNotTagged.
func Untag[T any](v *T) (*T, error) {
	_, carrier, ok := lookup(v)
	if !ok {
		return nil, notTagged("Untag", v)
	}
	return carrier, nil
}

func notTagged[T any](op string, v *T) *ContractError {
	if v == nil {
		return contractErrorf(op, ErrNotTagged, "nil %T", v)
	}
	return contractErrorf(op, ErrNotTagged, "%T %p", v, v)
}
