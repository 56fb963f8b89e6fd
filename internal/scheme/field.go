package scheme

import (
	"fmt"

	"github.com/sufield/yatabl"
	"github.com/sufield/yatabl/internal/config"
)

// Field is a single check applied to one key of a record.
type Field struct {
	Name     string
	Kind     string
	Required bool
	OneOf    []any
}

func newField(sec config.FieldSection) Field {
	kind := sec.Kind
	if kind == "" {
		kind = config.KindAny
	}
	return Field{
		Name:     sec.Name,
		Kind:     kind,
		Required: sec.Required,
		OneOf:    sec.OneOf,
	}
}

// check returns a non-empty reason when the record fails the field.
func (f Field) check(r yatabl.Record) string {
	v, present := r[f.Name]
	if !present {
		if f.Required {
			return "required field is missing"
		}
		return ""
	}
	if v == nil {
		if f.Required {
			return "required field is null"
		}
		return ""
	}
	if !matchesKind(f.Kind, v) {
		return fmt.Sprintf("expected %s, got %T", f.Kind, v)
	}
	if len(f.OneOf) > 0 && !oneOf(v, f.OneOf) {
		return fmt.Sprintf("value %v is not one of %v", v, f.OneOf)
	}
	return ""
}

func matchesKind(kind string, v any) bool {
	switch kind {
	case config.KindString:
		_, ok := v.(string)
		return ok
	case config.KindNumber:
		_, ok := config.AsNumber(v)
		return ok
	case config.KindBool:
		_, ok := v.(bool)
		return ok
	case config.KindList:
		switch v.(type) {
		case []any, yatabl.List:
			return true
		}
		return false
	case config.KindRecord:
		switch v.(type) {
		case map[string]any, yatabl.Record:
			return true
		}
		return false
	default:
		return true
	}
}

func oneOf(v any, allowed []any) bool {
	if s, ok := v.(string); ok {
		for _, a := range allowed {
			if as, ok := a.(string); ok && as == s {
				return true
			}
		}
		return false
	}
	n, ok := config.AsNumber(v)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if an, ok := config.AsNumber(a); ok && an == n {
			return true
		}
	}
	return false
}
