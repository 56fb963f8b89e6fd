package config

import (
	"errors"
	"fmt"
)

// Validate checks a scheme file.
//
// Ensures:
//   - Version is 0 (unset) or 1
//   - At least one scheme is defined
//   - Scheme names are non-empty and unique
//   - Every scheme has at least one field; field names are non-empty and
//     unique within their scheme
//   - Field kinds are known
//   - one_of is only used on string and number fields, with values of that kind
func Validate(cfg FileConfig) error {
	if cfg.Version != 0 && cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	if len(cfg.Schemes) == 0 {
		return errors.New("schemes must contain at least one scheme")
	}

	seen := make(map[string]struct{}, len(cfg.Schemes))
	for i, s := range cfg.Schemes {
		if s.Name == "" {
			return fmt.Errorf("schemes[%d].name must be set", i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("schemes[%d]: duplicate scheme name %q", i, s.Name)
		}
		seen[s.Name] = struct{}{}

		if err := validateFields(s); err != nil {
			return fmt.Errorf("scheme %q: %w", s.Name, err)
		}
	}
	return nil
}

func validateFields(s SchemeSection) error {
	if len(s.Fields) == 0 {
		return errors.New("fields must contain at least one field")
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("fields[%d].name must be set", i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("fields[%d]: duplicate field %q", i, f.Name)
		}
		seen[f.Name] = struct{}{}

		kind := f.Kind
		if kind == "" {
			kind = KindAny
		}
		switch kind {
		case KindAny, KindString, KindNumber, KindBool, KindList, KindRecord:
		default:
			return fmt.Errorf("field %q: unknown kind %q", f.Name, f.Kind)
		}

		if len(f.OneOf) == 0 {
			continue
		}
		for j, v := range f.OneOf {
			if !oneOfMatchesKind(kind, v) {
				return fmt.Errorf("field %q: one_of[%d] = %v is not a %s", f.Name, j, v, kind)
			}
		}
	}
	return nil
}

func oneOfMatchesKind(kind string, v any) bool {
	switch kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		_, ok := AsNumber(v)
		return ok
	default:
		return false
	}
}
