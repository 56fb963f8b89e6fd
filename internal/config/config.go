package config

// Field kinds understood by the scheme validators.
const (
	KindAny    = "any"
	KindString = "string"
	KindNumber = "number"
	KindBool   = "bool"
	KindList   = "list"
	KindRecord = "record"
)

// FieldSection describes one field a scheme checks.
type FieldSection struct {
	// Name is the record key.
	Name string `yaml:"name"`

	// Kind is one of the Kind* constants. Empty means KindAny.
	Kind string `yaml:"kind,omitempty"`

	// Required fails validation when the key is missing.
	Required bool `yaml:"required,omitempty"`

	// OneOf restricts string and number fields to an enumeration.
	OneOf []any `yaml:"one_of,omitempty"`
}

// SchemeSection describes a tagging scheme: the identifier records receive
// and the checks they must pass to receive it.
type SchemeSection struct {
	// Name is the scheme identifier, and its display name for token schemes.
	Name string `yaml:"name"`

	// Token makes the scheme identifier a unique token instead of a name,
	// so nothing outside the scheme can produce or query a matching tag by
	// spelling its name.
	Token bool `yaml:"token,omitempty"`

	Fields []FieldSection `yaml:"fields"`
}

// FileConfig represents a yatabl scheme file.
//
// The config format is versioned to support future evolution without breaking changes.
type FileConfig struct {
	// Version is the config file format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	Schemes []SchemeSection `yaml:"schemes"`
}
