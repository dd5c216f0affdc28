package core

// Secret wraps a sensitive string so it cannot leak through logging or
// serialization. String, GoString, JSON, and text marshaling all produce
// a redacted placeholder; only Expose returns the real value.
type Secret struct {
	value string
}

// NewSecret creates a Secret from a string value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// String returns a redacted placeholder. Implements fmt.Stringer.
func (s Secret) String() string {
	return "[REDACTED]"
}

// GoString returns a redacted placeholder for %#v formatting.
func (s Secret) GoString() string {
	return "core.Secret{[REDACTED]}"
}

// MarshalJSON returns a redacted JSON string.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// MarshalText returns a redacted text representation, covering YAML and
// other text-based encoders.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// Expose returns the actual secret value. Use only where the value is
// genuinely needed, such as an Authorization header.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether the secret holds no value.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
