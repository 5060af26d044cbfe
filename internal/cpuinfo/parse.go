package cpuinfo

import (
	"fmt"
	"strings"
)

// ParseErrorKind identifies why a cpuinfo blob could not be parsed.
type ParseErrorKind string

const (
	// KindEmptyInput — no text was supplied at all.
	KindEmptyInput ParseErrorKind = "empty_input"
	// KindMissingFlags — the blob contained no "flags" entry.
	KindMissingFlags ParseErrorKind = "missing_flags_field"
	// KindInvalidFormat — the flags value contained characters outside [a-z0-9_ ].
	KindInvalidFormat ParseErrorKind = "invalid_flags_format"
)

// ParseError is returned when a cpuinfo blob cannot be turned into a FlagSet.
// All three kinds are fatal: the parser does not guess or sanitize.
type ParseError struct {
	Kind   ParseErrorKind
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// FlagSet is the set of unique lowercase feature tokens reported by the CPU.
// INVARIANT: every token matches [a-z0-9_]+; never mutated after construction.
type FlagSet map[string]bool

// Has reports whether the CPU advertises the given feature token.
func (f FlagSet) Has(tok string) bool {
	return f[tok]
}

// ParseFlags extracts the "flags" field from a /proc/cpuinfo-style blob and
// returns it as a validated FlagSet. The blob is key : value lines, one pair
// per line; only the first "flags" line is consulted. Duplicate tokens
// collapse silently.
func ParseFlags(rawText string) (FlagSet, error) {
	if rawText == "" {
		return nil, &ParseError{Kind: KindEmptyInput, Detail: "no cpuinfo text supplied"}
	}

	value, found := fieldValue(rawText, "flags")
	if !found || value == "" {
		return nil, &ParseError{Kind: KindMissingFlags, Detail: `no "flags" entry in cpuinfo text`}
	}

	for _, r := range value {
		if !isFlagsChar(r) {
			return nil, &ParseError{
				Kind:   KindInvalidFormat,
				Detail: fmt.Sprintf("unexpected character %q in flags value", r),
			}
		}
	}

	set := make(FlagSet)
	for _, tok := range strings.Fields(value) {
		set[tok] = true
	}
	return set, nil
}

// ModelName returns the CPU's human-readable name from the first "model name"
// line, trimmed. Best-effort: an absent field yields "" and is not an error.
func ModelName(rawText string) string {
	value, _ := fieldValue(rawText, "model name")
	return value
}

// fieldValue scans key : value lines for the first line whose trimmed key
// equals key, returning its trimmed value.
func fieldValue(rawText, key string) (string, bool) {
	for _, line := range strings.Split(rawText, "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(k) == key {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// isFlagsChar reports whether r is allowed in a raw flags value.
// Anything outside [a-z0-9_ ] means the token comparison cannot be trusted.
func isFlagsChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == ' ':
		return true
	}
	return false
}
