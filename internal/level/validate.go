package level

import (
	"fmt"
	"strings"
)

// TableError collects all validation failures for a requirement table.
type TableError struct {
	Errors []string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("requirement table invalid: %s", strings.Join(e.Errors, "; "))
}

func (e *TableError) add(msg string) {
	e.Errors = append(e.Errors, msg)
}

// ValidateTable checks a requirement table for the invariants the classifier
// relies on: levels numbered 1..N contiguously ascending, every flag in
// [a-z0-9_]+, and no flag repeated within or across levels (each level must
// be strictly additive). Returns nil if valid, or a *TableError listing all
// problems.
func ValidateTable(table []Requirement) error {
	te := &TableError{}

	if len(table) == 0 {
		te.add("table has no levels")
		return te
	}

	seen := make(map[string]int)
	for i, req := range table {
		want := i + 1
		if req.Level != want {
			te.add(fmt.Sprintf("entry %d: level %d, expected %d (levels must be contiguous from 1)", i, req.Level, want))
		}
		if len(req.Flags) == 0 {
			te.add(fmt.Sprintf("level %d: no required flags", req.Level))
		}
		for _, tok := range req.Flags {
			if !validToken(tok) {
				te.add(fmt.Sprintf("level %d: flag %q is not a valid token", req.Level, tok))
			}
			if prev, dup := seen[tok]; dup {
				te.add(fmt.Sprintf("level %d: flag %q already required by level %d", req.Level, tok, prev))
			} else {
				seen[tok] = req.Level
			}
		}
	}

	if len(te.Errors) == 0 {
		return nil
	}
	return te
}

func validToken(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
		if !ok {
			return false
		}
	}
	return true
}
