package level

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write table: %v", err)
	}
	return path
}

func TestLoadTableEmptyPath(t *testing.T) {
	table, err := LoadTable("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(table, Requirements) {
		t.Errorf("expected built-in table for empty path")
	}
}

func TestLoadTableFromYAML(t *testing.T) {
	path := writeTable(t, "levels:\n"+
		"  - level: 1\n"+
		"    flags: [lm, sse2]\n"+
		"  - level: 2\n"+
		"    flags: [avx]\n")
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(table))
	}
	if table[1].Level != 2 || table[1].Flags[0] != "avx" {
		t.Errorf("unexpected table contents: %+v", table)
	}
}

func TestLoadTableRejectsInvalid(t *testing.T) {
	path := writeTable(t, "levels:\n"+
		"  - level: 1\n"+
		"    flags: [lm]\n"+
		"  - level: 2\n"+
		"    flags: [lm]\n")
	if _, err := LoadTable(path); err == nil {
		t.Errorf("expected validation error for duplicate flag")
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestDefaultTableYAMLRoundTrip(t *testing.T) {
	path := writeTable(t, DefaultTableYAML())
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(table, Requirements) {
		t.Errorf("rendered table did not round-trip:\n%+v\nvs\n%+v", table, Requirements)
	}
}
