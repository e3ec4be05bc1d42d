package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationsAreWellFormed(t *testing.T) {
	t.Parallel()

	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("reading migrations dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one migration")
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") {
			t.Fatalf("unexpected non-sql file: %s", name)
		}
		data, err := os.ReadFile(filepath.Join("migrations", name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		content := string(data)
		if !strings.Contains(content, "-- +goose Up") {
			t.Fatalf("%s is missing a goose Up section", name)
		}
		if !strings.Contains(content, "-- +goose Down") {
			t.Fatalf("%s is missing a goose Down section", name)
		}
	}
}
