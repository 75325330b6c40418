package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrations_HaveUpAndDown(t *testing.T) {
	t.Parallel()

	for name, fsys := range map[string]fs.FS{"postgres": Postgres(), "sqlite": SQLite()} {
		entries, err := fs.ReadDir(fsys, ".")
		if err != nil {
			t.Fatalf("%s: read dir: %v", name, err)
		}
		if len(entries) == 0 {
			t.Fatalf("%s: no migrations embedded", name)
		}
		for _, e := range entries {
			body, err := fs.ReadFile(fsys, e.Name())
			if err != nil {
				t.Fatalf("%s/%s: %v", name, e.Name(), err)
			}
			s := string(body)
			if !strings.Contains(s, "-- +goose Up") || !strings.Contains(s, "-- +goose Down") {
				t.Errorf("%s/%s: missing goose annotations", name, e.Name())
			}
		}
	}
}
