package persistence

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationURL(t *testing.T) {
	cases := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost:5432/helpdesk?sslmode=disable", want: "pgx5://u:p@localhost:5432/helpdesk?sslmode=disable"},
		{dsn: "postgresql://localhost/helpdesk", want: "pgx5://localhost/helpdesk"},
		{dsn: "pgx5://localhost/helpdesk", want: "pgx5://localhost/helpdesk"},
		{dsn: "host=localhost dbname=helpdesk", wantErr: true},
	}
	for _, tc := range cases {
		got, err := migrationURL(tc.dsn)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.dsn)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%q: got %q, %v", tc.dsn, got, err)
		}
	}
}

func TestEmbeddedMigrationsPaired(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	ups, downs := 0, 0
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, ".up.sql"):
			ups++
		case strings.HasSuffix(n, ".down.sql"):
			downs++
		}
	}
	if ups == 0 || ups != downs {
		t.Fatalf("unpaired migrations: %d up, %d down", ups, downs)
	}
}
