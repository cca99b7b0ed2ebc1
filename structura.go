package structura

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

// Migration is a single versioned schema change shipped with the binary.
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrations returns the embedded up migrations ordered by version.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(MigrationsFS, "migrations")
	if err != nil {
		return nil, err
	}

	var out []Migration
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		body, err := fs.ReadFile(MigrationsFS, "migrations/"+name)
		if err != nil {
			return nil, err
		}

		version, _, _ := strings.Cut(name, "_")
		out = append(out, Migration{
			Version: version,
			Name:    strings.TrimSuffix(name, ".up.sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}
