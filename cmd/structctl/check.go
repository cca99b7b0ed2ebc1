package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dangerclosesec/structura/internal/auth/graph"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report cycles, dangling edges and isolated roles per structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := pgxpool.New(cmd.Context(), dsn())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		snapshots, err := loadSnapshots(cmd.Context(), pool)
		if err != nil {
			return err
		}

		problems := 0
		for _, s := range snapshots {
			r := s.Check()
			problems += r.Problems()
			r.Write(cmd.OutOrStdout(), verbose)
		}

		if problems > 0 {
			return fmt.Errorf("%d integrity problem(s) found", problems)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Hierarchy is consistent.")
		return nil
	},
}

// snapshot is one structure's roles and edges as stored.
type snapshot struct {
	StructureID uuid.UUID
	Name        string
	Roles       []uuid.UUID
	Edges       []graph.Edge
}

type report struct {
	StructureID uuid.UUID
	Name        string
	Cycles      [][]uuid.UUID
	Dangling    []uuid.UUID
	Isolated    []uuid.UUID
}

// Problems counts findings that violate hierarchy invariants. Isolated roles
// are legal and only reported.
func (r report) Problems() int {
	return len(r.Cycles) + len(r.Dangling)
}

func (s snapshot) Check() report {
	g := graph.New(s.Edges)
	return report{
		StructureID: s.StructureID,
		Name:        s.Name,
		Cycles:      g.Cycles(),
		Dangling:    g.Dangling(s.Roles),
		Isolated:    g.Isolated(s.Roles),
	}
}

func (r report) Write(w io.Writer, verbose bool) {
	if r.Problems() == 0 && !verbose {
		return
	}

	fmt.Fprintf(w, "Structure %s (%s)\n", r.Name, r.StructureID)
	for _, c := range r.Cycles {
		fmt.Fprintf(w, "  cycle: %v\n", c)
	}
	for _, id := range r.Dangling {
		fmt.Fprintf(w, "  dangling role reference: %s\n", id)
	}
	if verbose {
		for _, id := range r.Isolated {
			fmt.Fprintf(w, "  isolated role: %s\n", id)
		}
	}
}

func loadSnapshots(ctx context.Context, pool *pgxpool.Pool) ([]*snapshot, error) {
	byID := make(map[uuid.UUID]*snapshot)
	var ordered []*snapshot

	rows, err := pool.Query(ctx, `SELECT id, name FROM structures ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("querying structures: %w", err)
	}
	structures, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*snapshot, error) {
		s := &snapshot{}
		return s, row.Scan(&s.StructureID, &s.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("scanning structures: %w", err)
	}
	for _, s := range structures {
		byID[s.StructureID] = s
		ordered = append(ordered, s)
	}

	rows, err = pool.Query(ctx, `SELECT id, structure_id FROM roles`)
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	var roleID, structureID uuid.UUID
	_, err = pgx.ForEachRow(rows, []any{&roleID, &structureID}, func() error {
		if s, ok := byID[structureID]; ok {
			s.Roles = append(s.Roles, roleID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning roles: %w", err)
	}

	rows, err = pool.Query(ctx, `SELECT superior_id, subordinate_id, structure_id FROM relations`)
	if err != nil {
		return nil, fmt.Errorf("querying relations: %w", err)
	}
	var sup, sub uuid.UUID
	_, err = pgx.ForEachRow(rows, []any{&sup, &sub, &structureID}, func() error {
		if s, ok := byID[structureID]; ok {
			s.Edges = append(s.Edges, graph.Edge{Superior: sup, Subordinate: sub})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning relations: %w", err)
	}

	return ordered, nil
}
