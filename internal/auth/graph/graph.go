// Package graph holds the in-memory view of a structure's relation edges and the
// traversals the hierarchy rules need: reachability, cycle detection and
// orphan detection. It never touches storage.
package graph

import (
	"sort"

	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
)

// Edge is a directed superior -> subordinate link.
type Edge struct {
	Superior    uuid.UUID
	Subordinate uuid.UUID
}

// Graph is an adjacency view over a set of edges. It is not safe for concurrent
// mutation; build one per operation.
type Graph struct {
	down  map[uuid.UUID][]uuid.UUID
	up    map[uuid.UUID][]uuid.UUID
	nodes map[uuid.UUID]struct{}
}

func New(edges []Edge) *Graph {
	g := &Graph{
		down:  make(map[uuid.UUID][]uuid.UUID),
		up:    make(map[uuid.UUID][]uuid.UUID),
		nodes: make(map[uuid.UUID]struct{}),
	}
	for _, e := range edges {
		g.Add(e)
	}
	return g
}

// FromRelations builds a graph from stored relations.
func FromRelations(relations []*model.Relation) *Graph {
	edges := make([]Edge, 0, len(relations))
	for _, r := range relations {
		edges = append(edges, Edge{Superior: r.SuperiorID, Subordinate: r.SubordinateID})
	}
	return New(edges)
}

func (g *Graph) Add(e Edge) {
	g.down[e.Superior] = append(g.down[e.Superior], e.Subordinate)
	g.up[e.Subordinate] = append(g.up[e.Subordinate], e.Superior)
	g.nodes[e.Superior] = struct{}{}
	g.nodes[e.Subordinate] = struct{}{}
}

// Subordinates returns the direct subordinates of id.
func (g *Graph) Subordinates(id uuid.UUID) []uuid.UUID {
	return sorted(g.down[id])
}

// Superiors returns the direct superiors of id.
func (g *Graph) Superiors(id uuid.UUID) []uuid.UUID {
	return sorted(g.up[id])
}

// Reachable reports whether to can be reached from from by following
// superior -> subordinate edges. A node always reaches itself.
func (g *Graph) Reachable(from, to uuid.UUID) bool {
	if from == to {
		return true
	}

	visited := map[uuid.UUID]bool{from: true}
	queue := []uuid.UUID{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.down[current] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// WouldCreateCycle reports whether adding superior -> subordinate closes a loop,
// including the degenerate self-loop.
func (g *Graph) WouldCreateCycle(superior, subordinate uuid.UUID) bool {
	return g.Reachable(subordinate, superior)
}

// Descendants returns every role transitively below id, excluding id.
func (g *Graph) Descendants(id uuid.UUID) []uuid.UUID {
	visited := map[uuid.UUID]bool{id: true}
	stack := []uuid.UUID{id}
	var out []uuid.UUID

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range g.down[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			out = append(out, next)
			stack = append(stack, next)
		}
	}
	return sorted(out)
}

// Cycles returns one representative cycle per strongly connected loop found by a
// depth-first walk. An acyclic graph yields nil.
func (g *Graph) Cycles() [][]uuid.UUID {
	const (
		white = iota
		grey
		black
	)

	color := make(map[uuid.UUID]int, len(g.nodes))
	var path []uuid.UUID
	var cycles [][]uuid.UUID

	var visit func(n uuid.UUID)
	visit = func(n uuid.UUID) {
		color[n] = grey
		path = append(path, n)

		for _, next := range sorted(g.down[n]) {
			switch color[next] {
			case white:
				visit(next)
			case grey:
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == next {
						cycle := append([]uuid.UUID(nil), path[i:]...)
						cycles = append(cycles, cycle)
						break
					}
				}
			}
		}

		path = path[:len(path)-1]
		color[n] = black
	}

	for _, n := range sorted(keys(g.nodes)) {
		if color[n] == white {
			visit(n)
		}
	}
	return cycles
}

// Isolated returns the roles in roleIDs that take part in no edge.
func (g *Graph) Isolated(roleIDs []uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	for _, id := range roleIDs {
		if _, ok := g.nodes[id]; !ok {
			out = append(out, id)
		}
	}
	return sorted(out)
}

// Dangling returns edge endpoints that are not in roleIDs.
func (g *Graph) Dangling(roleIDs []uuid.UUID) []uuid.UUID {
	known := make(map[uuid.UUID]struct{}, len(roleIDs))
	for _, id := range roleIDs {
		known[id] = struct{}{}
	}

	var out []uuid.UUID
	for n := range g.nodes {
		if _, ok := known[n]; !ok {
			out = append(out, n)
		}
	}
	return sorted(out)
}

func keys(m map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func sorted(ids []uuid.UUID) []uuid.UUID {
	out := append([]uuid.UUID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
