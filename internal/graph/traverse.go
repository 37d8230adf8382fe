package graph

import "fmt"

// Successors returns the direct children of h in chain order: the most
// recently linked child first. It returns ErrInvalidHandle if h is out of
// range, never an empty slice in that case.
func (g *Graph[T]) Successors(h NodeHandle) ([]NodeHandle, error) {
	if !g.validNode(h) {
		return nil, fmt.Errorf("%w: node %d out of range (node count %d)", ErrInvalidHandle, h, len(g.nodes))
	}
	var children []NodeHandle
	for eh := g.nodes[h].firstEdge; eh != noEdge; eh = g.edges[eh].next {
		children = append(children, g.edges[eh].target)
	}
	return children, nil
}

// Roots returns every node that no edge targets, in ascending insertion
// order. On an empty graph it returns an empty slice.
func (g *Graph[T]) Roots() []NodeHandle {
	roots := make([]NodeHandle, 0, len(g.nodes))
	for i := range g.nodes {
		h := NodeHandle(i)
		if !g.hasIncoming(h) {
			roots = append(roots, h)
		}
	}
	return roots
}

// Ancestors returns the deduplicated set of nodes with a directed path into
// from, excluding from itself, in first-seen depth-first order. A full
// visited set guards the walk, so cycles anywhere in the graph terminate
// rather than re-expand.
func (g *Graph[T]) Ancestors(from NodeHandle) ([]NodeHandle, error) {
	if !g.validNode(from) {
		return nil, fmt.Errorf("%w: node %d out of range (node count %d)", ErrInvalidHandle, from, len(g.nodes))
	}

	seen := make(map[NodeHandle]bool)
	var parents []NodeHandle

	var visit func(current NodeHandle)
	visit = func(current NodeHandle) {
		for i := range g.edges {
			e := &g.edges[i]
			if e.target != current {
				continue
			}
			if e.source == from || seen[e.source] {
				continue
			}
			seen[e.source] = true
			parents = append(parents, e.source)
			visit(e.source)
		}
	}
	visit(from)

	return parents, nil
}

func (g *Graph[T]) hasIncoming(h NodeHandle) bool {
	for i := range g.edges {
		if g.edges[i].target == h {
			return true
		}
	}
	return false
}
