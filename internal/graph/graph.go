package graph

import "fmt"

// NodeHandle identifies a node within its owning graph. Handles are stable
// for the graph's lifetime and equal to the node count at insertion time.
type NodeHandle int

// EdgeHandle identifies an edge within its owning graph.
type EdgeHandle int

// noEdge marks the end of an outgoing-edge chain.
const noEdge EdgeHandle = -1

// node is a single arena record: a payload plus the head of the node's
// intrusive outgoing-edge chain.
type node[T any] struct {
	payload   T
	firstEdge EdgeHandle
}

// edge is a single arena record linking source to target. next points at the
// edge that shared source's chain head before this one was inserted.
type edge struct {
	source NodeHandle
	target NodeHandle
	next   EdgeHandle
}

// Graph is an append-only arena of nodes and edges. The zero value is not
// meaningful; use New.
type Graph[T any] struct {
	nodes []node[T]
	edges []edge
}

// New creates and returns an initialized, empty Graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// NodeCount returns the number of nodes inserted so far.
func (g *Graph[T]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges inserted so far.
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

// InsertNode appends a node with no outgoing edges and returns its handle.
// The handle always equals the node count immediately before the call.
func (g *Graph[T]) InsertNode(payload T) NodeHandle {
	h := NodeHandle(len(g.nodes))
	g.nodes = append(g.nodes, node[T]{payload: payload, firstEdge: noEdge})
	return h
}

// InsertNodeUnder inserts a node and immediately links it beneath parent.
// It fails under the same conditions as InsertEdge; the parent is checked
// up front so a failed call leaves the arena untouched.
func (g *Graph[T]) InsertNodeUnder(parent NodeHandle, payload T) (NodeHandle, error) {
	if !g.validNode(parent) {
		return 0, fmt.Errorf("%w: parent handle %d out of range (node count %d)", ErrInvalidEdge, parent, len(g.nodes))
	}
	h := g.InsertNode(payload)
	if err := g.InsertEdge(parent, h); err != nil {
		// Unreachable for a fresh node, but InsertEdge owns the invariants.
		return 0, err
	}
	return h, nil
}

// InsertEdge appends a directed edge from source to target and prepends it to
// source's outgoing chain. It returns ErrInvalidEdge if the graph holds fewer
// than two nodes, the edge would be a self-loop, either endpoint is out of
// range, or the (source, target) pair already exists.
func (g *Graph[T]) InsertEdge(source, target NodeHandle) error {
	if len(g.nodes) < 2 {
		return fmt.Errorf("%w: graph holds %d node(s), an edge needs two", ErrInvalidEdge, len(g.nodes))
	}
	if source == target {
		return fmt.Errorf("%w: self-loop on node %d", ErrInvalidEdge, source)
	}
	if !g.validNode(source) {
		return fmt.Errorf("%w: source handle %d out of range (node count %d)", ErrInvalidEdge, source, len(g.nodes))
	}
	if !g.validNode(target) {
		return fmt.Errorf("%w: target handle %d out of range (node count %d)", ErrInvalidEdge, target, len(g.nodes))
	}
	for _, e := range g.edges {
		if e.source == source && e.target == target {
			return fmt.Errorf("%w: duplicate edge %d -> %d", ErrInvalidEdge, source, target)
		}
	}

	h := EdgeHandle(len(g.edges))
	g.edges = append(g.edges, edge{
		source: source,
		target: target,
		next:   g.nodes[source].firstEdge,
	})
	g.nodes[source].firstEdge = h
	return nil
}

// Payload returns a copy of the payload stored at h.
func (g *Graph[T]) Payload(h NodeHandle) (T, error) {
	if !g.validNode(h) {
		var zero T
		return zero, fmt.Errorf("%w: node %d out of range (node count %d)", ErrInvalidHandle, h, len(g.nodes))
	}
	return g.nodes[h].payload, nil
}

func (g *Graph[T]) validNode(h NodeHandle) bool {
	return h >= 0 && int(h) < len(g.nodes)
}
