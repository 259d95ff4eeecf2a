// SPDX-License-Identifier: MPL-2.0

// Package dag orders the nodes of a directed graph topologically. The
// introspection walker uses it to compute a start order for a package closure
// in which every package follows the packages it depends on.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError indicates that the graph contains a cycle, preventing topological ordering.
	CycleError struct {
		// Cycle lists the nodes left unordered: every member of a cycle plus
		// anything downstream of one, in insertion order.
		Cycle []string
	}

	// Graph is a directed graph over string-like keys. An edge from A to B
	// means A must come before B. Nodes keep their insertion order, which
	// breaks ties between nodes of the same topological level.
	Graph[K ~string] struct {
		adjacency map[K][]K
		nodes     []K
		nodeSet   map[K]struct{}
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, ", "))
}

// New creates an empty Graph.
func New[K ~string]() *Graph[K] {
	return &Graph[K]{
		adjacency: make(map[K][]K),
		nodeSet:   make(map[K]struct{}),
	}
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Graph[K]) AddNode(name K) {
	if _, ok := g.nodeSet[name]; ok {
		return
	}
	g.nodeSet[name] = struct{}{}
	g.nodes = append(g.nodes, name)
}

// AddEdge adds from -> to, adding either node if missing.
func (g *Graph[K]) AddEdge(from, to K) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int { return len(g.nodes) }

// TopologicalSort returns the nodes in an order that respects every edge,
// using Kahn's algorithm. It returns a *CycleError if no such order exists.
func (g *Graph[K]) TopologicalSort() ([]K, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	inDegree := make(map[K]int, len(g.nodes))
	for _, neighbors := range g.adjacency {
		for _, n := range neighbors {
			inDegree[n]++
		}
	}

	queue := make([]K, 0, len(g.nodes))
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	result := make([]K, 0, len(g.nodes))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, n := range g.adjacency[node] {
			inDegree[n]--
			if inDegree[n] == 0 {
				queue = append(queue, n)
			}
		}
	}

	if len(result) != len(g.nodes) {
		var stuck []string
		for _, node := range g.nodes {
			if inDegree[node] > 0 {
				stuck = append(stuck, string(node))
			}
		}
		return nil, &CycleError{Cycle: stuck}
	}

	return result, nil
}
