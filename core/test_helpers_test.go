// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/linkgraph/core"
)

// Common person names used across core tests.
const (
	PersonA = "A"
	PersonB = "B"
	PersonC = "C"
	PersonD = "D"
	PersonZ = "Z"
)

// lineMap is the three-person line A─B─C with symmetric entries.
func lineMap() *core.AdjacencyMap {
	m := core.NewAdjacencyMap(3)
	m.Set(PersonA, PersonB)
	m.Set(PersonB, PersonA, PersonC)
	m.Set(PersonC, PersonB)

	return m
}

// neighborNames maps a vertex's Neighbors to their names.
func neighborNames(v *core.Vertex) []string {
	out := make([]string, 0, len(v.Neighbors))
	for _, u := range v.Neighbors {
		out = append(out, u.Name)
	}

	return out
}

// vertexNames maps vertices to their names, preserving order.
func vertexNames(vs []*core.Vertex) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Name)
	}

	return out
}
