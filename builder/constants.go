// SPDX-License-Identifier: MIT
// Package: linkgraph/builder
//
// constants.go - method tags and parameter minima shared by constructors.

package builder

const (
	methodIsolated     = "Isolated"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minRandomNodes   = 1

	probMin = 0.0
	probMax = 1.0
)
