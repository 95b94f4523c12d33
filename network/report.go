package network

import "sort"

// NetworkReport is the result of ShowNetwork.
type NetworkReport struct {
	// Discovered lists people in the order the depth-first pass reached them.
	Discovered []string
	// Count is the number of people visited.
	Count int
	// HasCycle reports whether the pass met a back edge.
	HasCycle bool
}

// Degree is one connection level of a ConnectionsReport.
type Degree struct {
	Level   int
	Members []string // sorted
}

func newDegree(level int, members []string) Degree {
	out := make([]string, len(members))
	copy(out, members)
	sort.Strings(out)

	return Degree{Level: level, Members: out}
}

// Size returns the number of people at this level.
func (d Degree) Size() int { return len(d.Members) }

// ConnectionsReport is the result of ShowConnections.
type ConnectionsReport struct {
	Person  string
	Degrees []Degree // levels 1..max degree, in order
}

// Level returns the members at level d, or nil if d is not reported.
func (r *ConnectionsReport) Level(d int) []string {
	for _, deg := range r.Degrees {
		if deg.Level == d {
			return deg.Members
		}
	}

	return nil
}

// ConnectReport is the result of Connect.
type ConnectReport struct {
	PersonA     string
	PersonB     string
	Connections *ConnectionsReport // PersonA's connections after the link
}
