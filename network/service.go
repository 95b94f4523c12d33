// Package network answers the three questions a user can ask about a social
// network: who is in it, who is within three hops of a person, and what
// changes when two people connect.
package network

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/linkgraph/bfs"
	"github.com/katalvlaran/linkgraph/core"
	"github.com/katalvlaran/linkgraph/dfs"
)

// DefaultMaxDegree is the deepest connection level a report lists.
const DefaultMaxDegree = 3

// Sentinel errors for network reports.
var (
	// ErrPersonNotFound is returned when a report is asked for a person with no entry.
	ErrPersonNotFound = errors.New("network: person not found")

	// ErrGraphNil is returned by NewService for a nil graph.
	ErrGraphNil = errors.New("network: graph is nil")

	// ErrInvalidDegree is returned by NewService when MaxDegree is below 1.
	ErrInvalidDegree = errors.New("network: max degree must be at least 1")
)

// Service runs reports and mutations against one Graph.
type Service struct {
	graph     *core.Graph
	log       *zap.Logger
	maxDegree int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxDegree sets how many connection levels ShowConnections reports.
func WithMaxDegree(d int) Option {
	return func(s *Service) {
		s.maxDegree = d
	}
}

// NewService wraps g. The graph stays owned by the caller.
func NewService(g *core.Graph, opts ...Option) (*Service, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := &Service{graph: g, log: zap.NewNop(), maxDegree: DefaultMaxDegree}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxDegree < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, s.maxDegree)
	}

	return s, nil
}

// Graph returns the underlying graph.
func (s *Service) Graph() *core.Graph { return s.graph }

// ShowNetwork runs a full depth-first pass and reports every person in
// discovery order together with the cycle flag.
func (s *Service) ShowNetwork(ctx context.Context) (*NetworkReport, error) {
	res, err := dfs.DFS(s.graph, dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("network: show network: %w", err)
	}
	s.log.Debug("network traversed",
		zap.Int("visited", res.Visited()),
		zap.Bool("cycle", res.HasCycle),
	)

	return &NetworkReport{
		Discovered: res.Discovered,
		Count:      res.Visited(),
		HasCycle:   res.HasCycle,
	}, nil
}

// ShowConnections groups everyone reachable from person by hop distance and
// reports levels 1 through the configured max degree.
// Returns an error matching ErrPersonNotFound if person has no entry.
func (s *Service) ShowConnections(ctx context.Context, person string) (*ConnectionsReport, error) {
	res, err := bfs.BFS(s.graph, person, bfs.WithContext(ctx))
	if err != nil {
		if errors.Is(err, bfs.ErrStartVertexNotFound) {
			s.log.Info("person not found", zap.String("person", person))
			return nil, fmt.Errorf("%w: %q: %w", ErrPersonNotFound, person, err)
		}
		return nil, fmt.Errorf("network: show connections of %q: %w", person, err)
	}

	report := &ConnectionsReport{Person: person, Degrees: make([]Degree, 0, s.maxDegree)}
	for d := 1; d <= s.maxDegree; d++ {
		report.Degrees = append(report.Degrees, newDegree(d, res.AtDepth(d)))
	}
	s.log.Debug("connections computed",
		zap.String("person", person),
		zap.Int("reachable", len(res.Order)-1),
		zap.Int("deepest", res.MaxDepth()),
	)

	return report, nil
}

// Connect links a and b in both directions, then reports a's connections.
// Returns an error matching core.ErrEndpointMissing, with no mutation, if
// either person is not in the network.
func (s *Service) Connect(ctx context.Context, a, b string) (*ConnectReport, error) {
	if err := s.graph.Connect(a, b); err != nil {
		s.log.Info("connect rejected",
			zap.String("person_1", a),
			zap.String("person_2", b),
			zap.Error(err),
		)
		return nil, err
	}
	s.log.Info("connected", zap.String("person_1", a), zap.String("person_2", b))

	conns, err := s.ShowConnections(ctx, a)
	if err != nil {
		return nil, err
	}

	return &ConnectReport{PersonA: a, PersonB: b, Connections: conns}, nil
}
