package network_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/linkgraph/bfs"
	"github.com/katalvlaran/linkgraph/core"
	"github.com/katalvlaran/linkgraph/network"
)

// sampleGraph is A─B─C─D─E plus isolated F, symmetric entries.
func sampleGraph() *core.Graph {
	m := core.NewAdjacencyMap(6)
	m.Set("A", "B")
	m.Set("B", "A", "C")
	m.Set("C", "B", "D")
	m.Set("D", "C", "E")
	m.Set("E", "D")
	m.Set("F")

	return core.NewGraph(m)
}

func newService(t *testing.T, opts ...network.Option) *network.Service {
	t.Helper()
	s, err := network.NewService(sampleGraph(), opts...)
	require.NoError(t, err)

	return s
}

func TestNewService_Errors(t *testing.T) {
	_, err := network.NewService(nil)
	assert.ErrorIs(t, err, network.ErrGraphNil)

	_, err = network.NewService(sampleGraph(), network.WithMaxDegree(0))
	assert.ErrorIs(t, err, network.ErrInvalidDegree)
}

func TestShowNetwork(t *testing.T) {
	s := newService(t)
	rep, err := s.ShowNetwork(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, rep.Discovered)
	assert.Equal(t, 6, rep.Count)
	assert.True(t, rep.HasCycle, "symmetric entries count as back edges")
}

func TestShowNetwork_Repeatable(t *testing.T) {
	s := newService(t)
	first, err := s.ShowNetwork(context.Background())
	require.NoError(t, err)
	second, err := s.ShowNetwork(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShowConnections(t *testing.T) {
	s := newService(t)
	rep, err := s.ShowConnections(context.Background(), "A")
	require.NoError(t, err)

	require.Len(t, rep.Degrees, 3)
	assert.Equal(t, []string{"B"}, rep.Level(1))
	assert.Equal(t, []string{"C"}, rep.Level(2))
	assert.Equal(t, []string{"D"}, rep.Level(3))
	assert.Nil(t, rep.Level(4), "E is computed but not reported")
}

func TestShowConnections_MembersSorted(t *testing.T) {
	m := core.NewAdjacencyMap(4)
	m.Set("hub", "zed", "amy", "max")
	m.Set("zed", "hub")
	m.Set("amy", "hub")
	m.Set("max", "hub")
	s, err := network.NewService(core.NewGraph(m))
	require.NoError(t, err)

	rep, err := s.ShowConnections(context.Background(), "hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"amy", "max", "zed"}, rep.Level(1))
	assert.Equal(t, 3, rep.Degrees[0].Size())
	assert.Empty(t, rep.Level(2))
}

func TestShowConnections_MaxDegree(t *testing.T) {
	s := newService(t, network.WithMaxDegree(4))
	rep, err := s.ShowConnections(context.Background(), "A")
	require.NoError(t, err)
	require.Len(t, rep.Degrees, 4)
	assert.Equal(t, []string{"E"}, rep.Level(4))
}

func TestShowConnections_NotFound(t *testing.T) {
	zc, logs := observer.New(zapcore.InfoLevel)
	s := newService(t, network.WithLogger(zap.New(zc)))

	rep, err := s.ShowConnections(context.Background(), "Z")
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, network.ErrPersonNotFound)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.Equal(t, 1, logs.FilterMessage("person not found").Len())
}

func TestConnect(t *testing.T) {
	s := newService(t)
	rep, err := s.Connect(context.Background(), "A", "F")
	require.NoError(t, err)

	assert.Equal(t, "A", rep.PersonA)
	assert.Equal(t, "F", rep.PersonB)
	assert.Equal(t, []string{"B", "F"}, rep.Connections.Level(1))

	back, err := s.ShowConnections(context.Background(), "F")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, back.Level(1))
	assert.Equal(t, []string{"B"}, back.Level(2))
}

func TestConnect_EndpointMissing(t *testing.T) {
	zc, logs := observer.New(zapcore.InfoLevel)
	s := newService(t, network.WithLogger(zap.New(zc)))
	before := s.Graph().AdjacencyList()

	rep, err := s.Connect(context.Background(), "A", "Z")
	assert.Nil(t, rep)
	assert.True(t, errors.Is(err, core.ErrEndpointMissing))
	assert.Equal(t, before, s.Graph().AdjacencyList())
	assert.Equal(t, 1, logs.FilterMessage("connect rejected").Len())
}

func TestConnect_Self(t *testing.T) {
	s := newService(t)
	_, err := s.Connect(context.Background(), "F", "F")
	require.NoError(t, err)

	nbrs, err := s.Graph().NeighborNames("F")
	require.NoError(t, err)
	assert.Equal(t, []string{"F", "F"}, nbrs)
}

func TestRender_Network(t *testing.T) {
	rep, err := newService(t).ShowNetwork(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	assert.Equal(t, "A\nB\nC\nD\nE\nF\nNumber of vertices visited: 6\n", buf.String())
}

func TestRender_Connections(t *testing.T) {
	rep, err := newService(t).ShowConnections(context.Background(), "C")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	want := "Network of: C\n" +
		"1st connections [2 in total]: [B D]\n\n" +
		"2nd connections [2 in total]: [A E]\n\n" +
		"3rd connections [0 in total]: []\n\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_Connect(t *testing.T) {
	rep, err := newService(t).Connect(context.Background(), "E", "F")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	assert.Contains(t, buf.String(), "Connected E and F.\nNetwork of: E\n1st connections [2 in total]: [D F]\n")
}

func TestRender_OrdinalsBeyondThird(t *testing.T) {
	m := core.NewAdjacencyMap(0)
	m.Set("solo")
	s, err := network.NewService(core.NewGraph(m), network.WithMaxDegree(5))
	require.NoError(t, err)
	rep, err := s.ShowConnections(context.Background(), "solo")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	assert.Contains(t, buf.String(), "4th connections [0 in total]: []")
	assert.Contains(t, buf.String(), "5th connections [0 in total]: []")
}
