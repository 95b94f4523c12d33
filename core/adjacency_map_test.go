package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkgraph/core"
)

func TestAdjacencyMap_KeepsInsertionOrder(t *testing.T) {
	m := core.NewAdjacencyMap(0)
	m.Set("zed")
	m.Set("amy", "zed")
	m.Set("bob")

	assert.Equal(t, []string{"zed", "amy", "bob"}, m.Names())
	assert.Equal(t, 3, m.Len())
}

func TestAdjacencyMap_ResetKeepsPosition(t *testing.T) {
	m := core.NewAdjacencyMap(2)
	m.Set(PersonA, PersonB)
	m.Set(PersonB)
	m.Set(PersonA, PersonC)

	assert.Equal(t, []string{PersonA, PersonB}, m.Names())
	nbrs, ok := m.Neighbors(PersonA)
	require.True(t, ok)
	assert.Equal(t, []string{PersonC}, nbrs)
}

func TestAdjacencyMap_EntriesDoNotShareStorage(t *testing.T) {
	src := []string{PersonB}
	m := core.NewAdjacencyMap(2)
	m.Set(PersonA, src...)
	m.Set(PersonC)

	// mutating the caller's slice must not leak into the map
	src[0] = PersonZ
	nbrs, _ := m.Neighbors(PersonA)
	assert.Equal(t, []string{PersonB}, nbrs)

	// two empty entries are independent
	a, _ := m.Neighbors(PersonC)
	a = append(a, PersonD)
	again, _ := m.Neighbors(PersonC)
	assert.Empty(t, again)
	assert.Len(t, a, 1)
}

func TestAdjacencyMap_ZeroValueAndNil(t *testing.T) {
	var zero core.AdjacencyMap
	zero.Set(PersonA)
	assert.True(t, zero.Has(PersonA))

	var nilMap *core.AdjacencyMap
	assert.False(t, nilMap.Has(PersonA))
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Names())
	_, ok := nilMap.Neighbors(PersonA)
	assert.False(t, ok)
}

func TestAdjacencyMapFrom(t *testing.T) {
	m := core.AdjacencyMapFrom(
		[]string{PersonC, PersonA},
		map[string][]string{PersonA: {PersonC}, PersonC: {PersonA}, PersonZ: {PersonA}},
	)

	assert.Equal(t, []string{PersonC, PersonA}, m.Names())
	assert.False(t, m.Has(PersonZ), "keys missing from order are dropped")
}
