package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkgraph/provider"
)

func TestDecodeJSON_KeepsKeyOrder(t *testing.T) {
	doc := []byte(`{"adjacency_map": {"zoe": ["amy"], "amy": ["zoe", "bob"], "bob": ["amy"]}}`)
	m, err := provider.DecodeJSON(doc, provider.DefaultField)
	require.NoError(t, err)

	assert.Equal(t, []string{"zoe", "amy", "bob"}, m.Names())
	nbrs, ok := m.Neighbors("amy")
	require.True(t, ok)
	assert.Equal(t, []string{"zoe", "bob"}, nbrs)
}

func TestDecodeJSON_WholeDocument(t *testing.T) {
	m, err := provider.DecodeJSON([]byte(`{"A": ["B"], "B": []}`), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, m.Names())
}

func TestDecodeJSON_NullAndEscapes(t *testing.T) {
	m, err := provider.DecodeJSON([]byte(`{"A": null, "B": ["José", "O\"Neil"]}`), "")
	require.NoError(t, err)

	a, ok := m.Neighbors("A")
	require.True(t, ok)
	assert.Empty(t, a)

	b, _ := m.Neighbors("B")
	assert.Equal(t, []string{"José", `O"Neil`}, b)
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		want  error
	}{
		{"empty", ``, "", provider.ErrMalformed},
		{"missing field", `{"other": {}}`, "adjacency_map", provider.ErrFieldNotFound},
		{"not an object", `{"adjacency_map": []}`, "adjacency_map", provider.ErrMalformed},
		{"entry not array", `{"A": "B"}`, "", provider.ErrMalformed},
		{"number neighbor", `{"A": ["B", 3]}`, "", provider.ErrMalformed},
		{"broken", `{"A": [`, "", provider.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := provider.DecodeJSON([]byte(tc.doc), tc.field)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeYAML_KeepsKeyOrder(t *testing.T) {
	doc := []byte(`
adjacency_map:
  zoe: [amy]
  amy:
    - zoe
    - bob
  bob: [amy]
  solo:
`)
	m, err := provider.DecodeYAML(doc, provider.DefaultField)
	require.NoError(t, err)

	assert.Equal(t, []string{"zoe", "amy", "bob", "solo"}, m.Names())
	nbrs, _ := m.Neighbors("amy")
	assert.Equal(t, []string{"zoe", "bob"}, nbrs)
	solo, ok := m.Neighbors("solo")
	require.True(t, ok)
	assert.Empty(t, solo)
}

func TestDecodeYAML_Alias(t *testing.T) {
	doc := []byte(`
A: &pair [B, C]
D: *pair
`)
	m, err := provider.DecodeYAML(doc, "")
	require.NoError(t, err)
	d, _ := m.Neighbors("D")
	assert.Equal(t, []string{"B", "C"}, d)
}

func TestDecodeYAML_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		want  error
	}{
		{"empty", ``, "", provider.ErrMalformed},
		{"missing field", "other: {}\n", "adjacency_map", provider.ErrFieldNotFound},
		{"scalar entry", "A: B\n", "", provider.ErrMalformed},
		{"int neighbor", "A: [B, 3]\n", "", provider.ErrMalformed},
		{"sequence root", "- A\n- B\n", "", provider.ErrMalformed},
		{"broken", "A: [B\n", "", provider.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := provider.DecodeYAML([]byte(tc.doc), tc.field)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
