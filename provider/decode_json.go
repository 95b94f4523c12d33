package provider

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/katalvlaran/linkgraph/core"
)

// DecodeJSON reads the mapping stored under field of a JSON object, in
// document key order. An empty field means the whole document is the mapping.
//
// A null entry is an empty neighbor list. A repeated key keeps its first
// position and its last value.
func DecodeJSON(data []byte, field string) (*core.AdjacencyMap, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	var path []string
	if field != "" {
		path = []string{field}
	}

	value, dt, _, err := jsonparser.Get(data, path...)
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, field)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	case dt != jsonparser.Object:
		return nil, fmt.Errorf("%w: mapping is %s, want object", ErrMalformed, dt)
	}

	m := core.NewAdjacencyMap(0)
	err = jsonparser.ObjectEach(value, func(key, entry []byte, et jsonparser.ValueType, _ int) error {
		name := string(key)
		switch et {
		case jsonparser.Null:
			m.Set(name)
			return nil
		case jsonparser.Array:
		default:
			return fmt.Errorf("%w: entry %q is %s, want array", ErrMalformed, name, et)
		}

		neighbors, err := decodeNames(name, entry)
		if err != nil {
			return err
		}
		m.Set(name, neighbors...)

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return m, nil
}

// decodeNames reads a JSON array of strings.
func decodeNames(owner string, arr []byte) ([]string, error) {
	names := []string{}
	var bad error
	_, err := jsonparser.ArrayEach(arr, func(v []byte, vt jsonparser.ValueType, _ int, _ error) {
		if bad != nil {
			return
		}
		if vt != jsonparser.String {
			bad = fmt.Errorf("%w: entry %q holds a %s, want string", ErrMalformed, owner, vt)
			return
		}
		s, perr := jsonparser.ParseString(v)
		if perr != nil {
			bad = fmt.Errorf("%w: entry %q: %v", ErrMalformed, owner, perr)
			return
		}
		names = append(names, s)
	})
	if bad != nil {
		return nil, bad
	}
	if err != nil {
		return nil, fmt.Errorf("%w: entry %q: %v", ErrMalformed, owner, err)
	}

	return names, nil
}
