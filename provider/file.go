package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/linkgraph/core"
)

// FileProvider reads the mapping from a local file.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
type FileProvider struct {
	path  string
	field string
}

// NewFileProvider returns a provider for path reading the given field.
func NewFileProvider(path, field string) *FileProvider {
	return &FileProvider{path: path, field: field}
}

// Fetch reads and decodes the file.
func (p *FileProvider) Fetch(ctx context.Context) (*core.AdjacencyMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("provider: read %s: %w", p.path, err)
	}

	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data, p.field)
	default:
		return DecodeJSON(data, p.field)
	}
}
