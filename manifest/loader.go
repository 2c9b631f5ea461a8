package manifest

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads declaration manifests from disk.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a manifest loader. A nil logger falls back to
// slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads and parses the manifest at path.
func (l *Loader) Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	l.logger.Debug("Loaded manifest",
		slog.String("path", path),
		slog.Int("classes", len(m.Ontology.Classes)),
		slog.Int("properties", len(m.Ontology.Properties)),
		slog.Int("shapes", len(m.Shapes)))

	return m, nil
}

// Parse decodes a YAML manifest. Unknown fields are ignored, matching the
// validation engine's treatment of absent constraints as "no constraint".
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
