// Package export serializes a composed scene for other rendering surfaces.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"diya-scene.klederson.com/internal/scene"
	"gopkg.in/yaml.v3"
)

// WriteYAML encodes desc as a YAML document.
func WriteYAML(w io.Writer, desc scene.Description) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(desc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush scene: %w", err)
	}
	return nil
}

// WriteYAMLFile writes desc to path, creating parent directories.
func WriteYAMLFile(path string, desc scene.Description) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteYAML(f, desc)
}

// ReadYAML decodes a scene previously written by WriteYAML.
func ReadYAML(r io.Reader) (scene.Description, error) {
	var desc scene.Description
	if err := yaml.NewDecoder(r).Decode(&desc); err != nil {
		return scene.Description{}, fmt.Errorf("decode scene: %w", err)
	}
	return desc, nil
}
