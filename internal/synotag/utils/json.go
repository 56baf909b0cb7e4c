package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSONFile serializes data as indented JSON into dir/name, creating
// the directory if needed. Returns the full path of the written file.
func WriteJSONFile(dir, name string, data any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	//nolint:gosec // G304: Output path is supplied by the operator
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	return path, nil
}
