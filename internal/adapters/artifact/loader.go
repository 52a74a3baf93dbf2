// Package artifact loads the serialized training artifacts the core
// services depend on: label encoder tables, feature column lists and the
// product catalog. Everything here is read once at startup.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skinai/skinai-backend/internal/core"
)

// LoadLabelEncoders reads a label encoder table from a JSON file mapping
// column names to value-to-code tables.
func LoadLabelEncoders(path string) (*core.LabelEncoderTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label encoders: %w", err)
	}

	var columns map[string]map[string]int
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse label encoders: %w", err)
	}

	return core.NewLabelEncoderTable(columns), nil
}

// LoadFeatureColumns reads an ordered feature column list from a JSON
// array file.
func LoadFeatureColumns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature columns: %w", err)
	}

	var columns []string
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse feature columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("feature columns file %s is empty", path)
	}

	return columns, nil
}
