package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vrs/internal/domain"
)

// Save writes the extracted failure list to the configured JSON export file.
func (s *JSONStorage) Save(output *domain.ExportOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal failures: %w", err)
	}

	path := s.cfg.GetExportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write failures: %w", err)
	}
	return nil
}

// Load reads a previously exported failure list from the configured JSON
// export file.
func (s *JSONStorage) Load() (*domain.ExportOutput, error) {
	path := s.cfg.GetExportPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	var output domain.ExportOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse export file: %w", err)
	}
	return &output, nil
}
