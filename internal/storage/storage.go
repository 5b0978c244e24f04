package storage

import (
	"vrs/internal/config"
	"vrs/internal/domain"
)

// Storage persists and reloads extracted failure lists (e.g. for the
// interactive viewer or downstream tooling).
type Storage interface {
	Save(output *domain.ExportOutput) error
	Load() (*domain.ExportOutput, error)
}

// JSONStorage stores the failure list in a JSON file under the configured
// export path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's export JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
