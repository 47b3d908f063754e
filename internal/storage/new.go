package storage

import (
	"fmt"

	"docqa/internal/config"
)

// New selects the scratch backend named in cfg.Upload.ScratchBackend.
func New(cfg *config.AppConfig) (Storage, error) {
	switch cfg.Upload.ScratchBackend {
	case config.ScratchDisk, "":
		return NewDisk(cfg.Upload.ScratchDir)
	case config.ScratchMinIO:
		return NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown scratch backend %q", cfg.Upload.ScratchBackend)
	}
}
