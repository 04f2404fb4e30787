package storageimpl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orgball2608/insta-extractor/internal/storage"
	"github.com/orgball2608/insta-extractor/pkg/config"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

type StorageImpl struct {
	outputDir string
	Logger    logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// New builds the storage layer and eagerly creates the output tree.
func New(opts Opts) (*StorageImpl, error) {
	s := &StorageImpl{
		outputDir: opts.Config.Extractor.OutputDir,
		Logger:    opts.Logger.WithComponent("Storage"),
	}

	if err := s.setupDirectories(); err != nil {
		return nil, err
	}
	return s, nil
}

var _ storage.Client = (*StorageImpl)(nil)

func (s *StorageImpl) OutputDir() string {
	return s.outputDir
}

func (s *StorageImpl) setupDirectories() error {
	for _, dir := range []string{
		s.outputDir,
		filepath.Join(s.outputDir, "profiles"),
		filepath.Join(s.outputDir, "posts"),
		filepath.Join(s.outputDir, "stories"),
		filepath.Join(s.outputDir, "media"),
		filepath.Join(s.outputDir, "json_data"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
