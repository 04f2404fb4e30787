package storageimpl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

// SaveResult persists the full extraction result as one pretty-printed JSON
// document at json_data/{username}_data.json. The write is complete and
// independent, a later CSV failure cannot affect it.
func (s *StorageImpl) SaveResult(username string, result *domain.ExtractionResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal extraction result: %w", err)
	}

	path := filepath.Join(s.outputDir, "json_data", fmt.Sprintf("%s_data.json", username))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.Logger.Info("Extraction result saved", "path", path)
	return path, nil
}
