package storage

import "github.com/orgball2608/insta-extractor/internal/domain"

// Client owns the output directory tree: the JSON document sink and the CSV
// report sink. The two are independent failure domains.
type Client interface {
	// SaveResult writes the whole extraction result as one pretty-printed
	// JSON document and returns its path.
	SaveResult(username string, result *domain.ExtractionResult) (string, error)

	// WriteCSVReports flattens posts, followers and following into CSV
	// tables, skipping empty categories.
	WriteCSVReports(username string, result *domain.ExtractionResult) error

	// OutputDir is the root of the produced filesystem layout.
	OutputDir() string
}
