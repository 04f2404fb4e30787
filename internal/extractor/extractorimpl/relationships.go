package extractorimpl

import (
	"context"
	"time"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

type relationshipFetch func(ctx context.Context, username string, limit int) ([]domain.RelationshipEntry, error)

// collectRelationships fetches one relationship list (followers or
// following) and walks it with the half-length delay. Total failure yields
// an empty list; order is whatever the platform returned.
func (e *ExtractorImpl) collectRelationships(ctx context.Context, username string, kind string, fetch relationshipFetch) []domain.RelationshipEntry {
	entries, err := fetch(ctx, username, defaultRelationshipLimit)
	if err != nil {
		e.Logger.Error("Failed to get "+kind, "username", username, "error", err)
		return []domain.RelationshipEntry{}
	}

	for i := range entries {
		time.Sleep(e.Config.RelationshipDelayDuration())
		e.Logger.Debug("Processing "+kind+" entry", "username", username, "item", i+1, "total", len(entries))
	}

	e.Logger.Info("Retrieved "+kind, "username", username, "count", len(entries))
	return entries
}
