package extractorimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

// ExtractUserData runs the linear workflow: profile, posts, followers,
// following, JSON document, archive row. A missing profile aborts before any
// collection and before any file write.
func (e *ExtractorImpl) ExtractUserData(ctx context.Context, username string) (*domain.ExtractionResult, error) {
	e.Logger.Info("Starting data extraction", "username", username)

	profile, err := e.Instagram.UserInfo(ctx, username)
	if err != nil {
		e.Logger.Error("Failed to get user info", "username", username, "error", err)
		return nil, fmt.Errorf("profile fetch failed for %s: %w", username, err)
	}

	result := &domain.ExtractionResult{
		UserInfo:  *profile,
		Posts:     e.collectPosts(ctx, username),
		Followers: e.collectRelationships(ctx, username, "followers", e.Instagram.Followers),
		Following: e.collectRelationships(ctx, username, "following", e.Instagram.Following),
		Timestamp: time.Now(),
	}

	path, err := e.Storage.SaveResult(username, result)
	if err != nil {
		e.Logger.Error("Failed to persist extraction result", "username", username, "error", err)
		return nil, err
	}

	// The archive is best-effort and never affects files already written.
	archived := domain.ExtractionRun{
		Username:       username,
		PostCount:      len(result.Posts),
		FollowerCount:  len(result.Followers),
		FollowingCount: len(result.Following),
		JSONPath:       path,
	}
	if err := e.RunRepo.Create(ctx, archived); err != nil {
		e.Logger.Warn("Failed to archive extraction run", "username", username, "error", err)
	}

	e.Logger.Info("Data extraction completed", "username", username, "path", path)
	return result, nil
}
