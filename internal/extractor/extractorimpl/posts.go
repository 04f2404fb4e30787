package extractorimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

// collectPosts fetches the user's media items and walks them sequentially:
// fixed delay, progress report, then the conditional media download. A fetch
// failure yields an empty list, never a partial one.
func (e *ExtractorImpl) collectPosts(ctx context.Context, username string) []domain.Post {
	posts, err := e.Instagram.UserPosts(ctx, username, defaultPostLimit)
	if err != nil {
		e.Logger.Error("Failed to get posts", "username", username, "error", err)
		return []domain.Post{}
	}

	for i := range posts {
		time.Sleep(e.Config.RequestDelayDuration())
		e.Logger.Info("Processing post", "username", username, "item", i+1, "total", len(posts))
		e.downloadPostMedia(ctx, username, &posts[i])
	}

	e.Logger.Info("Retrieved posts", "username", username, "count", len(posts))
	return posts
}

// downloadPostMedia downloads the post's media file when the matching toggle
// is enabled. A failed download leaves LocalFile unset and the run goes on.
func (e *ExtractorImpl) downloadPostMedia(ctx context.Context, username string, post *domain.Post) {
	var url, filename string

	switch post.MediaType {
	case domain.MediaTypePhoto:
		if !e.Config.Extractor.DownloadPhotos || post.ThumbnailURL == "" {
			return
		}
		url = post.ThumbnailURL
		filename = fmt.Sprintf("%s_%s.jpg", username, post.ID)
	case domain.MediaTypeVideo:
		if !e.Config.Extractor.DownloadVideos || post.VideoURL == "" {
			return
		}
		url = post.VideoURL
		filename = fmt.Sprintf("%s_%s.mp4", username, post.ID)
	default:
		return
	}

	if err := e.Downloader.Download(ctx, url, filename); err != nil {
		e.Logger.Warn("Failed to download media", "post", post.ID, "file", filename, "error", err)
		return
	}

	post.LocalFile = "media/" + filename
}
