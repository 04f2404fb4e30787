package downloader

import "context"

// Client streams media files from the platform CDN into the media directory.
type Client interface {
	// Download fetches url into the media directory under filename.
	// Failures never leave a partial file behind.
	Download(ctx context.Context, url string, filename string) error
}
