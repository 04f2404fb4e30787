package downloaderimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/orgball2608/insta-extractor/internal/downloader"
	"github.com/orgball2608/insta-extractor/pkg/config"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

// chunkSize bounds memory use when streaming large video files.
const chunkSize = 8192

const requestTimeout = 30 * time.Second

type DownloaderImpl struct {
	MediaDir string
	Logger   logger.Logger
	client   *http.Client
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *DownloaderImpl {
	return &DownloaderImpl{
		MediaDir: filepath.Join(opts.Config.Extractor.OutputDir, "media"),
		Logger:   opts.Logger.WithComponent("Downloader"),
		client:   &http.Client{Timeout: requestTimeout},
	}
}

var _ downloader.Client = (*DownloaderImpl)(nil)

// Download streams the resource at url into MediaDir/filename in fixed-size
// chunks. On any failure the partial file is removed.
func (d *DownloaderImpl) Download(ctx context.Context, url string, filename string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch media: %w", err)
	}
	defer safeClose(resp.Body, d.Logger)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching media", resp.StatusCode)
	}

	path := filepath.Join(d.MediaDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create media file: %w", err)
	}

	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(f, resp.Body, buf); err != nil {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			d.Logger.Warn("Failed to remove partial media file", "path", path, "error", rmErr)
		}
		return fmt.Errorf("failed to write media file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close media file: %w", err)
	}

	return nil
}

func safeClose(closer io.ReadCloser, log logger.Logger) {
	if err := closer.Close(); err != nil {
		log.Error("Error closing response body", "error", err)
	}
}
