package extractorimpl

import (
	"github.com/orgball2608/insta-extractor/internal/downloader"
	"github.com/orgball2608/insta-extractor/internal/extractor"
	"github.com/orgball2608/insta-extractor/internal/instagram"
	"github.com/orgball2608/insta-extractor/internal/notifier"
	"github.com/orgball2608/insta-extractor/internal/repositories/run"
	"github.com/orgball2608/insta-extractor/internal/storage"
	"github.com/orgball2608/insta-extractor/pkg/config"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

const (
	defaultPostLimit         = 100
	defaultRelationshipLimit = 1000
)

type Opts struct {
	fx.In

	Instagram  instagram.Client
	Downloader downloader.Client
	Storage    storage.Client
	RunRepo    run.Repository
	Notifier   notifier.Client
	Logger     logger.Logger
	Config     *config.Config
}

type ExtractorImpl struct {
	Instagram  instagram.Client
	Downloader downloader.Client
	Storage    storage.Client
	RunRepo    run.Repository
	Notifier   notifier.Client
	Logger     logger.Logger
	Config     *config.Config
}

func New(opts Opts) *ExtractorImpl {
	return &ExtractorImpl{
		Instagram:  opts.Instagram,
		Downloader: opts.Downloader,
		Storage:    opts.Storage,
		RunRepo:    opts.RunRepo,
		Notifier:   opts.Notifier,
		Logger:     opts.Logger.WithComponent("Extractor"),
		Config:     opts.Config,
	}
}

var _ extractor.Client = (*ExtractorImpl)(nil)
