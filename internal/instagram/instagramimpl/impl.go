package instagramimpl

import (
	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-extractor/internal/instagram"
	"github.com/orgball2608/insta-extractor/pkg/config"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

type IgImpl struct {
	Client *goinsta.Instagram
	Config *config.Config
	Logger logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *IgImpl {
	client := goinsta.New(opts.Config.Instagram.Username, opts.Config.Instagram.Password)

	return &IgImpl{
		Client: client,
		Config: opts.Config,
		Logger: opts.Logger.WithComponent("Instagram"),
	}
}

var _ instagram.Client = (*IgImpl)(nil)
