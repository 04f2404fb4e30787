package fx

import (
	"github.com/orgball2608/insta-extractor/internal/repositories/run"
	"go.uber.org/fx"
)

var Module = fx.Options(
	run.Module,
)
