package insight

import (
	"github.com/smallbiznis/salescope/internal/insight/service"
	"go.uber.org/fx"
)

var Module = fx.Module("insight.service",
	fx.Provide(service.New),
)
