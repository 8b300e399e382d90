package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/scenegraph/internal/config"
	"github.com/zeusync/scenegraph/internal/core/events/bus"
	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/internal/core/scene/components"
)

// App bundles everything a scene host needs, built from one Config.
type App struct {
	Config        config.Config
	Logger        *log.Logger
	Registry      *scene.Registry
	Bus           bus.EventBus
	DecodeOptions []scene.DecodeOption
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	ProvideEventBus,
	ProvideDecodeOptions,
	wire.Struct(new(App), "*"),
)

// ProvideLogger builds the logger described by cfg and installs it as the
// process logger.
func ProvideLogger(cfg config.Config) (*log.Logger, error) {
	l, err := log.NewWithConfig(log.Config{Level: cfg.LogLevel(), Encoding: cfg.Log.Encoding})
	if err != nil {
		return nil, err
	}
	log.Install(l)
	return l, nil
}

// ProvideRegistry returns a registry holding the built-in nodes and components.
func ProvideRegistry(l *log.Logger) *scene.Registry {
	r := scene.NewRegistry(l.Named("registry"))
	scene.RegisterBuiltins(r)
	components.Register(r)
	return r
}

func ProvideEventBus() bus.EventBus {
	return bus.New()
}

func ProvideDecodeOptions(cfg config.Config, l *log.Logger) []scene.DecodeOption {
	return append(cfg.DecodeOptions(), scene.WithLogger(l.Named("decoder")))
}
