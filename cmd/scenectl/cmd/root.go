package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeusync/scenegraph/internal/config"
	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/internal/injector"
)

type options struct {
	configPath string
	logLevel   string
	lenient    bool
	freshIDs   bool

	app *injector.App
}

// NewRootCmd returns the scenectl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "scenectl",
		Short:        "Inspect, validate and convert scene graph documents",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.app != nil {
				// stderr cannot be synced on some platforms
				_ = opts.app.Logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	flags.BoolVar(&opts.lenient, "lenient", false, "skip unknown or rejected records instead of failing")
	flags.BoolVar(&opts.freshIDs, "fresh-ids", false, "assign new ids to every decoded node")

	root.AddCommand(
		newInspectCmd(opts),
		newValidateCmd(opts),
		newConvertCmd(opts),
		newFingerprintCmd(opts),
		newActivateCmd(opts),
	)
	return root
}

func (o *options) setup() error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.lenient {
		cfg.Decode.Mode = scene.ModeLenient.String()
	}
	if o.freshIDs {
		cfg.Decode.FreshIDs = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	o.app = app
	return nil
}

// load decodes one document with the configured decoder options.
func (o *options) load(path string) (scene.Node, []scene.Skipped, error) {
	doc, err := scene.ReadDocument(path)
	if err != nil {
		return nil, nil, err
	}
	d := o.app.Registry.NewDecoder(o.app.DecodeOptions...)
	root, err := d.Unmarshal(doc.Format, doc.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, d.Skipped(), nil
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
