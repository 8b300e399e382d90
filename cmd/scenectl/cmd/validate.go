package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/scenegraph/internal/core/scene"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "validate [files...]",
		Short:   "Decode documents in parallel and report failures",
		Example: "scenectl validate --lenient levels/*.yaml",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([]scene.Document, 0, len(args))
			for _, path := range args {
				doc, err := scene.ReadDocument(path)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			}

			app := opts.app
			loaded, err := app.Registry.LoadAll(cmd.Context(), docs, app.Config.Decode.Workers, app.DecodeOptions...)
			out := cmd.OutOrStdout()
			for _, l := range loaded {
				if l.Root == nil {
					continue
				}
				fmt.Fprintf(out, "ok %s: %d nodes, %d skipped\n", l.Name, l.Root.Base().Count(), len(l.Skipped))
				l.Root.Base().Dispose()
			}
			return err
		},
	}
}
