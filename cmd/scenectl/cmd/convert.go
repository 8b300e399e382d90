package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/pkg/encoding"
)

func newConvertCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "convert [in] [out]",
		Short: "Re-encode a document, optionally in another format",
		Long:  "Decode a document and write it back. The output format comes from --format, " +
			"then from the output extension, then from the configured default. " +
			"Use - as output to print to stdout.",
		Example: "scenectl convert level.yaml level.json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := opts.load(args[0])
			if err != nil {
				return err
			}
			defer root.Base().Dispose()

			f, err := outputFormat(format, args[1], opts.app.Config.OutputFormat())
			if err != nil {
				return err
			}
			data, err := scene.Marshal(f, root)
			if err != nil {
				return err
			}
			if args[1] == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return writeFile(args[1], data)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json or yaml")
	return cmd
}

func outputFormat(flag, path string, fallback encoding.Format) (encoding.Format, error) {
	if flag != "" {
		return encoding.ParseFormat(flag)
	}
	if path != "-" {
		if f, err := encoding.FormatFromPath(path); err == nil {
			return f, nil
		}
	}
	return fallback, nil
}
