package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/scenegraph/internal/core/scene"
)

func newFingerprintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [files...]",
		Short: "Print a content hash of each decoded document",
		Long:  "Fingerprints hash the re-encoded tree, so the same scene in JSON and YAML " +
			"hashes the same. Ids are part of the hash.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				root, _, err := opts.load(path)
				if err != nil {
					return err
				}
				sum, err := scene.Fingerprint(root)
				root.Base().Dispose()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%016x  %s\n", sum, path)
			}
			return nil
		},
	}
}
