package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/scenegraph/internal/core/scene"
)

func newInspectCmd(opts *options) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:     "inspect [file]",
		Short:   "Print the node tree of a document",
		Example: "scenectl inspect level.yaml --depth 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, skipped, err := opts.load(args[0])
			if err != nil {
				return err
			}
			defer root.Base().Dispose()

			out := cmd.OutOrStdout()
			printTree(out, root, depth)
			for _, s := range skipped {
				fmt.Fprintf(out, "skipped %s under %s: %v\n", s.Type, s.Parent, s.Err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", -1, "maximum depth to print, -1 for all")
	return cmd
}

func printTree(w io.Writer, root scene.Node, maxDepth int) {
	var walk func(n scene.Node, depth int)
	walk = func(n scene.Node, depth int) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describeNode(n))
		if maxDepth >= 0 && depth >= maxDepth {
			return
		}
		for _, c := range n.Base().Children() {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
}

func describeNode(n scene.Node) string {
	b := n.Base()
	var sb strings.Builder
	sb.WriteString(n.TypeTag())
	if b.Name() != "" {
		fmt.Fprintf(&sb, " %q", b.Name())
	}
	if !b.Enabled() {
		sb.WriteString(" disabled")
	}
	if b.Locked() {
		sb.WriteString(" locked")
	}
	if p, ok := b.Parent().(interface{ AsWorld() *scene.World }); ok && p.AsWorld().ActiveStageID() == b.ID() {
		sb.WriteString(" active")
	}
	if s, ok := n.(interface{ AsStage() *scene.Stage }); ok {
		st := s.AsStage()
		fmt.Fprintf(&sb, " [%g, %g)", st.Start, st.Finish)
	}
	if cs := b.Components(); len(cs) > 0 {
		tags := make([]string, len(cs))
		for i, c := range cs {
			tags[i] = c.TypeTag()
		}
		fmt.Fprintf(&sb, " {%s}", strings.Join(tags, ", "))
	}
	return sb.String()
}
