package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/errors"
	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
	"github.com/matzehuels/boxlayout/pkg/present"
)

// checkCommand creates the check command that validates a document without
// rendering it.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a layout document and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := args[0]

			src, err := pipeline.ReadSource(path)
			if err != nil {
				return err
			}
			doc, err := pipeline.Decode(cmd.Context(), src)
			if err != nil {
				printError(out, "%s is not a valid layout", path)
				printDetail(out, "%s", errors.UserMessage(err))
				return err
			}

			stats, err := present.New(present.WithoutStyles()).Present(io.Discard, doc.Root)
			if err != nil {
				return err
			}

			printSuccess(out, "%s is valid", path)
			if doc.Title != "" {
				printKeyValue(out, "title", doc.Title)
			}
			printKeyValue(out, "nodes", strconv.Itoa(stats.Nodes))
			printKeyValue(out, "size", fmt.Sprintf("%d×%d", stats.Width, stats.Height))
			printKeyValue(out, "line ends", strconv.Itoa(stats.Endings))

			for _, w := range truncations(doc.Root) {
				printWarning(out, "%s", w)
			}
			printNextStep(out, "Render it", fmt.Sprintf("%s render %s", appName, path))
			return nil
		},
	}
}

// truncations lists the fixed-width blocks whose content is cut off.
func truncations(root node.Node) []string {
	var out []string
	index := 0
	stack := []node.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := n.(type) {
		case *node.Block:
			index++
			width, fixed := v.FixedWidth()
			if !fixed {
				continue
			}
			for i, l := range v.TrimmedLines() {
				if l.Width() > width {
					out = append(out, fmt.Sprintf("block %d: line %d is %d columns wide, cut to %d", index, i+1, l.Width(), width))
				}
			}
		case node.Container:
			children := v.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
	return out
}
