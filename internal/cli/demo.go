package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/decor"
	"github.com/matzehuels/boxlayout/pkg/node"
	"github.com/matzehuels/boxlayout/pkg/present"
	"github.com/matzehuels/boxlayout/pkg/text"
)

// demoCommand creates the demo command that presents a built-in figure.
func (c *CLI) demoCommand() *cobra.Command {
	var simple, noColor, padRows bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Present the built-in sample figure",
		Long: `Present the built-in sample figure.

The full figure nests two rows and two columns:

  +----------+------+----+
  |          |  B2  | B3 |
  |          +-----------+
  |    B1    |           |
  |          |     B4    |
  |          |           |
  +----------+-----------+
  |         B5           |
  +----------------------+

B2 is padded to a fixed width of 4 and B3 is cut to a fixed width of 2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := demoFigure()
			if simple {
				root = simpleFigure()
			}

			opts := []present.Option{present.WithLogger(loggerFromContext(cmd.Context()))}
			if colorDisabled(noColor) {
				opts = append(opts, present.WithoutStyles())
			}
			if padRows {
				opts = append(opts, present.WithPadRows())
			}
			if _, err := present.New(opts...).Present(cmd.OutOrStdout(), root); err != nil {
				return fmt.Errorf("present demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&simple, "simple", false, "present the small two-row figure instead")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "strip colors and attributes (also set by NO_COLOR)")
	cmd.Flags().BoolVar(&padRows, "pad-rows", false, "pad short rows inside columns to the full width")

	return cmd
}

// demoFigure builds the five-block figure shown in the demo help text.
func demoFigure() node.Node {
	b1 := node.NewBlock()
	b1.Println(decor.Red(text.New("111111\n11")))
	b1.Println(decor.Green(text.New("111111")))
	b1.Println(text.New("111111"))
	b1.Println(text.New("111111"))
	b1.Println(text.New("111111"))
	b1.Println(decor.Yellow(text.New("111111")))

	b2 := node.NewFixedBlock(4)
	b2.Println(text.New("222"))
	b2.Println(decor.Magenta(text.New("222")))
	b2.Println(text.New("222"))

	b3 := node.NewFixedBlock(2)
	b3.Println(text.New("33333"))
	b3.Println(decor.Cyan(text.New("33333")))

	b4 := node.NewBlock()
	for i := 0; i < 3; i++ {
		b4.Println(text.New("4444444"))
	}

	b5 := node.NewBlock()
	for i := 0; i < 4; i++ {
		b5.Println(text.New("5555555555555"))
	}

	h2 := node.NewHLayout(b2, node.NewDividerString("|"), b3)
	v2 := node.NewVLayout(h2, b4)
	h1 := node.NewHLayout(b1, v2)
	return node.NewVLayout(h1, node.NewDividerString("-"), b5)
}

// simpleFigure builds two columns over a divider and a styled block.
func simpleFigure() node.Node {
	b1 := node.NewBlock().Println(text.New("111")).Println(text.New("111"))
	b2 := node.NewBlock().Println(text.New("22")).Println(text.New("22"))
	b3 := node.NewBlock().Println(decor.Red(text.New("333333")))

	h1 := node.NewHLayout(b1, node.NewDividerString("|"), b2)
	return node.NewVLayout(h1, node.NewDividerString("-"), b3)
}
