package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/document"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
)

// formatCommand creates the format command that re-encodes a document.
func (c *CLI) formatCommand() *cobra.Command {
	var output, to string

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Re-encode a layout document as canonical TOML or JSON",
		Long: `Re-encode a layout document as canonical TOML or JSON.

Style names are not preserved: the output holds the plain text of every
block and divider.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pipeline.ReadSource(args[0])
			if err != nil {
				return err
			}
			doc, err := pipeline.Decode(cmd.Context(), src)
			if err != nil {
				return err
			}

			format, err := targetFormat(to, output, src.Format)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := document.Write(&buf, doc, format); err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), "Formatted %s", args[0])
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&to, "to", "", "output format: toml, json (default: from --output, else the input format)")

	return cmd
}

// targetFormat picks the output format from the --to flag, the output path,
// or the input format, in that order.
func targetFormat(to, output string, input document.Format) (document.Format, error) {
	switch to {
	case "toml":
		return document.FormatTOML, nil
	case "json":
		return document.FormatJSON, nil
	case "":
	default:
		return 0, fmt.Errorf("invalid format: %q (must be 'toml' or 'json')", to)
	}
	if output != "" {
		return document.FormatFromPath(output), nil
	}
	return input, nil
}
