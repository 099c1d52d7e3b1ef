package cli

import (
	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

var extractOpts struct {
	input  string
	output string
}

var extractCmd = &cobra.Command{
	Use:   "extract <version> [markdown|asciidoc]",
	Short: "Render a single release",
	Long: `Render one release of a changelog, e.g. for release notes.

The output has the same layout as a full render, restricted to the requested
release. A leading "v" on the version is ignored.

Examples:
  chlog extract 1.2.0 < CHANGELOG.yml
  chlog extract v1.2.0 asciidoc -i CHANGELOG.yml -o notes.adoc`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0], selectorArg(args[1:]), extractOpts.input, extractOpts.output)
	},
}

func init() {
	extractCmd.GroupID = GroupRender
	extractCmd.Flags().StringVarP(&extractOpts.input, "input", "i", "", "changelog file or http(s) URL (default stdin)")
	extractCmd.Flags().StringVarP(&extractOpts.output, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, version, selector, input, outputPath string) error {
	r, err := newRenderer(selector)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, input)
	if err != nil {
		return err
	}

	single, err := doc.Only(version)
	if err != nil {
		return clierrors.Classify(err)
	}

	text, err := r.String(single)
	if err != nil {
		return clierrors.Classify(err)
	}
	return writeOutput(cmd, outputPath, text)
}
