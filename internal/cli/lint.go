package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
	"github.com/ariel-frischer/chlog/internal/yaml"
)

var lintVerbose bool

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check a changelog document without rendering it",
	Long: `Check the YAML syntax and the structure of a changelog document.

Syntax errors are reported with their line and column. Structural problems
(missing required keys, unknown change categories, duplicate releases and
dependency repositories missing from the registry) are reported with the
offending field. Nothing is written to stdout.

Examples:
  chlog lint CHANGELOG.yml
  chlog lint --verbose < CHANGELOG.yml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd, selectorArg(args), lintVerbose)
	},
}

func init() {
	lintCmd.GroupID = GroupVerify
	lintCmd.Flags().BoolVarP(&lintVerbose, "verbose", "v", false, "list releases with their entry counts")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, input string, verbose bool) error {
	data, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	name := input
	if name == "" {
		name = "<stdin>"
	}

	stats, err := yaml.ValidateBytes(data, name)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Input, "Fix the YAML syntax at the reported position")
	}
	if stats.Documents > 1 {
		output.PrintWarning(cmd.ErrOrStderr(),
			fmt.Sprintf("%s holds %d YAML documents; only the first is rendered", name, stats.Documents))
	}

	doc, err := changelog.LoadBytes(data)
	if err != nil {
		return clierrors.Classify(err)
	}

	output.PrintSuccess(cmd.ErrOrStderr(),
		fmt.Sprintf("%s: %d releases, %d entries", name, doc.Releases.Len(), doc.EntryCount()))

	if verbose {
		for version, release := range doc.Releases.All() {
			single, err := doc.Only(version)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s (%s) - %d entries\n", version, release.Date, single.EntryCount())
		}
	}
	return nil
}
