package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog [version]",
	Short: "Show chlog's own changelog",
	Long: `Render the changelog embedded in this chlog binary, using the configured
format. With a version, only that release is shown.

Examples:
  chlog changelog
  chlog changelog v0.3.0`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelog(cmd, selectorArg(args))
	},
}

func init() {
	changelogCmd.GroupID = GroupTools
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, version string) error {
	doc, err := changelog.LoadEmbedded()
	if err != nil {
		return clierrors.Classify(err)
	}

	if version != "" {
		if doc, err = doc.Only(version); err != nil {
			return clierrors.Classify(err)
		}
	}

	r, err := newRenderer("")
	if err != nil {
		return err
	}
	text, err := r.String(doc)
	if err != nil {
		return clierrors.Classify(err)
	}
	return writeOutput(cmd, "", text)
}
