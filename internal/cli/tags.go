package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/ariel-frischer/chlog/internal/output"
)

var tagsOpts struct {
	input    string
	repoPath string
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Report releases without a matching git tag",
	Long: `Compare the releases of a changelog with the tags of a git repository.

A release matches a tag named "<version>" or "v<version>". A release named
"unreleased" is skipped. Exits with code 1 when any release is untagged.

Examples:
  chlog tags -i CHANGELOG.yml
  chlog tags -i CHANGELOG.yml --repo-path ../widget`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTags(cmd, tagsOpts.input, tagsOpts.repoPath)
	},
}

func init() {
	tagsCmd.GroupID = GroupVerify
	tagsCmd.Flags().StringVarP(&tagsOpts.input, "input", "i", "", "changelog file or http(s) URL (default stdin)")
	tagsCmd.Flags().StringVar(&tagsOpts.repoPath, "repo-path", "", "path inside the git repository (default current directory)")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, input, repoPath string) error {
	doc, err := loadDocument(cmd, input)
	if err != nil {
		return err
	}

	var versions []string
	for _, version := range doc.Versions() {
		if strings.EqualFold(version, "unreleased") {
			continue
		}
		versions = append(versions, version)
	}

	statuses, err := git.MatchTags(repoPath, versions)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Input, "reading git tags",
			"Run inside a git repository or pass --repo-path")
	}

	missing := 0
	for _, status := range statuses {
		if status.Tag == "" {
			output.PrintFailure(cmd.OutOrStdout(), fmt.Sprintf("%s has no tag", status.Version))
			missing++
			continue
		}
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s tagged as %s", status.Version, status.Tag))
	}

	if missing > 0 {
		output.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%d of %d releases are untagged", missing, len(statuses)))
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
