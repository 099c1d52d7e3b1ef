package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/output"
	"github.com/ariel-frischer/chlog/internal/render"
)

var checkOpts struct {
	source   string
	markdown string
	asciidoc string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify generated changelogs match the YAML source",
	Long: `Verify that generated changelog files are in sync with the YAML source.

Each requested target is rendered from the source and compared byte for byte
with the file on disk. Targets are checked concurrently. Returns exit code 0
when every target is in sync and exit code 4 when any target is out of sync.

Example:
  chlog check --source CHANGELOG.yml --markdown CHANGELOG.md --asciidoc CHANGELOG.adoc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, checkOpts.source, checkTargets(checkOpts.markdown, checkOpts.asciidoc))
	},
}

func init() {
	checkCmd.GroupID = GroupVerify
	checkCmd.Flags().StringVar(&checkOpts.source, "source", "CHANGELOG.yml", "YAML changelog source")
	checkCmd.Flags().StringVar(&checkOpts.markdown, "markdown", "", "generated Markdown file to verify")
	checkCmd.Flags().StringVar(&checkOpts.asciidoc, "asciidoc", "", "generated AsciiDoc file to verify")
	rootCmd.AddCommand(checkCmd)
}

// checkTarget is a generated file and the formatter that produced it.
type checkTarget struct {
	path      string
	formatter format.Formatter
}

func checkTargets(markdown, asciidoc string) []checkTarget {
	var targets []checkTarget
	if markdown != "" {
		targets = append(targets, checkTarget{path: markdown, formatter: format.Markdown{}})
	}
	if asciidoc != "" {
		targets = append(targets, checkTarget{path: asciidoc, formatter: format.AsciiDoc{}})
	}
	return targets
}

func runCheck(cmd *cobra.Command, source string, targets []checkTarget) error {
	if len(targets) == 0 {
		return clierrors.NewArgumentErrorWithUsage("no targets to check",
			"chlog check --source CHANGELOG.yml --markdown CHANGELOG.md",
			"Pass --markdown and/or --asciidoc")
	}

	doc, err := changelog.Load(source)
	if err != nil {
		return clierrors.Classify(err)
	}

	// Each goroutine writes only its own index.
	inSync := make([]bool, len(targets))

	g, _ := errgroup.WithContext(commandContext(cmd))
	for i, target := range targets {
		g.Go(func() error {
			ok, err := targetInSync(doc, target)
			if err != nil {
				return err
			}
			inSync[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return clierrors.Classify(err)
	}

	var stale []string
	for i, target := range targets {
		if inSync[i] {
			output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s is in sync with %s", target.path, source))
		} else {
			output.PrintFailure(cmd.OutOrStdout(), fmt.Sprintf("%s is out of sync with %s", target.path, source))
			stale = append(stale, target.path)
		}
	}

	if len(stale) > 0 {
		return clierrors.OutOfSync(stale)
	}
	return nil
}

// targetInSync renders the document for one target and compares it with the file.
// A missing file counts as out of sync.
func targetInSync(doc *changelog.Document, target checkTarget) (bool, error) {
	expected, err := render.New(target.formatter, appConfig.RenderOptions()).String(doc)
	if err != nil {
		return false, fmt.Errorf("rendering %s: %w", target.path, err)
	}

	actual, err := os.ReadFile(target.path)
	if err != nil {
		if os.IsNotExist(err) {
			debugf("%s does not exist", target.path)
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", target.path, err)
	}

	return bytes.Equal([]byte(expected), actual), nil
}
