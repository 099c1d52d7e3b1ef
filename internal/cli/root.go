// Package cli implements the chlog command tree.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/config"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/ariel-frischer/chlog/internal/output"
	"github.com/ariel-frischer/chlog/internal/render"
)

// Command groups shown in help output.
const (
	GroupRender = "render"
	GroupVerify = "verify"
	GroupTools  = "tools"
)

var (
	cfgFile string
	debug   bool

	// appConfig is replaced by the loaded configuration before any command runs.
	appConfig = &config.Configuration{
		HostURL:     render.DefaultHostURL,
		RegistryURL: render.DefaultRegistryURL,
		Format:      format.NameMarkdown,
	}

	// debugf prints [DEBUG] lines when --debug is set.
	debugf = func(string, ...any) {}
)

var renderOpts struct {
	input  string
	output string
}

var rootCmd = &cobra.Command{
	Use:   "chlog [markdown|asciidoc]",
	Short: "Render YAML changelogs into GitHub Markdown or AsciiDoc",
	Long: `chlog renders a structured YAML changelog into GitHub-flavored Markdown
or AsciiDoc.

The document is read from stdin (or --input) and the rendered changelog is
written to stdout (or --output). The optional positional argument selects the
format: "asciidoc" selects AsciiDoc, anything else selects Markdown. Without
it, the format from configuration is used (default: markdown).

Entry text supports shorthand references:
  #42        pull request link
  $abc123    commit link
  @octocat   profile link
  NOTE: ...  admonition (notices only; also TIP, IMPORTANT, WARNING, CAUTION)`,
	Example: `  chlog < CHANGELOG.yml > CHANGELOG.md
  chlog asciidoc -i CHANGELOG.yml -o CHANGELOG.adoc
  chlog -i https://example.com/CHANGELOG.yml`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, selectorArg(args), renderOpts.input, renderOpts.output)
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRender, Title: "Rendering:"},
		&cobra.Group{ID: GroupVerify, Title: "Verification:"},
		&cobra.Group{ID: GroupTools, Title: "Integration:"},
	)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .chlog/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug information on stderr")

	rootCmd.Flags().StringVarP(&renderOpts.input, "input", "i", "", "changelog file or http(s) URL (default stdin)")
	rootCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "", "output file (default stdout)")
}

// Execute runs the root command and reports any error on stderr.
// The returned error is an *ExitError or a classified *errors.CLIError.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return err
	}

	cliErr := classify(err)
	clierrors.FprintError(rootCmd.ErrOrStderr(), cliErr)
	return cliErr
}

// Prefixes of the errors cobra and pflag return for a bad command line.
var usageErrorPrefixes = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"required flag",
	"flag needs an argument",
	"invalid argument",
	"bad flag syntax",
}

// classify turns any error into a CLIError. Cobra's own argument errors
// become argument errors.
func classify(err error) *clierrors.CLIError {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}
	if isUsageError(err.Error()) {
		cliErr := clierrors.NewArgumentError(err.Error(), "Run 'chlog --help' for usage")
		cliErr.Err = err
		return cliErr
	}
	return clierrors.Classify(err)
}

func isUsageError(msg string) bool {
	if strings.Contains(msg, "arg(s)") {
		return true
	}
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

func setup(cmd *cobra.Command, _ []string) error {
	if debug {
		logger := output.DebugLogger(cmd.ErrOrStderr())
		debugf = logger
		git.SetDebugLogger(logger)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration",
			"Check .chlog/config.yml and CHLOG_* environment variables",
			"Valid keys: host_url, registry_url, format",
		)
	}
	appConfig = cfg
	debugf("config: host_url=%s registry_url=%s format=%s", cfg.HostURL, cfg.RegistryURL, cfg.Format)
	return nil
}

// selectorArg returns the positional format selector, or "" when absent.
func selectorArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// formatterFor resolves the formatter: an explicit selector follows the
// "asciidoc or Markdown" rule, otherwise the configured format applies.
func formatterFor(selector string) (format.Formatter, error) {
	if selector != "" {
		return format.ForMode(selector), nil
	}
	f, err := format.Lookup(appConfig.Format)
	if err != nil {
		return nil, clierrors.NewConfigError(
			fmt.Sprintf("configured format %q is not available", appConfig.Format),
			"Available formats: "+strings.Join(format.Names(), ", "),
			"Set format in .chlog/config.yml or CHLOG_FORMAT",
		)
	}
	return f, nil
}

func newRenderer(selector string) (*render.Renderer, error) {
	f, err := formatterFor(selector)
	if err != nil {
		return nil, err
	}
	return render.New(f, appConfig.RenderOptions()), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// readInput returns the raw document named by input, or stdin when input is empty.
func readInput(cmd *cobra.Command, input string) ([]byte, error) {
	if input != "" {
		debugf("reading %s", input)
		ctx, cancel := context.WithTimeout(commandContext(cmd), changelog.DefaultRemoteTimeout)
		defer cancel()
		data, err := changelog.ReadSource(ctx, input)
		if err != nil {
			return nil, clierrors.Wrap(err, clierrors.Input, "Check that the file or URL exists and is readable")
		}
		return data, nil
	}

	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok && output.IsTerminal(f) {
		return nil, clierrors.NoInput()
	}

	output.PrintStatus(cmd.ErrOrStderr(), "Accepting input from stdin")
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, clierrors.WrapWithMessage(err, clierrors.Input, "reading stdin")
	}
	return data, nil
}

// loadDocument reads and decodes the document named by input.
func loadDocument(cmd *cobra.Command, input string) (*changelog.Document, error) {
	data, err := readInput(cmd, input)
	if err != nil {
		return nil, err
	}
	doc, err := changelog.LoadBytes(data)
	if err != nil {
		return nil, clierrors.Classify(err)
	}
	debugf("loaded %s with %d releases", doc.Repo, doc.Releases.Len())
	return doc, nil
}

// writeOutput writes rendered text to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Render, fmt.Sprintf("writing %s", path))
	}
	debugf("wrote %d bytes to %s", len(text), path)
	return nil
}

func runRender(cmd *cobra.Command, selector, input, outputPath string) error {
	r, err := newRenderer(selector)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, input)
	if err != nil {
		return err
	}

	text, err := r.String(doc)
	if err != nil {
		return clierrors.Classify(err)
	}
	return writeOutput(cmd, outputPath, text)
}
