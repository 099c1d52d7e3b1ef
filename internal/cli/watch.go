package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
	"github.com/ariel-frischer/chlog/internal/watch"
)

var watchOpts struct {
	input  string
	output string
}

var watchCmd = &cobra.Command{
	Use:   "watch [markdown|asciidoc]",
	Short: "Re-render the changelog whenever the source changes",
	Long: `Render the changelog once, then again every time the source file is
written, until interrupted. A render that fails is reported and the previous
output is left untouched.

Example:
  chlog watch -i CHANGELOG.yml -o CHANGELOG.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, selectorArg(args), watchOpts.input, watchOpts.output)
	},
}

func init() {
	watchCmd.GroupID = GroupRender
	watchCmd.Flags().StringVarP(&watchOpts.input, "input", "i", "", "changelog file to watch")
	watchCmd.Flags().StringVarP(&watchOpts.output, "output", "o", "", "output file to regenerate")
	_ = watchCmd.MarkFlagRequired("input")
	_ = watchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, selector, input, outputPath string) error {
	r, err := newRenderer(selector)
	if err != nil {
		return err
	}

	build := func() error {
		doc, err := changelog.Load(input)
		if err != nil {
			return err
		}
		text, err := r.String(doc)
		if err != nil {
			return err
		}
		return os.WriteFile(outputPath, []byte(text), 0o644)
	}

	w, err := watch.New(input, build)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Input)
	}
	defer w.Close()

	w.OnResult = func(err error) {
		if err != nil {
			clierrors.FprintError(cmd.ErrOrStderr(), clierrors.Classify(err))
			return
		}
		output.PrintRebuild(cmd.ErrOrStderr(), outputPath)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	output.PrintStatus(cmd.ErrOrStderr(), "Watching "+input+" (Ctrl-C to stop)")
	return w.Run(ctx)
}
