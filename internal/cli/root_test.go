package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/format"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "chlog [markdown|asciidoc]", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCmd_Flags(t *testing.T) {
	tests := map[string]struct {
		flagName   string
		persistent bool
		shorthand  string
	}{
		"config": {flagName: "config", persistent: true},
		"debug":  {flagName: "debug", persistent: true},
		"input":  {flagName: "input", shorthand: "i"},
		"output": {flagName: "output", shorthand: "o"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			flags := rootCmd.Flags()
			if tt.persistent {
				flags = rootCmd.PersistentFlags()
			}
			flag := flags.Lookup(tt.flagName)
			require.NotNil(t, flag, "flag %s should exist", tt.flagName)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	registered := make(map[string]string)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = cmd.GroupID
	}

	tests := map[string]string{
		"extract":   GroupRender,
		"watch":     GroupRender,
		"lint":      GroupVerify,
		"check":     GroupVerify,
		"tags":      GroupVerify,
		"serve":     GroupTools,
		"changelog": GroupTools,
		"version":   GroupTools,
	}

	for name, group := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := registered[name]
			require.True(t, ok, "%s should be registered", name)
			assert.Equal(t, group, got)
		})
	}
}

func TestSelectorArg(t *testing.T) {
	assert.Equal(t, "", selectorArg(nil))
	assert.Equal(t, "asciidoc", selectorArg([]string{"asciidoc"}))
}

func TestFormatterFor(t *testing.T) {
	tests := map[string]struct {
		selector   string
		configured string
		want       format.Formatter
		wantErr    bool
	}{
		"explicit asciidoc": {selector: "asciidoc", configured: "markdown", want: format.AsciiDoc{}},
		"explicit markdown": {selector: "markdown", configured: "asciidoc", want: format.Markdown{}},
		"any other selector is markdown": {
			selector: "rst", configured: "asciidoc", want: format.Markdown{},
		},
		"configured asciidoc": {configured: "asciidoc", want: format.AsciiDoc{}},
		"configured github":   {configured: "github", want: format.Markdown{}},
		"configured unknown":  {configured: "rst", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			saved := appConfig.Format
			appConfig.Format = tt.configured
			defer func() { appConfig.Format = saved }()

			got, err := formatterFor(tt.selector)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, clierrors.Configuration, clierrors.AsCLIError(err).Category)
				assert.Equal(t, ExitValidationFailed, ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		err  error
		want clierrors.ErrorCategory
	}{
		"unknown command": {
			err:  errors.New(`unknown command "frobnicate" for "chlog"`),
			want: clierrors.Argument,
		},
		"unknown flag": {
			err:  errors.New("unknown flag: --nope"),
			want: clierrors.Argument,
		},
		"missing required flag": {
			err:  errors.New(`required flag(s) "input", "output" not set`),
			want: clierrors.Argument,
		},
		"flag without value": {
			err:  errors.New("flag needs an argument: --input"),
			want: clierrors.Argument,
		},
		"render failure": {
			err:  errors.New("boom"),
			want: clierrors.Render,
		},
		"too many args": {
			err:  errors.New("accepts at most 1 arg(s), received 2"),
			want: clierrors.Argument,
		},
		"cli error kept": {
			err:  clierrors.NewSyncError("stale"),
			want: clierrors.Sync,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err).Category)
		})
	}
}

func TestRunRender_Stdin(t *testing.T) {
	tests := map[string]struct {
		selector string
		want     format.Formatter
	}{
		"default is markdown": {want: format.Markdown{}},
		"asciidoc selector":   {selector: "asciidoc", want: format.AsciiDoc{}},
		"markdown selector":   {selector: "markdown", want: format.Markdown{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, stdout, stderr := newTestCmd(testDocument)

			require.NoError(t, runRender(cmd, tt.selector, "", ""))
			assert.Equal(t, renderDocument(t, tt.want, testDocument), stdout.String())
			assert.Contains(t, stderr.String(), "Accepting input from stdin")
		})
	}
}

func TestRunRender_Files(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "CHANGELOG.yml")
	outputPath := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(input, []byte(testDocument), 0o644))

	cmd, stdout, _ := newTestCmd("")
	require.NoError(t, runRender(cmd, "", input, outputPath))

	assert.Empty(t, stdout.String())
	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, renderDocument(t, format.Markdown{}, testDocument), string(written))
}

func TestRunRender_Errors(t *testing.T) {
	tests := map[string]struct {
		stdin    string
		input    string
		wantCode int
	}{
		"malformed yaml": {
			stdin:    "repo: [unclosed",
			wantCode: ExitValidationFailed,
		},
		"missing repo": {
			stdin:    "releases: {}\n",
			wantCode: ExitValidationFailed,
		},
		"missing input file": {
			input:    filepath.Join(t.TempDir(), "missing.yml"),
			wantCode: ExitValidationFailed,
		},
		"pull request overflow": {
			stdin: `repo: a/b
releases:
  1.0.0:
    date: today
    sections:
      Core:
        changes:
          fixed:
            - "Overflow #99999999999999999999"
`,
			wantCode: ExitValidationFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, stdout, _ := newTestCmd(tt.stdin)

			err := runRender(cmd, "", tt.input, "")
			require.Error(t, err)
			assert.NotNil(t, clierrors.AsCLIError(err))
			assert.Equal(t, tt.wantCode, ExitCode(err))
			assert.Empty(t, stdout.String(), "nothing is written on failure")
		})
	}
}

func TestExecute_UsageErrorsExitWithInvalidArguments(t *testing.T) {
	tests := map[string]struct {
		args        []string
		wantInError string
	}{
		"too many positional args": {
			args:        []string{"asciidoc", "extra"},
			wantInError: "accepts at most 1 arg(s)",
		},
		"unknown flag": {
			args:        []string{"--nope"},
			wantInError: "unknown flag: --nope",
		},
		"extract without version": {
			args:        []string{"extract"},
			wantInError: "arg(s)",
		},
		"watch without required flags": {
			args:        []string{"watch"},
			wantInError: "required flag(s)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			rootCmd.SetArgs(tt.args)
			rootCmd.SetErr(&stderr)
			defer func() {
				rootCmd.SetArgs(nil)
				rootCmd.SetErr(nil)
			}()

			err := Execute()
			require.Error(t, err)
			assert.Equal(t, ExitInvalidArguments, ExitCode(err))
			assert.Contains(t, stderr.String(), "Argument Error")
			assert.Contains(t, stderr.String(), tt.wantInError)
		})
	}
}
