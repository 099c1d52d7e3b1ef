package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/format"
)

func TestCheckTargets(t *testing.T) {
	tests := map[string]struct {
		markdown string
		asciidoc string
		want     []checkTarget
	}{
		"none": {},
		"markdown only": {
			markdown: "CHANGELOG.md",
			want:     []checkTarget{{path: "CHANGELOG.md", formatter: format.Markdown{}}},
		},
		"both": {
			markdown: "CHANGELOG.md",
			asciidoc: "CHANGELOG.adoc",
			want: []checkTarget{
				{path: "CHANGELOG.md", formatter: format.Markdown{}},
				{path: "CHANGELOG.adoc", formatter: format.AsciiDoc{}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkTargets(tt.markdown, tt.asciidoc))
		})
	}
}

func TestRunCheck(t *testing.T) {
	tests := map[string]struct {
		markdown     func(t *testing.T) string
		asciidoc     func(t *testing.T) string
		wantCode     int
		wantInStdout []string
	}{
		"all in sync": {
			markdown:     func(t *testing.T) string { return renderDocument(t, format.Markdown{}, testDocument) },
			asciidoc:     func(t *testing.T) string { return renderDocument(t, format.AsciiDoc{}, testDocument) },
			wantCode:     ExitSuccess,
			wantInStdout: []string{"CHANGELOG.md is in sync", "CHANGELOG.adoc is in sync"},
		},
		"markdown stale": {
			markdown:     func(*testing.T) string { return "# Changelog\n" },
			asciidoc:     func(t *testing.T) string { return renderDocument(t, format.AsciiDoc{}, testDocument) },
			wantCode:     ExitOutOfSync,
			wantInStdout: []string{"CHANGELOG.md is out of sync", "CHANGELOG.adoc is in sync"},
		},
		"asciidoc missing": {
			markdown:     func(t *testing.T) string { return renderDocument(t, format.Markdown{}, testDocument) },
			wantCode:     ExitOutOfSync,
			wantInStdout: []string{"CHANGELOG.adoc is out of sync"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			source := filepath.Join(dir, "CHANGELOG.yml")
			markdown := filepath.Join(dir, "CHANGELOG.md")
			asciidoc := filepath.Join(dir, "CHANGELOG.adoc")
			require.NoError(t, os.WriteFile(source, []byte(testDocument), 0o644))
			if tt.markdown != nil {
				require.NoError(t, os.WriteFile(markdown, []byte(tt.markdown(t)), 0o644))
			}
			if tt.asciidoc != nil {
				require.NoError(t, os.WriteFile(asciidoc, []byte(tt.asciidoc(t)), 0o644))
			}

			cmd, stdout, _ := newTestCmd("")
			err := runCheck(cmd, source, checkTargets(markdown, asciidoc))

			assert.Equal(t, tt.wantCode, ExitCode(err))
			for _, want := range tt.wantInStdout {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestRunCheck_NoTargets(t *testing.T) {
	cmd, _, _ := newTestCmd("")
	err := runCheck(cmd, "CHANGELOG.yml", nil)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestRunCheck_InvalidSource(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "CHANGELOG.yml")
	require.NoError(t, os.WriteFile(source, []byte("repo: a/b\n"), 0o644))

	cmd, _, _ := newTestCmd("")
	err := runCheck(cmd, source, checkTargets(filepath.Join(dir, "CHANGELOG.md"), ""))
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
}
