package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/render"
)

const testDocument = `repo: acme/widget
releases:
  1.1.0:
    date: 2024-03-01
    sections:
      Core:
        changes:
          fixed:
            - Fix crash on empty input #12
  1.0.0:
    date: 2024-01-15
    sections:
      Core:
        changes:
          added:
            - Initial release by @octocat
`

// newTestCmd returns a command wired to in-memory stdio.
func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())
	return cmd, &stdout, &stderr
}

// renderDocument renders YAML with the given formatter and default options.
func renderDocument(t *testing.T, f format.Formatter, yml string) string {
	t.Helper()
	doc, err := changelog.LoadBytes([]byte(yml))
	require.NoError(t, err)
	out, err := render.New(f, render.Options{}).String(doc)
	require.NoError(t, err)
	return out
}
