package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChangelog(t *testing.T) {
	tests := map[string]struct {
		version     string
		wantPrefix  string
		wantContain []string
		wantMissing []string
	}{
		"full changelog": {
			wantPrefix:  "# Changelog\n",
			wantContain: []string{"[0.3.0]", "[0.2.0]", "[0.1.0]"},
		},
		"single release": {
			version:     "v0.2.0",
			wantPrefix:  "# Changelog\n",
			wantContain: []string{"[0.2.0]"},
			wantMissing: []string{"[0.3.0]", "[0.1.0]"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, stdout, _ := newTestCmd("")

			require.NoError(t, runChangelog(cmd, tt.version))
			assert.True(t, strings.HasPrefix(stdout.String(), tt.wantPrefix))
			for _, want := range tt.wantContain {
				assert.Contains(t, stdout.String(), want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, stdout.String(), missing)
			}
		})
	}
}

func TestRunChangelog_UnknownVersion(t *testing.T) {
	cmd, _, _ := newTestCmd("")
	err := runChangelog(cmd, "42.0.0")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}
