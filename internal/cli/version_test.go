package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/build"
)

func TestVersionCmd(t *testing.T) {
	tests := map[string]struct {
		short bool
		want  string
	}{
		"full":  {want: build.Info() + "\n"},
		"short": {short: true, want: build.Version + "\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			saved := versionShort
			versionShort = tt.short
			defer func() { versionShort = saved }()

			cmd, stdout, _ := newTestCmd("")
			require.NoError(t, versionCmd.RunE(cmd, nil))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}
