package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	content := Embedded()
	assert.NotEmpty(t, content, "embedded changelog should not be empty")
	assert.Contains(t, string(content), "repo: ariel-frischer/chlog")
}

func TestLoadEmbedded(t *testing.T) {
	tests := map[string]struct {
		assertion func(t *testing.T, doc *Document, err error)
	}{
		"loads without error": {
			assertion: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				assert.NotNil(t, doc)
			},
		},
		"has correct repo": {
			assertion: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ariel-frischer/chlog", doc.Repo)
			},
		},
		"newest release first": {
			assertion: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, doc.Versions())
				assert.Equal(t, "0.3.0", doc.Versions()[0])
			},
		},
		"has entries": {
			assertion: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				assert.Positive(t, doc.EntryCount())
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := LoadEmbedded()
			tt.assertion(t, doc, err)
		})
	}
}
