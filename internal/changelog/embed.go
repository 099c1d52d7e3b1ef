package changelog

import (
	_ "embed"
	"fmt"
)

//go:embed changelog.yml
var embeddedChangelog []byte

// Embedded returns the raw changelog.yml describing chlog itself, as of this build.
func Embedded() []byte {
	return embeddedChangelog
}

// LoadEmbedded parses and validates the embedded changelog.yml.
func LoadEmbedded() (*Document, error) {
	if len(embeddedChangelog) == 0 {
		return nil, fmt.Errorf("embedded changelog is empty (binary may have been built without embedded content)")
	}

	return LoadBytes(embeddedChangelog)
}
