package config

import (
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/render"
)

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# chlog configuration
# Values here are overridden by CHLOG_* environment variables.

host_url: https://github.com/          # Prefix for repository, pull request, commit and mention links
registry_url: https://crates.io/crates/ # Package registry root for package headings
format: markdown                        # Default output: markdown | github | asciidoc
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"host_url":     render.DefaultHostURL,
		"registry_url": render.DefaultRegistryURL,
		"format":       format.NameMarkdown,
	}
}
