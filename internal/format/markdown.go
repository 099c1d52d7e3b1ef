package format

import (
	"fmt"
	"strings"
)

// Markdown renders GitHub-flavored Markdown.
type Markdown struct{}

func (Markdown) Heading(level int, text string) string {
	checkLevel(level)
	return strings.Repeat("#", level) + " " + text
}

func (Markdown) Link(text, target string) string {
	return "[" + text + "](" + target + ")"
}

// Admonition renders a GitHub alert blockquote.
func (Markdown) Admonition(kind AdmonitionKind, body string) (string, error) {
	switch kind {
	case Note, Important, Warning:
		return fmt.Sprintf("> [!%s]\\\n> %s", kind, body), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAdmonition, kind)
	}
}

// Emoji renders a colon-wrapped shortcode. Any name is accepted.
func (Markdown) Emoji(name string) (string, error) {
	return ":" + name + ":", nil
}
