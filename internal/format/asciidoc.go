package format

import (
	"fmt"
	"strings"
)

// AsciiDoc renders AsciiDoc markup.
type AsciiDoc struct{}

func (AsciiDoc) Heading(level int, text string) string {
	checkLevel(level)
	return strings.Repeat("=", level) + " " + text
}

func (AsciiDoc) Link(text, target string) string {
	return "link:" + target + "[" + text + "]"
}

func (AsciiDoc) Admonition(kind AdmonitionKind, body string) (string, error) {
	switch kind {
	case Note, Important, Warning:
		return kind.String() + ": " + body, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAdmonition, kind)
	}
}

// Emoji renders the icon as a numeric character reference.
func (AsciiDoc) Emoji(name string) (string, error) {
	cp, err := Codepoint(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("&#x%X;", cp), nil
}
