// Package format provides the markup formatters used by the renderer.
//
// A formatter is a set of small capabilities (headings, links, admonitions
// and emoji). The renderer depends only on Formatter; concrete formatters
// are stateless values selected once by name.
package format

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// AdmonitionKind is a callout style a formatter can render.
type AdmonitionKind int

const (
	Note AdmonitionKind = iota
	Important
	Warning
)

// String returns the upper-case keyword of the kind.
func (k AdmonitionKind) String() string {
	switch k {
	case Note:
		return "NOTE"
	case Important:
		return "IMPORTANT"
	case Warning:
		return "WARNING"
	default:
		return fmt.Sprintf("AdmonitionKind(%d)", int(k))
	}
}

// HeadingFormatter renders section headings. Level must be within 1..6.
type HeadingFormatter interface {
	Heading(level int, text string) string
}

// LinkFormatter renders hyperlinks.
type LinkFormatter interface {
	Link(text, target string) string
}

// AdmonitionFormatter renders callout blocks.
type AdmonitionFormatter interface {
	Admonition(kind AdmonitionKind, body string) (string, error)
}

// EmojiFormatter renders named icons.
type EmojiFormatter interface {
	Emoji(name string) (string, error)
}

// Formatter is the full capability set the renderer needs.
type Formatter interface {
	HeadingFormatter
	LinkFormatter
	AdmonitionFormatter
	EmojiFormatter
}

// ErrUnknownFormat is returned by Lookup for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrUnknownAdmonition is returned when a formatter has no rendering for a kind.
var ErrUnknownAdmonition = errors.New("unknown admonition kind")

const (
	NameMarkdown = "markdown"
	NameGitHub   = "github"
	NameAsciiDoc = "asciidoc"
)

var registry = map[string]Formatter{
	NameMarkdown: Markdown{},
	NameGitHub:   Markdown{},
	NameAsciiDoc: AsciiDoc{},
}

// Names returns the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the formatter registered under name.
func Lookup(name string) (Formatter, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// ForMode picks the formatter for a positional mode selector.
// "asciidoc" selects AsciiDoc; anything else, including "", selects Markdown.
func ForMode(mode string) Formatter {
	if mode == NameAsciiDoc {
		return AsciiDoc{}
	}
	return Markdown{}
}

func checkLevel(level int) {
	if level < 1 || level > 6 {
		panic(fmt.Sprintf("heading level %d out of range 1..6", level))
	}
}
