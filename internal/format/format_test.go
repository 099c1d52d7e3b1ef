package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

func TestHeading(t *testing.T) {
	tests := map[string]struct {
		f     Formatter
		level int
		want  string
	}{
		"markdown level 1": {f: Markdown{}, level: 1, want: "# Title"},
		"markdown level 3": {f: Markdown{}, level: 3, want: "### Title"},
		"asciidoc level 2": {f: AsciiDoc{}, level: 2, want: "== Title"},
		"asciidoc level 6": {f: AsciiDoc{}, level: 6, want: "====== Title"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Heading(tt.level, "Title"))
		})
	}
}

func TestHeading_PanicsOutOfRange(t *testing.T) {
	for _, f := range []Formatter{Markdown{}, AsciiDoc{}} {
		assert.Panics(t, func() { f.Heading(0, "x") })
		assert.Panics(t, func() { f.Heading(7, "x") })
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "[#1](https://x/pull/1)", Markdown{}.Link("#1", "https://x/pull/1"))
	assert.Equal(t, "link:https://x/pull/1[#1]", AsciiDoc{}.Link("#1", "https://x/pull/1"))
}

func TestAdmonition(t *testing.T) {
	tests := map[string]struct {
		f    Formatter
		kind AdmonitionKind
		want string
	}{
		"markdown note":      {f: Markdown{}, kind: Note, want: "> [!NOTE]\\\n> body"},
		"markdown important": {f: Markdown{}, kind: Important, want: "> [!IMPORTANT]\\\n> body"},
		"markdown warning":   {f: Markdown{}, kind: Warning, want: "> [!WARNING]\\\n> body"},
		"asciidoc note":      {f: AsciiDoc{}, kind: Note, want: "NOTE: body"},
		"asciidoc warning":   {f: AsciiDoc{}, kind: Warning, want: "WARNING: body"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.f.Admonition(tt.kind, "body")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Markdown{}.Admonition(AdmonitionKind(42), "body")
	assert.True(t, errors.Is(err, ErrUnknownAdmonition))
	_, err = AsciiDoc{}.Admonition(AdmonitionKind(42), "body")
	assert.True(t, errors.Is(err, ErrUnknownAdmonition))
}

func TestEmoji(t *testing.T) {
	got, err := Markdown{}.Emoji("star2")
	require.NoError(t, err)
	assert.Equal(t, ":star2:", got)

	got, err = AsciiDoc{}.Emoji("bookmark")
	require.NoError(t, err)
	assert.Equal(t, "&#x1F516;", got)

	got, err = AsciiDoc{}.Emoji("zap")
	require.NoError(t, err)
	assert.Equal(t, "&#x26A1;", got)

	_, err = AsciiDoc{}.Emoji("unicorn")
	assert.True(t, errors.Is(err, ErrUnknownEmoji))
}

func TestEmoji_CoversEveryCategory(t *testing.T) {
	for _, c := range changelog.AllCategories() {
		_, err := Codepoint(c.Icon())
		assert.NoError(t, err, "category %s", c)
	}
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    Formatter
		wantErr bool
	}{
		"markdown":   {name: "markdown", want: Markdown{}},
		"github":     {name: "github", want: Markdown{}},
		"asciidoc":   {name: "asciidoc", want: AsciiDoc{}},
		"mixed case": {name: " AsciiDoc ", want: AsciiDoc{}},
		"unknown":    {name: "rst", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownFormat))
				assert.Contains(t, err.Error(), "asciidoc, github, markdown")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForMode(t *testing.T) {
	assert.Equal(t, AsciiDoc{}, ForMode("asciidoc"))
	assert.Equal(t, Markdown{}, ForMode(""))
	assert.Equal(t, Markdown{}, ForMode("markdown"))
	assert.Equal(t, Markdown{}, ForMode("anything"))
}
