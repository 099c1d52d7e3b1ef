package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/inline"
)

func TestFormatErrorPlain(t *testing.T) {
	err := NewArgumentErrorWithUsage("bad format", "chlog [markdown|asciidoc]", "Pick one", "Or none")

	got := FormatErrorPlain(err)
	want := "Error [Argument Error]: bad format\n" +
		"\nUsage: chlog [markdown|asciidoc]\n" +
		"\nTo fix this:\n  • Pick one\n  • Or none\n"
	assert.Equal(t, want, got)
	assert.Empty(t, FormatErrorPlain(nil))
}

func TestFprintError(t *testing.T) {
	var buf bytes.Buffer
	FprintError(&buf, NewConfigError("bad host_url"))
	assert.Contains(t, buf.String(), "bad host_url")

	buf.Reset()
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	assert.Nil(t, Wrap(nil, Render))

	wrapped := WrapWithMessage(cause, Input, "reading input")
	assert.Equal(t, "reading input: boom", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, cause))

	outer := fmt.Errorf("context: %w", wrapped)
	assert.Same(t, wrapped, AsCLIError(outer))
	assert.Nil(t, AsCLIError(cause))
}

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		err  error
		want ErrorCategory
	}{
		"validation": {
			err:  fmt.Errorf("%w: %w", changelog.ErrMalformedDocument, &changelog.ValidationError{Field: "repo", Message: "missing"}),
			want: Input,
		},
		"malformed": {
			err:  fmt.Errorf("%w: %w", changelog.ErrMalformedDocument, stderrors.New("yaml: line 1")),
			want: Input,
		},
		"empty": {
			err:  changelog.ErrEmptyDocument,
			want: Input,
		},
		"release not found": {
			err:  &changelog.ReleaseNotFoundError{Version: "9.9.9"},
			want: Argument,
		},
		"pull request overflow": {
			err:  fmt.Errorf("release 1.0.0: %w", &inline.PullRequestError{Ref: "#9", Err: strconv.ErrRange}),
			want: Render,
		},
		"unknown emoji": {
			err:  fmt.Errorf("%w %q", format.ErrUnknownEmoji, "x"),
			want: Render,
		},
		"unknown format": {
			err:  fmt.Errorf("%w %q", format.ErrUnknownFormat, "rst"),
			want: Argument,
		},
		"cli error passes through": {
			err:  NewSyncError("stale"),
			want: Sync,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Category)
			assert.True(t, stderrors.Is(got, tt.err) || got == tt.err)
		})
	}

	assert.Nil(t, Classify(nil))
}
