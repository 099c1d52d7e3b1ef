package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/inline"
)

// Common error messages for the chlog CLI.
// These templates ensure consistent, actionable error messages.

// NoInput creates an error when stdin is a terminal and no input file was given.
func NoInput() *CLIError {
	return NewArgumentErrorWithUsage(
		"no changelog input: stdin is a terminal",
		"chlog [markdown|asciidoc] < CHANGELOG.yml",
		"Pipe a changelog document into chlog",
		"Or pass a file or URL with --input",
	)
}

// ReleaseNotFound creates an error for a release missing from the document.
func ReleaseNotFound(err *changelog.ReleaseNotFoundError) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  err.Error(),
		Remediation: []string{
			"Check the version spelling; a leading 'v' is ignored",
			"List releases with: chlog lint --verbose",
		},
		Err: err,
	}
}

// OutOfSync creates an error for a generated file that differs from its source.
func OutOfSync(files []string) *CLIError {
	return NewSyncError(
		fmt.Sprintf("generated changelog out of sync: %s", strings.Join(files, ", ")),
		"Regenerate with: chlog -i CHANGELOG.yml -o CHANGELOG.md",
	)
}

// Classify converts an error from loading or rendering a changelog into a CLIError
// with remediation matched to its cause. CLIErrors pass through unchanged.
func Classify(err error) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var notFound *changelog.ReleaseNotFoundError
	var prErr *inline.PullRequestError

	switch {
	case stderrors.As(err, &notFound):
		return ReleaseNotFound(notFound)
	case changelog.IsValidationError(err):
		return Wrap(err, Input,
			"Check the field named in the message against the changelog schema",
			"Validate the file with: chlog lint <file>",
		)
	case stderrors.Is(err, changelog.ErrEmptyDocument):
		return Wrap(err, Input, "Provide a document with 'repo' and 'releases' keys")
	case stderrors.As(err, &prErr):
		return Wrap(err, Render, "Pull request ids must fit in an unsigned 64-bit integer")
	case stderrors.Is(err, inline.ErrUnknownAdmonition), stderrors.Is(err, format.ErrUnknownAdmonition):
		return Wrap(err, Render, "Use one of NOTE, TIP, IMPORTANT, WARNING or CAUTION")
	case stderrors.Is(err, format.ErrUnknownEmoji):
		return Wrap(err, Render, "The AsciiDoc formatter only knows the icons used by change categories")
	case stderrors.Is(err, format.ErrUnknownFormat):
		return WrapWithMessage(err, Argument, "invalid format",
			"Available formats: "+strings.Join(format.Names(), ", "))
	case stderrors.Is(err, changelog.ErrMalformedDocument):
		return Wrap(err, Input, "Fix the YAML syntax; 'chlog lint' reports the line and column")
	default:
		return Wrap(err, Render)
	}
}
