// Package inline rewrites shorthand references inside free text.
//
// Each pass scans left to right and replaces non-overlapping matches,
// copying everything else verbatim. Passes compose: later passes see the
// output of earlier ones.
package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ariel-frischer/chlog/internal/format"
)

var (
	admonitionPattern  = regexp.MustCompile(`(WARNING|TIP|NOTE|IMPORTANT|CAUTION):\s.*`)
	pullRequestPattern = regexp.MustCompile(`#\d+`)
	commitPattern      = regexp.MustCompile(`\$[a-f\d]+`)
	mentionPattern     = regexp.MustCompile(`@[\w-]+`)
)

// ErrUnknownAdmonition is returned for an admonition keyword with no rendering.
var ErrUnknownAdmonition = errors.New("unknown admonition keyword")

// PullRequestError reports a pull request reference whose id does not fit.
type PullRequestError struct {
	Ref string
	Err error
}

func (e *PullRequestError) Error() string {
	return fmt.Sprintf("invalid pull request reference %s: %v", e.Ref, e.Err)
}

func (e *PullRequestError) Unwrap() error {
	return e.Err
}

// Links holds the base URLs that reference links are built from.
type Links struct {
	// Host is the forge root, e.g. "https://github.com/".
	Host string
	// Repo is the short "owner/name" path of the repository entries belong to.
	Repo string
}

// RepoURL returns the absolute URL of the repository.
func (l Links) RepoURL() string {
	return JoinURL(l.Host, l.Repo)
}

// JoinURL joins a base URL and a path with exactly one slash between them.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// KindForKeyword maps an admonition keyword onto a renderable kind.
// TIP renders as a note and CAUTION as a warning.
func KindForKeyword(keyword string) (format.AdmonitionKind, error) {
	switch keyword {
	case "NOTE", "TIP":
		return format.Note, nil
	case "IMPORTANT":
		return format.Important, nil
	case "WARNING", "CAUTION":
		return format.Warning, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownAdmonition, keyword)
	}
}

// Admonitions rewrites "KEYWORD: text" through the formatter. The match runs
// to the end of the line.
func Admonitions(text string, f format.AdmonitionFormatter) (string, error) {
	return replaceAll(admonitionPattern, text, func(match []string) (string, error) {
		keyword := match[1]
		kind, err := KindForKeyword(keyword)
		if err != nil {
			return "", err
		}
		// \s only matches single-byte ASCII whitespace.
		return f.Admonition(kind, match[0][len(keyword)+2:])
	})
}

// PullRequests rewrites "#123" into a link to the pull request.
// An id that overflows uint64 fails the whole line.
func PullRequests(text string, links Links, f format.LinkFormatter) (string, error) {
	base := links.RepoURL()
	return replaceAll(pullRequestPattern, text, func(match []string) (string, error) {
		id, err := strconv.ParseUint(match[0][1:], 10, 64)
		if err != nil {
			return "", &PullRequestError{Ref: match[0], Err: err}
		}
		return f.Link(fmt.Sprintf("#%d", id), fmt.Sprintf("%s/pull/%d", base, id)), nil
	})
}

// Commits rewrites "$abc123" into a link to the commit.
func Commits(text string, links Links, f format.LinkFormatter) string {
	base := links.RepoURL()
	return mustReplace(commitPattern, text, func(match []string) string {
		hash := match[0][1:]
		return f.Link(hash, base+"/commit/"+hash)
	})
}

// Mentions rewrites "@name" into a link to the user profile on the host.
func Mentions(text, host string, f format.LinkFormatter) string {
	return mustReplace(mentionPattern, text, func(match []string) string {
		return f.Link(match[0], JoinURL(host, match[0][1:]))
	})
}

// Line rewrites one changelog entry: mentions, then commits, then pull requests.
func Line(text string, links Links, f format.LinkFormatter) (string, error) {
	out := Mentions(text, links.Host, f)
	out = Commits(out, links, f)
	return PullRequests(out, links, f)
}

// NoticeFormatter is the capability set needed to render notices.
type NoticeFormatter interface {
	format.AdmonitionFormatter
	format.LinkFormatter
}

// Notice rewrites a release or section notice: admonitions, then mentions.
func Notice(text, host string, f NoticeFormatter) (string, error) {
	out, err := Admonitions(text, f)
	if err != nil {
		return "", err
	}
	return Mentions(out, host, f), nil
}

func replaceAll(re *regexp.Regexp, text string, fn func(match []string) (string, error)) (string, error) {
	indexes := re.FindAllStringSubmatchIndex(text, -1)
	if len(indexes) == 0 {
		return text, nil
	}

	var b strings.Builder
	last := 0
	for _, loc := range indexes {
		match := make([]string, len(loc)/2)
		for i := range match {
			if loc[2*i] >= 0 {
				match[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}

		replacement, err := fn(match)
		if err != nil {
			return "", err
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(replacement)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

func mustReplace(re *regexp.Regexp, text string, fn func(match []string) string) string {
	out, _ := replaceAll(re, text, func(match []string) (string, error) {
		return fn(match), nil
	})
	return out
}
