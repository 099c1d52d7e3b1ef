// Package git inspects the release tags of a repository with go-git, so no
// git CLI installation is required.
package git

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// Tags returns the short names of every tag in the repository, sorted.
func Tags(path string) ([]string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading tags: %w", err)
	}

	sort.Strings(tags)
	logDebug("[git] found %d tags", len(tags))
	return tags, nil
}

// TagStatus pairs a release version with the tag that matches it, if any.
type TagStatus struct {
	Version string
	// Tag is the matching tag name, or empty when the release is untagged.
	Tag string
}

// MatchTags reports, in the given order, which versions have a tag named
// either "<version>" or "v<version>".
func MatchTags(path string, versions []string) ([]TagStatus, error) {
	tags, err := Tags(path)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(tags))
	for _, tag := range tags {
		known[tag] = true
	}

	statuses := make([]TagStatus, 0, len(versions))
	for _, version := range versions {
		status := TagStatus{Version: version}
		for _, candidate := range tagCandidates(version) {
			if known[candidate] {
				status.Tag = candidate
				break
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func tagCandidates(version string) []string {
	bare := strings.TrimPrefix(version, "v")
	return []string{version, bare, "v" + bare}
}
