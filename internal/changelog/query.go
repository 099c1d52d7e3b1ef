package changelog

import (
	"fmt"
	"strings"
)

// ReleaseNotFoundError is returned when a requested release doesn't exist.
type ReleaseNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *ReleaseNotFoundError) Error() string {
	return fmt.Sprintf("release %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// NormalizeVersion normalizes a version string by removing the "v" prefix.
// This allows accepting both "v0.6.0" and "0.6.0" as input.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
}

// Versions returns the release versions in document order.
func (d *Document) Versions() []string {
	return d.Releases.Keys()
}

// Release retrieves a release by version, ignoring a leading "v" on either side.
// The returned key is the version exactly as written in the document.
func (d *Document) Release(version string) (string, Release, error) {
	normalized := NormalizeVersion(version)

	for key, release := range d.Releases.All() {
		if NormalizeVersion(key) == normalized {
			return key, release, nil
		}
	}

	return "", Release{}, &ReleaseNotFoundError{
		Version:           version,
		AvailableVersions: d.Versions(),
	}
}

// Only returns a copy of the document holding a single release.
// The repository registry is shared with the original.
func (d *Document) Only(version string) (*Document, error) {
	key, release, err := d.Release(version)
	if err != nil {
		return nil, err
	}

	single := &Document{Repo: d.Repo, Repos: d.Repos}
	single.Releases.Set(key, release)
	return single, nil
}

// EntryCount returns the number of entries a render would emit: sections,
// packages and, when the document has a registry, dependency rollups.
func (d *Document) EntryCount() int {
	count := 0
	for _, release := range d.Releases.All() {
		for _, section := range release.Sections.All() {
			count += section.Changes.Count()
		}
		for _, changes := range release.Packages.All() {
			count += changes.Count()
		}
		if d.Repos == nil {
			continue
		}
		for _, changes := range release.Repos.All() {
			count += changes.Count()
		}
	}
	return count
}
