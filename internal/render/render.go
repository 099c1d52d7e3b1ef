// Package render walks a changelog document and emits formatted lines.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/inline"
)

const (
	DefaultHostURL     = "https://github.com/"
	DefaultRegistryURL = "https://crates.io/crates/"
)

// ErrUnknownDependencyRepo is returned when a release rolls up changes from a
// repository missing in the document registry.
var ErrUnknownDependencyRepo = errors.New("dependency repository not in registry")

// Options configures the base URLs links are built from.
type Options struct {
	// HostURL is the forge root used for repository, release and mention links.
	HostURL string
	// RegistryURL is the package registry root used for package headings.
	RegistryURL string
}

func (o Options) withDefaults() Options {
	if o.HostURL == "" {
		o.HostURL = DefaultHostURL
	}
	if o.RegistryURL == "" {
		o.RegistryURL = DefaultRegistryURL
	}
	return o
}

// Renderer turns documents into markup through a single formatter.
// It holds no mutable state and may be shared.
type Renderer struct {
	f    format.Formatter
	opts Options
}

// New creates a renderer for the given formatter.
func New(f format.Formatter, opts Options) *Renderer {
	return &Renderer{f: f, opts: opts.withDefaults()}
}

// String renders the document into a single string ending with a newline.
func (r *Renderer) String(doc *changelog.Document) (string, error) {
	lines, err := r.Lines(doc)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// Render writes the rendered document to w. Nothing is written on error.
func (r *Renderer) Render(doc *changelog.Document, w io.Writer) error {
	out, err := r.String(doc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Lines renders the document into output lines. Empty strings are blank lines.
func (r *Renderer) Lines(doc *changelog.Document) ([]string, error) {
	lines := []string{r.f.Heading(1, "Changelog")}

	for version, release := range doc.Releases.All() {
		releaseLines, err := r.release(doc, version, release)
		if err != nil {
			return nil, fmt.Errorf("release %s: %w", version, err)
		}
		lines = append(lines, releaseLines...)
	}

	return lines, nil
}

func (r *Renderer) release(doc *changelog.Document, version string, release changelog.Release) ([]string, error) {
	links := inline.Links{Host: r.opts.HostURL, Repo: doc.Repo}

	bookmark, err := r.f.Emoji("bookmark")
	if err != nil {
		return nil, err
	}
	tag := r.f.Link(version, links.RepoURL()+"/releases/tag/"+version)
	lines := []string{"", r.f.Heading(2, fmt.Sprintf("%s %s (%s)", bookmark, tag, release.Date)), ""}

	notice, err := r.notice(release.Notice)
	if err != nil {
		return nil, err
	}
	lines = append(lines, notice...)

	for name, section := range release.Sections.All() {
		lines = append(lines, "", r.f.Heading(3, strings.TrimSpace(name)), "")

		notice, err := r.notice(section.Notice)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}
		if len(notice) > 0 {
			lines = append(lines, append(notice, "")...)
		}

		entries, err := r.changes(section.Changes, links)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}
		lines = append(lines, entries...)
	}

	for name, changes := range release.Packages.All() {
		heading := r.f.Link(name, inline.JoinURL(r.opts.RegistryURL, name))
		lines = append(lines, "", r.f.Heading(3, heading), "")

		entries, err := r.changes(changes, links)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", name, err)
		}
		lines = append(lines, entries...)
	}

	// A document without a registry never renders rollups.
	if doc.Repos == nil {
		return lines, nil
	}

	for name, changes := range release.Repos.All() {
		info, ok := doc.Repos.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDependencyRepo, name)
		}
		depLinks := inline.Links{Host: r.opts.HostURL, Repo: info.Repo}

		heading := r.f.Link(name, depLinks.RepoURL())
		if info.Description != "" {
			heading += " - " + info.Description
		}
		lines = append(lines, "", r.f.Heading(3, strings.TrimSpace(heading)), "")

		entries, err := r.changes(changes, depLinks)
		if err != nil {
			return nil, fmt.Errorf("repo %s: %w", name, err)
		}
		lines = append(lines, entries...)
	}

	return lines, nil
}

// notice renders a trimmed notice, or nothing when it is blank.
func (r *Renderer) notice(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	out, err := inline.Notice(text, r.opts.HostURL, r.f)
	if err != nil {
		return nil, err
	}
	return []string{out}, nil
}

// changes renders one entry line per item, in presentation order.
func (r *Renderer) changes(c changelog.Changes, links inline.Links) ([]string, error) {
	var lines []string

	for _, cat := range changelog.PresentationOrder() {
		entries, ok := c.Get(cat)
		if !ok {
			continue
		}

		icon, err := r.f.Emoji(cat.Icon())
		if err != nil {
			return nil, err
		}
		if cat == changelog.Breaking {
			icon += "[" + cat.Label() + "]"
		}

		for _, entry := range entries {
			text, err := inline.Line(strings.TrimSpace(entry), links, r.f)
			if err != nil {
				return nil, fmt.Errorf("%s entry %q: %w", cat, entry, err)
			}
			lines = append(lines, "* "+icon+" "+text)
		}
	}

	return lines, nil
}
