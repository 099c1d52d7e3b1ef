package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/format"
	"github.com/ariel-frischer/chlog/internal/render"
)

// --- Render tool ---

// RenderInput is the input for the render_changelog tool.
type RenderInput struct {
	Document string `json:"document"          jsonschema:"changelog document as YAML text"`
	Format   string `json:"format,omitempty"  jsonschema:"output format: markdown (default), github or asciidoc"`
	Version  string `json:"version,omitempty" jsonschema:"render only this release (a leading v is ignored)"`
}

// RenderOutput is the output for the render_changelog tool.
type RenderOutput struct {
	Format string `json:"format" jsonschema:"format the document was rendered in"`
	Text   string `json:"text"   jsonschema:"rendered changelog"`
}

func handleRender(opts render.Options) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		name := in.Format
		if name == "" {
			name = format.NameMarkdown
		}
		f, err := format.Lookup(name)
		if err != nil {
			return nil, RenderOutput{}, err
		}

		doc, err := changelog.LoadBytes([]byte(in.Document))
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("loading document: %w", err)
		}

		if in.Version != "" {
			if doc, err = doc.Only(in.Version); err != nil {
				return nil, RenderOutput{}, err
			}
		}

		text, err := render.New(f, opts).String(doc)
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("rendering: %w", err)
		}

		return nil, RenderOutput{Format: name, Text: text}, nil
	}
}

// --- List releases tool ---

// ListReleasesInput is the input for the list_releases tool.
type ListReleasesInput struct {
	Document string `json:"document" jsonschema:"changelog document as YAML text"`
}

// ReleaseSummary describes one release.
type ReleaseSummary struct {
	Version string `json:"version" jsonschema:"release version as written"`
	Date    string `json:"date"    jsonschema:"release date as written"`
	Entries int    `json:"entries" jsonschema:"number of change entries in the release"`
}

// ListReleasesOutput is the output for the list_releases tool.
type ListReleasesOutput struct {
	Repo     string           `json:"repo"     jsonschema:"repository the changelog belongs to"`
	Releases []ReleaseSummary `json:"releases" jsonschema:"releases in document order"`
}

func handleListReleases() mcp.ToolHandlerFor[ListReleasesInput, ListReleasesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ListReleasesInput) (*mcp.CallToolResult, ListReleasesOutput, error) {
		doc, err := changelog.LoadBytes([]byte(in.Document))
		if err != nil {
			return nil, ListReleasesOutput{}, fmt.Errorf("loading document: %w", err)
		}

		out := ListReleasesOutput{Repo: doc.Repo, Releases: []ReleaseSummary{}}
		for _, version := range doc.Versions() {
			single, err := doc.Only(version)
			if err != nil {
				return nil, ListReleasesOutput{}, err
			}
			release, _ := doc.Releases.Get(version)
			out.Releases = append(out.Releases, ReleaseSummary{
				Version: version,
				Date:    release.Date,
				Entries: single.EntryCount(),
			})
		}
		return nil, out, nil
	}
}
