// Package mcp provides a Model Context Protocol server for chlog.
// It exposes the changelog renderer as tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ariel-frischer/chlog/internal/render"
)

// NewServer creates an MCP server with all chlog tools registered.
func NewServer(version string, opts render.Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "chlog",
		Version: version,
	}, nil)
	registerTools(server, opts)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for pure tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all chlog tools to the server.
func registerTools(server *mcp.Server, opts render.Options) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_changelog",
		Description: "Render a YAML changelog document into GitHub Markdown or AsciiDoc. Optionally restrict the output to a single release.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_releases",
		Description: "List the releases of a YAML changelog document in document order, with dates and entry counts.",
		Annotations: readOnlyAnnotations(),
	}, handleListReleases())
}
