package cli

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/build"
	chlogmcp "github.com/ariel-frischer/chlog/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an MCP server on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout.

Tools:
  render_changelog  render a YAML document as Markdown or AsciiDoc
  list_releases     list the releases of a YAML document

Links use the configured host_url and registry_url.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		server := chlogmcp.NewServer(build.Version, appConfig.RenderOptions())
		return server.Run(commandContext(cmd), &mcp.StdioTransport{})
	},
}

func init() {
	serveCmd.GroupID = GroupTools
	rootCmd.AddCommand(serveCmd)
}
