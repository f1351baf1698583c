package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can load,
search, edit and analyse text through textdesk.

By default the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead (MCP Inspector, remote access).

Tools: load_text, find, replace, selective_replace, word_frequency,
generate_summary, text_stats, normalize_text, stopwords.
Resources: textdesk://buffer, textdesk://buffer/original,
textdesk://stopwords, textdesk://history/{limit}.

Examples:
  textdesk mcp serve
  textdesk mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "textdesk": {
        "command": "/path/to/textdesk",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Editor:    editorService,
		Analysis:  analysisService,
		Stopwords: stopwordService,
		Normalise: normaliseService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
