package cli

import (
	"fmt"

	"github.com/proyectmyvet/myvet/cmd/myvet/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start MCP server exposing clinic tools",
	Long: `Start an MCP (Model Context Protocol) server that lets an LLM client
list your appointments, browse the local visit history, and run symptom
triage on your behalf. Uses the session stored by 'myvet login'.

Configure in your MCP client's config file:
  {
    "mcpServers": {
      "myvet": {
        "command": "myvet",
        "args": ["serve-mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := mcp.StartServer(dataPath, serverURL); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
