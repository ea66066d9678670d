// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DLAppStuff/GymAppTest/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log sets and read your progress through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "gym": {
        "command": "gym",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add_exercise       Create an exercise
  delete_exercise    Delete an exercise and its record
  list_exercises     List exercises, optionally by category
  add_set            Log a set (reports new records)
  delete_set         Delete a set logged today
  get_exercise       Exercise record, today's sets, and progress series
  get_dashboard      Weekly/monthly workout counts and records
  get_heatmap        Month grid of training days
  add_body_weight    Record body weight for a day
  list_body_weight   Body weight history

AVAILABLE RESOURCES:

  gym://dashboard    Dashboard summary
  gym://today        Sets logged today
  gym://exercises    All exercises`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(gym, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
