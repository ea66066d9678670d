// ABOUTME: MCP server setup for the gym tracker.
// ABOUTME: Wraps the MCP server around a shared Tracker.
package mcp

import (
	"context"

	"github.com/DLAppStuff/GymAppTest/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	log       logrus.FieldLogger
}

// NewServer creates a new MCP server over the given tracker.
func NewServer(t *tracker.Tracker, log logrus.FieldLogger) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gym",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   t,
		log:       log,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("mcp server listening on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
