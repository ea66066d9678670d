// ABOUTME: MCP resource implementations for the gym tracker.
// ABOUTME: Provides gym://dashboard, gym://today, and gym://exercises resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DLAppStuff/GymAppTest/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// gym://dashboard - weekly/monthly counts and this month's records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gym://dashboard",
		Name:        "Gym Dashboard",
		Description: "Workout counts for this week and month plus monthly personal records",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// gym://today - every set logged today, grouped by exercise
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gym://today",
		Name:        "Today's Training",
		Description: "All sets logged today, grouped by exercise",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// gym://exercises - exercise list with records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gym://exercises",
		Name:        "Exercises",
		Description: "All exercises with category, set count, and personal record",
		MIMEType:    "application/json",
	}, s.handleExercisesResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("gym://dashboard", s.tracker.Dashboard())
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := s.tracker.Today()

	exercises := make(map[string][]tracker.IndexedSet)
	totalSets := 0
	var volume float64
	for _, summary := range s.tracker.Exercises() {
		view, err := s.tracker.Exercise(summary.Name)
		if err != nil {
			continue // deleted between list and read
		}
		if len(view.TodaySets) == 0 {
			continue
		}
		exercises[summary.Name] = view.TodaySets
		totalSets += len(view.TodaySets)
		volume += view.DailyVolume[today]
	}

	result := map[string]interface{}{
		"date":      today,
		"exercises": exercises,
		"counts": map[string]interface{}{
			"exercises": len(exercises),
			"sets":      totalSets,
			"volume":    volume,
		},
	}
	return jsonResource("gym://today", result)
}

func (s *Server) handleExercisesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("gym://exercises", s.tracker.Exercises())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
