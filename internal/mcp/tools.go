// ABOUTME: MCP tool implementations for the gym tracker.
// ABOUTME: Exposes exercise, set, dashboard, heatmap, and body weight operations.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/stats"
	"github.com/DLAppStuff/GymAppTest/internal/tracker"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Create an exercise in the Push, Pull, or Legs category",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise together with its sets and personal record",
	}, s.handleDeleteExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercises, optionally filtered by category",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: "Log a set (weight in kg × reps) for an exercise",
	}, s.handleAddSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_set",
		Description: "Delete a set logged today, by set ID or by index",
	}, s.handleDeleteSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise",
		Description: "Get an exercise's record, today's sets, and progress series",
	}, s.handleGetExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Get weekly and monthly workout counts and this month's records",
	}, s.handleGetDashboard)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_heatmap",
		Description: "Get the workout presence grid for the current or previous month",
	}, s.handleGetHeatmap)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_body_weight",
		Description: "Record body weight for a date, replacing any entry for that date",
	}, s.handleAddBodyWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_body_weight",
		Description: "List body weight entries in date order",
	}, s.handleListBodyWeight)
}

// Tool input/output types

type addExerciseInput struct {
	Name     string `json:"name" jsonschema:"Exercise name"`
	Category string `json:"category" jsonschema:"Push, Pull, or Legs"`
}

type exerciseNameInput struct {
	Name string `json:"name" jsonschema:"Exercise name"`
}

type listExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category (Push, Pull, Legs)"`
}

type listExercisesOutput struct {
	Exercises []tracker.ExerciseSummary `json:"exercises"`
}

type addSetInput struct {
	Exercise string  `json:"exercise" jsonschema:"Exercise name"`
	Weight   float64 `json:"weight" jsonschema:"Weight in kilograms"`
	Reps     int     `json:"reps" jsonschema:"Repetitions"`
	Date     string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type addSetOutput struct {
	SetID     string                 `json:"set_id"`
	Date      string                 `json:"date"`
	NewRecord bool                   `json:"new_record"`
	Record    *models.PersonalRecord `json:"record,omitempty"`
	Message   string                 `json:"message"`
	Warning   string                 `json:"warning,omitempty"`
}

type deleteSetInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
	SetID    string `json:"set_id,omitempty" jsonschema:"Set ID; takes precedence over index"`
	Index    *int   `json:"index,omitempty" jsonschema:"Zero-based set index in the exercise log"`
}

// setOutput carries the set id as a string so the output schema stays plain.
type setOutput struct {
	Index  int     `json:"index"`
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Date   string  `json:"date"`
}

type exerciseOutput struct {
	Name            string                 `json:"name"`
	Category        string                 `json:"category"`
	PR              *models.PersonalRecord `json:"pr,omitempty"`
	TodaySets       []setOutput            `json:"today_sets"`
	MaxWeightSeries []models.WeightPoint   `json:"max_weight_series"`
	VolumeSeries    []models.VolumePoint   `json:"volume_series"`
	TotalSets       int                    `json:"total_sets"`
}

type simpleOutput struct {
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

type heatmapInput struct {
	Previous bool `json:"previous,omitempty" jsonschema:"Show the previous month instead of the current one"`
}

type addBodyWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"Body weight in kilograms"`
	Date   string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type bodyWeightOutput struct {
	Entries []models.BodyWeightEntry `json:"entries"`
}

// warning turns a persistence failure into a non-fatal message and
// passes every other error through.
func warning(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if errors.Is(err, tracker.ErrPersistenceWrite) {
		return err.Error(), nil
	}
	return "", err
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	warn, err := warning(s.tracker.AddExercise(input.Name, category))
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added exercise %s (%s)", input.Name, category),
		Warning: warn,
	}, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input exerciseNameInput) (*mcp.CallToolResult, simpleOutput, error) {
	warn, err := warning(s.tracker.DeleteExercise(input.Name))
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted exercise: %s", input.Name),
		Warning: warn,
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, listExercisesOutput, error) {
	if input.Category == "" {
		return nil, listExercisesOutput{Exercises: s.tracker.Exercises()}, nil
	}
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return nil, listExercisesOutput{}, err
	}
	return nil, listExercisesOutput{Exercises: s.tracker.ExercisesByCategory(category)}, nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, addSetOutput, error) {
	res, err := s.tracker.AddSet(input.Exercise, input.Weight, input.Reps, input.Date)
	warn, err := warning(err)
	if err != nil {
		return nil, addSetOutput{}, err
	}

	msg := fmt.Sprintf("Logged %s: %g kg × %d on %s", input.Exercise, res.Set.Weight, res.Set.Reps, res.Set.Date)
	if res.NewRecord {
		msg += " (new PR)"
	}
	return nil, addSetOutput{
		SetID:     res.Set.ID.String(),
		Date:      res.Set.Date,
		NewRecord: res.NewRecord,
		Record:    res.Record,
		Message:   msg,
		Warning:   warn,
	}, nil
}

func (s *Server) handleDeleteSet(ctx context.Context, req *mcp.CallToolRequest, input deleteSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	var (
		removed models.Set
		err     error
	)
	switch {
	case input.SetID != "":
		id, perr := uuid.Parse(input.SetID)
		if perr != nil {
			return nil, simpleOutput{}, fmt.Errorf("%w: set id %q", tracker.ErrInvalidInput, input.SetID)
		}
		removed, err = s.tracker.DeleteSetByID(input.Exercise, id)
	case input.Index != nil:
		removed, err = s.tracker.DeleteSet(input.Exercise, *input.Index)
	default:
		return nil, simpleOutput{}, fmt.Errorf("%w: set_id or index is required", tracker.ErrInvalidInput)
	}

	warn, err := warning(err)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s set: %g kg × %d", input.Exercise, removed.Weight, removed.Reps),
		Warning: warn,
	}, nil
}

func (s *Server) handleGetExercise(ctx context.Context, req *mcp.CallToolRequest, input exerciseNameInput) (*mcp.CallToolResult, exerciseOutput, error) {
	view, err := s.tracker.Exercise(input.Name)
	if err != nil {
		return nil, exerciseOutput{}, err
	}

	out := exerciseOutput{
		Name:            view.Name,
		Category:        string(view.Category),
		PR:              view.PR,
		TodaySets:       make([]setOutput, 0, len(view.TodaySets)),
		MaxWeightSeries: view.MaxWeightSeries,
		VolumeSeries:    view.VolumeSeries,
		TotalSets:       view.TotalSets,
	}
	for _, ts := range view.TodaySets {
		out.TodaySets = append(out.TodaySets, setOutput{
			Index:  ts.Index,
			ID:     ts.ID.String(),
			Weight: ts.Weight,
			Reps:   ts.Reps,
			Date:   ts.Date,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, stats.Dashboard, error) {
	return nil, s.tracker.Dashboard(), nil
}

func (s *Server) handleGetHeatmap(ctx context.Context, req *mcp.CallToolRequest, input heatmapInput) (*mcp.CallToolResult, tracker.HeatmapView, error) {
	return nil, s.tracker.Heatmap(!input.Previous), nil
}

func (s *Server) handleAddBodyWeight(ctx context.Context, req *mcp.CallToolRequest, input addBodyWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry, err := s.tracker.AddBodyWeight(input.Date, input.Weight)
	warn, err := warning(err)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded body weight %g kg on %s", entry.Weight, entry.Date),
		Warning: warn,
	}, nil
}

func (s *Server) handleListBodyWeight(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, bodyWeightOutput, error) {
	return nil, bodyWeightOutput{Entries: s.tracker.BodyWeightLog()}, nil
}
