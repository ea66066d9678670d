// ABOUTME: Tests for backup export formats.
// ABOUTME: Verifies JSON, YAML, and Markdown renderings of a snapshot.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleExport() *ExportData {
	bench := models.NewExercise("Bench", models.CategoryPush)
	bench.Sets = append(bench.Sets,
		models.NewSet(100, 5, "2024-01-02"),
		models.NewSet(105, 3, "2024-01-09"),
	)
	squat := models.NewExercise("Squat", models.CategoryLegs)

	return NewExportData(
		map[string]*models.Exercise{"Bench": bench, "Squat": squat},
		map[string]models.PersonalRecord{"Bench": {Weight: 105, Date: "2024-01-09", PreviousWeight: 100}},
		[]models.BodyWeightEntry{{Date: "2024-01-01", Weight: 81.5}, {Date: "2024-01-08", Weight: 80.9}},
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	)
}

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(sampleExport())
	require.NoError(t, err)

	var export ExportData
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "1.0", export.Version)
	assert.Equal(t, "gym", export.Tool)
	assert.Len(t, export.Exercises, 2)
	assert.Len(t, export.Exercises["Bench"].Sets, 2)
	assert.Equal(t, 105.0, export.PRs["Bench"].Weight)
	assert.Len(t, export.BodyWeight, 2)
}

func TestExportYAML(t *testing.T) {
	data, err := ExportYAML(sampleExport())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))

	assert.Equal(t, "gym", parsed["tool"])
	exercises, ok := parsed["exercises"].([]any)
	require.True(t, ok)
	require.Len(t, exercises, 2)

	first := exercises[0].(map[string]any)
	assert.Equal(t, "Bench", first["name"])
	assert.Equal(t, "Push", first["category"])
	assert.NotNil(t, first["record"])

	second := exercises[1].(map[string]any)
	assert.Equal(t, "Squat", second["name"])
	assert.Nil(t, second["record"])
}

func TestExportMarkdown(t *testing.T) {
	md := ExportMarkdown(sampleExport(), "")

	assert.True(t, strings.HasPrefix(md, "# Gym Export - 2024-01-10"))
	assert.Contains(t, md, "## Bench (Push)")
	assert.Contains(t, md, "PR: 105 kg on 2024-01-09 (+5 kg)")
	assert.Contains(t, md, "| 2024-01-02 | 100 kg | 5 | 500 |")
	assert.Contains(t, md, "## Squat (Legs)")
	assert.Contains(t, md, "_No sets logged._")
	assert.Contains(t, md, "| 2024-01-08 | 80.9 kg |")
}

func TestExportMarkdownSince(t *testing.T) {
	md := ExportMarkdown(sampleExport(), "2024-01-05")

	assert.NotContains(t, md, "| 2024-01-02 |")
	assert.Contains(t, md, "| 2024-01-09 | 105 kg | 3 | 315 |")
	assert.NotContains(t, md, "| 2024-01-01 |")
	assert.Contains(t, md, "| 2024-01-08 |")
}
