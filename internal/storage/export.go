// ABOUTME: Backup export formats for gym tracker data.
// ABOUTME: Supports JSON, YAML, and Markdown renderings of a full snapshot.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is a full backup of exercises, records, and body weight.
type ExportData struct {
	Version    string                           `json:"version" yaml:"version"`
	ExportedAt time.Time                        `json:"exported_at" yaml:"exported_at"`
	Tool       string                           `json:"tool" yaml:"tool"`
	Exercises  map[string]*models.Exercise      `json:"exercises" yaml:"exercises"`
	PRs        map[string]models.PersonalRecord `json:"prs" yaml:"prs"`
	BodyWeight []models.BodyWeightEntry         `json:"bodyWeight" yaml:"bodyWeight"`
}

// NewExportData stamps a snapshot with version and tool metadata.
func NewExportData(exercises map[string]*models.Exercise, prs map[string]models.PersonalRecord, bodyWeight []models.BodyWeightEntry, now time.Time) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: now,
		Tool:       "gym",
		Exercises:  exercises,
		PRs:        prs,
		BodyWeight: bodyWeight,
	}
}

// ExportJSON renders the snapshot as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML renders the snapshot as YAML with exercises listed by name.
func ExportYAML(data *ExportData) ([]byte, error) {
	yamlData := struct {
		Version    string           `yaml:"version"`
		ExportedAt string           `yaml:"exported_at"`
		Tool       string           `yaml:"tool"`
		Exercises  []yamlExercise   `yaml:"exercises"`
		BodyWeight []yamlBodyWeight `yaml:"body_weight,omitempty"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Exercises:  make([]yamlExercise, 0, len(data.Exercises)),
	}

	for _, name := range sortedNames(data.Exercises) {
		ex := data.Exercises[name]
		ye := yamlExercise{
			Name:     name,
			Category: string(ex.Category),
		}
		if pr, ok := data.PRs[name]; ok {
			ye.Record = &yamlRecord{
				Weight:         pr.Weight,
				Date:           pr.Date,
				PreviousWeight: pr.PreviousWeight,
			}
		}
		for _, s := range ex.Sets {
			ye.Sets = append(ye.Sets, yamlSet{
				ID:     s.ID.String()[:8],
				Date:   s.Date,
				Weight: s.Weight,
				Reps:   s.Reps,
			})
		}
		yamlData.Exercises = append(yamlData.Exercises, ye)
	}

	for _, e := range data.BodyWeight {
		yamlData.BodyWeight = append(yamlData.BodyWeight, yamlBodyWeight(e))
	}

	return yaml.Marshal(yamlData)
}

type yamlExercise struct {
	Name     string      `yaml:"name"`
	Category string      `yaml:"category"`
	Record   *yamlRecord `yaml:"record,omitempty"`
	Sets     []yamlSet   `yaml:"sets,omitempty"`
}

type yamlRecord struct {
	Weight         float64 `yaml:"weight"`
	Date           string  `yaml:"date"`
	PreviousWeight float64 `yaml:"previous_weight,omitempty"`
}

type yamlSet struct {
	ID     string  `yaml:"id"`
	Date   string  `yaml:"date"`
	Weight float64 `yaml:"weight"`
	Reps   int     `yaml:"reps"`
}

type yamlBodyWeight struct {
	Date   string  `yaml:"date"`
	Weight float64 `yaml:"weight"`
}

// ExportMarkdown renders the snapshot as Markdown tables. When since is
// non-empty, only sets and body weight entries on or after that date are listed.
func ExportMarkdown(data *ExportData, since string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Gym Export - %s\n\n", data.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	for _, name := range sortedNames(data.Exercises) {
		ex := data.Exercises[name]
		sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", name, ex.Category))
		if pr, ok := data.PRs[name]; ok {
			sb.WriteString(fmt.Sprintf("PR: %s kg on %s", formatWeight(pr.Weight), pr.Date))
			if s := pr.Surplus(); s > 0 {
				sb.WriteString(fmt.Sprintf(" (+%s kg)", formatWeight(s)))
			}
			sb.WriteString("\n\n")
		}

		sets := make([]models.Set, 0, len(ex.Sets))
		for _, s := range ex.Sets {
			if since == "" || s.Date >= since {
				sets = append(sets, s)
			}
		}
		if len(sets) == 0 {
			sb.WriteString("_No sets logged._\n\n")
			continue
		}
		sort.SliceStable(sets, func(i, j int) bool { return sets[i].Date < sets[j].Date })

		sb.WriteString("| Date | Weight | Reps | Volume |\n")
		sb.WriteString("|------|--------|------|--------|\n")
		for _, s := range sets {
			sb.WriteString(fmt.Sprintf("| %s | %s kg | %d | %s |\n",
				s.Date, formatWeight(s.Weight), s.Reps, formatWeight(s.Volume())))
		}
		sb.WriteString("\n")
	}

	var entries []models.BodyWeightEntry
	for _, e := range data.BodyWeight {
		if since == "" || e.Date >= since {
			entries = append(entries, e)
		}
	}
	if len(entries) > 0 {
		sb.WriteString("## Body Weight\n\n")
		sb.WriteString("| Date | Weight |\n")
		sb.WriteString("|------|--------|\n")
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("| %s | %s kg |\n", e.Date, formatWeight(e.Weight)))
		}
	}

	return sb.String()
}

func sortedNames(exercises map[string]*models.Exercise) []string {
	names := make([]string, 0, len(exercises))
	for name := range exercises {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatWeight drops trailing zeros so 100 prints as "100" and 22.5 as "22.5".
func formatWeight(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
