// ABOUTME: Integration tests for gym CLI.
// ABOUTME: Builds the binary and runs a full logging workflow through it.
package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DLAppStuff/GymAppTest/internal/config"
)

func TestFullWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	gymBinary := filepath.Join(tmpDir, "gym")

	buildCmd := exec.Command("go", "build", "-o", gymBinary, ".")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	cfgPath := filepath.Join(tmpDir, "config.json")
	c := &config.Config{Backend: "sqlite", DataDir: filepath.Join(tmpDir, "data")}
	if err := c.SaveTo(cfgPath); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--config", cfgPath}, args...)
		cmd := exec.Command(gymBinary, fullArgs...)
		cmd.Env = append(os.Environ(), "NO_COLOR=1")
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("exercise", "add", "Bench Press", "--category", "push")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added Bench Press") {
		t.Errorf("Expected 'Added Bench Press' in output, got: %s", output)
	}

	output, err = run("set", "add", "Bench Press", "60", "8")
	if err != nil {
		t.Fatalf("Failed to add set: %v\n%s", err, output)
	}
	if !strings.Contains(output, "New PR for Bench Press: 60 kg") {
		t.Errorf("Expected first set to be a PR, got: %s", output)
	}

	output, err = run("set", "add", "Bench Press", "62.5", "5")
	if err != nil {
		t.Fatalf("Failed to add set: %v\n%s", err, output)
	}
	if !strings.Contains(output, "(+2.5 kg)") {
		t.Errorf("Expected surplus in output, got: %s", output)
	}

	output, err = run("dashboard")
	if err != nil {
		t.Fatalf("Failed to show dashboard: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sets logged") {
		t.Errorf("Expected 'Sets logged' in dashboard, got: %s", output)
	}

	output, err = run("set", "add", "Bench Press", "0", "5")
	if err == nil {
		t.Errorf("Expected zero weight to be rejected, got: %s", output)
	}

	output, err = run("exercise", "list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2 sets") {
		t.Errorf("Expected '2 sets' in list output, got: %s", output)
	}
}
