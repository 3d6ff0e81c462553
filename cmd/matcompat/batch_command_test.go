package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"matcompat/internal/api"
	"matcompat/internal/testsupport"
)

func TestBatchCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seedVocabulary(t, testsupport.MathVocabulary())

	dir := t.TempDir()
	mathPath := filepath.Join(dir, "math.txt")
	prosePath := filepath.Join(dir, "prose.txt")
	if err := os.WriteFile(mathPath, []byte("la derivada de la integral y la matriz"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(prosePath, []byte("una historia sobre gatos y perros"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, _, err := runCLI(t, []string{"batch", prosePath, mathPath}, env.configPath)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	requireContains(t, out, "math.txt")
	requireContains(t, out, "prose.txt")
}

func TestBatchCommandJSONRanksByScore(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seedVocabulary(t, testsupport.MathVocabulary())

	dir := t.TempDir()
	mathPath := filepath.Join(dir, "math.txt")
	prosePath := filepath.Join(dir, "prose.txt")
	if err := os.WriteFile(mathPath, []byte("la derivada de la integral y la matriz"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(prosePath, []byte("una historia sobre gatos y perros"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, _, err := runCLI(t, []string{"batch", "--json", prosePath, mathPath}, env.configPath)
	if err != nil {
		t.Fatalf("batch --json: %v", err)
	}

	var scores []api.FileScore
	if err := json.Unmarshal([]byte(out), &scores); err != nil {
		t.Fatalf("unmarshal output: %v\noutput: %s", err, out)
	}
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, want 2", len(scores))
	}
	if scores[0].Path != mathPath {
		t.Errorf("scores[0].Path = %q, want the math-heavy file first", scores[0].Path)
	}
}

func TestBatchCommandMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"batch", filepath.Join(t.TempDir(), "missing.txt")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
