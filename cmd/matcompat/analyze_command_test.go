package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"matcompat/internal/scoring"
	"matcompat/internal/testsupport"
)

func TestAnalyzeCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seedVocabulary(t, testsupport.MathVocabulary())

	out, _, err := runCLI(t, []string{"analyze", "la derivada de la integral"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Score:")
	requireContains(t, out, "derivada")
	requireContains(t, out, "integral")
}

func TestAnalyzeCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seedVocabulary(t, testsupport.MathVocabulary())

	out, _, err := runCLI(t, []string{"analyze", "--json", "la derivada de la integral"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --json: %v", err)
	}

	var result scoring.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("unmarshal output: %v\noutput: %s", err, out)
	}
	if result.MatchedTokens != 2 {
		t.Errorf("MatchedTokens = %d, want 2", result.MatchedTokens)
	}
	if result.Score <= 0 {
		t.Errorf("Score = %v, want > 0", result.Score)
	}
}

func TestAnalyzeCommandFromFile(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seedVocabulary(t, testsupport.MathVocabulary())

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("la matriz de la ecuación"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, _, err := runCLI(t, []string{"analyze", "--file", path}, env.configPath)
	if err != nil {
		t.Fatalf("analyze --file: %v", err)
	}
	requireContains(t, out, "matriz")
	requireContains(t, out, "ecuacion")
}

func TestAnalyzeCommandFromStdin(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seedVocabulary(t, testsupport.MathVocabulary())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader("el teorema del cálculo"))
	cmd.SetArgs([]string{"--config", env.configPath, "analyze"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("analyze from stdin: %v", err)
	}
	requireContains(t, stdout.String(), "teorema")
}

func TestAnalyzeCommandRejectsArgAndFile(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"analyze", "texto", "--file", "algo.txt"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for both arg and --file")
	}
}

func TestAnalyzeCommandNoMatches(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seedVocabulary(t, testsupport.MathVocabulary())

	out, _, err := runCLI(t, []string{"analyze", "una historia sobre gatos"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "No vocabulary matches")
}
