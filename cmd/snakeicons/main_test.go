package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args from inside dir.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	prev, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })

	flagConfig, flagDBPath, flagVerbose = "", "", false

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, dir); err != nil {
		t.Fatalf("snakeicons failed: %v", err)
	}

	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(dir, "images", name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	out, err := execute(t, dir, "verify")
	if err != nil {
		t.Fatalf("verify failed: %v\n%s", err, out)
	}
	if strings.Count(out, ": ok") != 3 {
		t.Errorf("verify output:\n%s", out)
	}
}

func TestGenerateMissingImagesDir(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, dir); err == nil {
		t.Fatal("snakeicons should fail without an images directory")
	}
	if _, err := os.Stat(filepath.Join(dir, "images")); !os.IsNotExist(err) {
		t.Error("snakeicons must not create the images directory")
	}
}

func TestGenerateWithHistory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	db := filepath.Join(dir, "history.db")

	if _, err := execute(t, dir, "--db", db); err != nil {
		t.Fatalf("snakeicons --db failed: %v", err)
	}

	out, err := execute(t, dir, "history", "--db", db)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if strings.Count(out, "classic") != 3 {
		t.Errorf("history should list three classic icons:\n%s", out)
	}
}

func TestVerifyDetectsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, dir, "verify"); err == nil {
		t.Error("verify should fail when icons are missing")
	}
}

func TestStylesList(t *testing.T) {
	out, err := execute(t, t.TempDir(), "styles")
	if err != nil {
		t.Fatalf("styles failed: %v", err)
	}
	if !strings.Contains(out, "classic") || !strings.Contains(out, "canvas") {
		t.Errorf("styles output:\n%s", out)
	}
	if !strings.Contains(out, "(default)") {
		t.Errorf("styles should mark the default:\n%s", out)
	}
}

func TestCustomConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "out"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "icons.yaml")
	if err := os.WriteFile(cfg, []byte("style: canvas\noutput_dir: out\nsizes: [32]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, dir, "--config", cfg); err != nil {
		t.Fatalf("snakeicons --config failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "icon32.png")); err != nil {
		t.Errorf("icon32.png not written: %v", err)
	}
}
