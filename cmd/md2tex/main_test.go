package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2tex "github.com/alnah/go-md2tex"
)

func TestResolveSettings_Defaults(t *testing.T) {
	t.Parallel()

	settings, err := resolveSettings(&cliFlags{}, nil)
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	if settings.dir != "src" {
		t.Errorf("dir = %q, want %q", settings.dir, "src")
	}
	if settings.outFile != "book.tex" {
		t.Errorf("outFile = %q, want %q", settings.outFile, "book.tex")
	}
	if settings.manifest != md2tex.DefaultManifestName {
		t.Errorf("manifest = %q, want %q", settings.manifest, md2tex.DefaultManifestName)
	}
}

func TestResolveSettings_Precedence(t *testing.T) {
	t.Parallel()

	// Config file values override defaults; CLI arguments override both.
	configPath := filepath.Join(t.TempDir(), "md2tex.yaml")
	content := "input:\n  dir: from-config\n  manifest: CONFIG.md\noutput:\n  file: config.tex\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &cliFlags{config: configPath, manifest: "CLI.md"}
	settings, err := resolveSettings(flags, []string{"from-cli"})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	if settings.dir != "from-cli" {
		t.Errorf("dir = %q, want CLI positional to win", settings.dir)
	}
	if settings.outFile != "config.tex" {
		t.Errorf("outFile = %q, want config value", settings.outFile)
	}
	if settings.manifest != "CLI.md" {
		t.Errorf("manifest = %q, want CLI flag to win", settings.manifest)
	}
}

func TestResolveSettings_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: filepath.Join(t.TempDir(), "absent.yaml")}
	if _, err := resolveSettings(flags, nil); err == nil {
		t.Error("resolveSettings() accepted a missing explicit config")
	}
}

func TestRun_ConvertsBook(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	summary := "- [One](one.md)\n"
	if err := os.WriteFile(filepath.Join(dir, "SUMMARY.md"), []byte(summary), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "one.md"), []byte("# One\n\nText.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(t.TempDir(), "out.tex")

	var stdout, stderr strings.Builder
	args := []string{"md2tex", dir, outFile}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "\\section{One}") {
		t.Errorf("output missing section heading:\n%s", data)
	}
	if !strings.Contains(stdout.String(), "Created ") {
		t.Errorf("stdout = %q, want creation notice", stdout.String())
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	var stdout, stderr strings.Builder
	if err := run([]string{"md2tex", "--version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "md2tex") {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}
