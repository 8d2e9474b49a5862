package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigTOML(t *testing.T, dir string) string {
	t.Helper()
	cfg := filepath.Join(dir, "config.toml")
	content := "strict = true\n"
	if err := os.WriteFile(cfg, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfg
}

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if stdin != "" {
		root.SetIn(strings.NewReader(stdin))
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFixStdin(t *testing.T) {
	cfg := writeConfigTOML(t, t.TempDir())

	out, err := runRoot(t, "- a\n\t\n- b\n\n- c", "--config", cfg, "fix")
	if err != nil {
		t.Fatalf("fix execute: %v\n%s", err, out)
	}
	if out != "- a\n- b\n\n- c" {
		t.Fatalf("stdin output=%q", out)
	}
}

func TestFixStdinMerge(t *testing.T) {
	cfg := writeConfigTOML(t, t.TempDir())

	out, err := runRoot(t, "- a\n\n- b", "--config", cfg, "fix", "--merge")
	if err != nil {
		t.Fatalf("fix execute: %v\n%s", err, out)
	}
	if out != "- a\n- b" {
		t.Fatalf("merge output=%q", out)
	}
}

func TestFixStdinRejectsWrite(t *testing.T) {
	cfg := writeConfigTOML(t, t.TempDir())

	if _, err := runRoot(t, "- a", "--config", cfg, "fix", "-w"); err == nil {
		t.Fatalf("expected error for -w without file arguments")
	}
}

func TestFixWriteInPlace(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfigTOML(t, dir)
	doc := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(doc, []byte("- a\n\t\n- b"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "", "--config", cfg, "fix", "-w", doc)
	if err != nil {
		t.Fatalf("fix execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "fixed "+doc) {
		t.Fatalf("missing fixed notice: %q", out)
	}
	data, err := os.ReadFile(doc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "- a\n- b" {
		t.Fatalf("rewritten content=%q", data)
	}

	// Second run is a no-op.
	out2, err := runRoot(t, "", "--config", cfg, "fix", "-w", doc)
	if err != nil {
		t.Fatalf("second fix execute: %v\n%s", err, out2)
	}
	if !strings.Contains(out2, "No changes.") {
		t.Fatalf("missing no-changes notice: %q", out2)
	}
}

func TestFixCheckAndList(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfigTOML(t, dir)
	dirty := filepath.Join(dir, "dirty.md")
	clean := filepath.Join(dir, "clean.md")
	if err := os.WriteFile(dirty, []byte("- a\n\n\n- b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(clean, []byte("- a\n- b"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "", "--config", cfg, "fix", "--check", dirty, clean)
	if err == nil {
		t.Fatalf("expected check to fail, output=%q", out)
	}
	if !strings.Contains(out, "dirty.md") || strings.Contains(out, "clean.md") {
		t.Fatalf("check output=%q", out)
	}

	// Check must not rewrite anything.
	data, _ := os.ReadFile(dirty)
	if string(data) != "- a\n\n\n- b" {
		t.Fatalf("check rewrote file: %q", data)
	}

	lout, err := runRoot(t, "", "--config", cfg, "fix", "-l", dirty, clean)
	if err != nil {
		t.Fatalf("list execute: %v\n%s", err, lout)
	}
	if !strings.Contains(lout, "dirty.md") || strings.Contains(lout, "clean.md") {
		t.Fatalf("list output=%q", lout)
	}
}

func TestFixWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfigTOML(t, dir)
	sub := filepath.Join(dir, "notes")
	hidden := filepath.Join(dir, "notes", ".cache")
	if err := os.MkdirAll(hidden, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "a.md"), []byte("- a\n\n- b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "skip.txt"), []byte("- a\n\n- b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hidden, "b.md"), []byte("- a\n\n- b"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "", "--config", cfg, "fix", "--merge", "-l", sub)
	if err != nil {
		t.Fatalf("fix execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "a.md") {
		t.Fatalf("expected a.md listed: %q", out)
	}
	if strings.Contains(out, "skip.txt") || strings.Contains(out, "b.md") {
		t.Fatalf("walk picked up excluded files: %q", out)
	}
}

func TestConfigGenerate(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfigTOML(t, dir)
	out := filepath.Join(dir, "generated", "config.toml")

	stdout, err := runRoot(t, "", "--config", cfg, "config", "generate", "-o", out)
	if err != nil {
		t.Fatalf("generate execute: %v\n%s", err, stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"strict = true", "[preview]", "[editor]"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("generated config missing %q:\n%s", want, data)
		}
	}

	// Refuses to clobber without a flag.
	if _, err := runRoot(t, "", "--config", cfg, "config", "generate", "-o", out); err == nil {
		t.Fatalf("expected error when config exists")
	}
}

func TestVersion(t *testing.T) {
	cfg := writeConfigTOML(t, t.TempDir())
	out, err := runRoot(t, "", "--config", cfg, "version")
	if err != nil {
		t.Fatalf("version execute: %v", err)
	}
	if !strings.Contains(out, "mdtidy") {
		t.Fatalf("version output=%q", out)
	}
}
