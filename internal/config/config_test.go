package config

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !v.GetBool("strict") {
		t.Fatalf("strict should default to true")
	}
	if got := v.GetInt("preview.word_wrap"); got != 80 {
		t.Fatalf("preview.word_wrap=%d want 80", got)
	}
	exts := v.GetStringSlice("extensions")
	if len(exts) == 0 || exts[0] != ".md" {
		t.Fatalf("extensions=%v", exts)
	}
}

func TestLoadNormalizesExtensions(t *testing.T) {
	v := viper.New()
	v.Set("extensions", []string{"md", ".Markdown"})
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	exts := v.GetStringSlice("extensions")
	if len(exts) != 2 || exts[0] != ".md" || exts[1] != ".markdown" {
		t.Fatalf("extensions=%v", exts)
	}
}

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("extensions", []string{"md"})
	v.Set("preview.word_wrap", 0)
	v.Set("preview.style", " ")

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}
	msg := err.Error()
	expected := []string{
		"must start with a dot",
		"preview.word_wrap must be greater than 0",
		"preview.style is required",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	v.Set("strict", false)
	v.Set("write.backup", true)

	s := FromViper(v)
	if s.Strict {
		t.Fatalf("Strict should be false")
	}
	if !s.WriteBackup {
		t.Fatalf("WriteBackup should be true")
	}
	if s.PreviewStyle != "dracula" || s.PreviewWrap != 80 {
		t.Fatalf("preview settings: %+v", s)
	}
	if !s.NormalizeOnSave {
		t.Fatalf("NormalizeOnSave should default to true")
	}
}

func TestRenderDefaultTOMLRoundTrip(t *testing.T) {
	content := RenderDefaultTOML()
	for _, want := range []string{"strict = true", "[preview]", "word_wrap = 80", "[write]", "backup = false"} {
		if !strings.Contains(content, want) {
			t.Fatalf("rendered TOML missing %q:\n%s", want, content)
		}
	}
}

func TestUpdateTOML(t *testing.T) {
	existing := "strict = false\nold_option = 3\n"
	updated, changed := UpdateTOML(existing)
	if !changed {
		t.Fatalf("expected update to change config")
	}
	if !strings.Contains(updated, "# OUTDATED: option removed from config schema") {
		t.Fatalf("unknown key not commented out:\n%s", updated)
	}
	if !strings.Contains(updated, "strict = false") {
		t.Fatalf("existing value lost:\n%s", updated)
	}
	if !strings.Contains(updated, "[preview]") || !strings.Contains(updated, "word_wrap = 80") {
		t.Fatalf("missing sections not appended:\n%s", updated)
	}

	// A config already carrying every option stays put.
	again, changed2 := UpdateTOML(updated)
	if changed2 {
		t.Fatalf("second update should be a no-op, got:\n%s", again)
	}
}
