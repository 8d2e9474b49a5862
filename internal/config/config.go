package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdtidy"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdtidy"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: MDTIDY_* (highest among these sources)
	v.SetEnvPrefix("mdtidy")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Allow comma-separated env override for extensions
	if len(v.GetStringSlice("extensions")) == 1 {
		if s := v.GetStringSlice("extensions")[0]; strings.Contains(s, ",") {
			parts := strings.Split(s, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if t := strings.TrimSpace(p); t != "" {
					out = append(out, t)
				}
			}
			if len(out) > 0 {
				v.Set("extensions", out)
			}
		}
	}

	// Extensions are matched against filepath.Ext output, which keeps the dot.
	exts := v.GetStringSlice("extensions")
	for i, e := range exts {
		e = strings.TrimSpace(e)
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[i] = strings.ToLower(e)
	}
	v.Set("extensions", exts)

	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "mdtidy", "config.toml")
}

// CheckConfigValidity reports every invalid option at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if len(v.GetStringSlice("extensions")) == 0 {
		problems = append(problems, "extensions must list at least one extension")
	}
	for _, e := range v.GetStringSlice("extensions") {
		if !strings.HasPrefix(e, ".") || len(e) < 2 {
			problems = append(problems, fmt.Sprintf("extension %q must start with a dot", e))
		}
	}
	if v.GetInt("preview.word_wrap") <= 0 {
		problems = append(problems, "preview.word_wrap must be greater than 0")
	}
	if strings.TrimSpace(v.GetString("preview.style")) == "" {
		problems = append(problems, "preview.style is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
