package config

import "github.com/spf13/viper"

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values and
// for the `config generate` output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "strict", Default: true, Comment: "Keep one empty line between two distinct lists and strip only indented blanks; set to false to merge adjacent lists outright"},
		{Key: "extensions", Default: []string{".md", ".markdown", ".mdown"}, Comment: "File extensions considered when fixing directories"},

		{Key: "write.backup", Default: false, Comment: "Keep a .bak copy when rewriting files in place"},
		{Key: "preview.style", Default: "dracula", Comment: "Glamour style used by the preview command"},
		{Key: "preview.word_wrap", Default: 80, Comment: "Wrap width for rendered preview output"},
		{Key: "editor.normalize_on_save", Default: true, Comment: "Normalize the document after an edit session ends"},
	}
}

// Settings is the resolved view of a loaded Viper consumed by commands.
type Settings struct {
	Strict          bool
	Extensions      []string
	WriteBackup     bool
	PreviewStyle    string
	PreviewWrap     int
	NormalizeOnSave bool
}

// FromViper flattens a loaded Viper into Settings.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Strict:          v.GetBool("strict"),
		Extensions:      v.GetStringSlice("extensions"),
		WriteBackup:     v.GetBool("write.backup"),
		PreviewStyle:    v.GetString("preview.style"),
		PreviewWrap:     v.GetInt("preview.word_wrap"),
		NormalizeOnSave: v.GetBool("editor.normalize_on_save"),
	}
}
