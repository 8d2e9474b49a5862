package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdtidy/internal/document"
	"github.com/mithrel/mdtidy/internal/ui"
	"github.com/mithrel/mdtidy/pkg/normalize"
)

// fixResult pairs a loaded document with its normalized replacement.
type fixResult struct {
	doc     document.Doc
	out     string
	removed int
}

func (r fixResult) changed() bool { return r.out != r.doc.Body }

func newFixCmd() *cobra.Command {
	var write bool
	var listOnly bool
	var check bool
	var interactive bool
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Remove blank lines that split up Markdown lists",
		Long: `Fix removes blank lines that spuriously separate consecutive list
items, a common artifact of pasting list content from elsewhere.

In strict mode (the default) only indented blank lines are stripped and
a single empty line between two distinct lists is kept; with --merge
every blank line between list items goes and adjacent lists join.

Without paths, or with "-", text is read from stdin and the result is
written to stdout. Directory arguments are walked for the configured
extensions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			strict := resolveStrict(cmd, app.Cfg.Strict)

			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				if write || listOnly || check || interactive {
					return errors.New("stdin mode writes to stdout; -w, -l, --check and -i need file arguments")
				}
				return fixStdin(cmd, strict)
			}

			paths, err := collectTargets(args, app.Cfg.Extensions)
			if err != nil {
				return err
			}

			results := make([]fixResult, 0, len(paths))
			for _, p := range paths {
				doc, err := document.Load(p)
				if err != nil {
					return err
				}
				out := normalize.Document(doc.Body, strict)
				results = append(results, fixResult{
					doc:     doc,
					out:     out,
					removed: countLines(doc.Body) - countLines(out),
				})
			}

			switch {
			case check:
				return fixCheck(cmd, results)
			case listOnly:
				for _, r := range results {
					if r.changed() {
						fmt.Fprintln(cmd.OutOrStdout(), r.doc.Path)
					}
				}
				return nil
			case interactive:
				return fixInteractive(cmd, results, app.Cfg.WriteBackup)
			case write:
				return fixWrite(cmd, results, app.Cfg.WriteBackup)
			default:
				// gofmt behavior: print the result, leave files alone.
				for _, r := range results {
					if _, err := io.WriteString(cmd.OutOrStdout(), r.out); err != nil {
						return err
					}
				}
				return nil
			}
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite changed files in place")
	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "list files whose blank lines would change")
	cmd.Flags().BoolVar(&check, "check", false, "exit non-zero when any file would change; write nothing")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "review pending changes in a table before applying")
	cmd.MarkFlagsMutuallyExclusive("write", "list", "check", "interactive")
	addModeFlags(cmd)
	return cmd
}

func fixStdin(cmd *cobra.Command, strict bool) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), normalize.Document(string(data), strict))
	return err
}

func fixCheck(cmd *cobra.Command, results []fixResult) error {
	pending := 0
	for _, r := range results {
		if r.changed() {
			pending++
			fmt.Fprintln(cmd.OutOrStdout(), r.doc.Path)
		}
	}
	if pending > 0 {
		return fmt.Errorf("%d file(s) need fixing", pending)
	}
	return nil
}

func fixWrite(cmd *cobra.Command, results []fixResult, backup bool) error {
	changed := 0
	for _, r := range results {
		if !r.changed() {
			continue
		}
		if err := document.Replace(r.doc, r.out, backup); err != nil {
			return err
		}
		changed++
		notifyFixed(cmd.OutOrStdout(), r.doc.Path, r.removed)
	}
	notifySummary(cmd.OutOrStdout(), changed, len(results))
	return nil
}

func fixInteractive(cmd *cobra.Command, results []fixResult, backup bool) error {
	pending := make([]ui.PendingChange, 0, len(results))
	for _, r := range results {
		if !r.changed() {
			continue
		}
		pending = append(pending, ui.PendingChange{
			Path:        r.doc.Path,
			Removed:     r.removed,
			Fingerprint: document.ShortFingerprint(r.out),
		})
	}
	if len(pending) == 0 {
		notifySummary(cmd.OutOrStdout(), 0, len(results))
		return nil
	}
	apply, err := ui.ReviewChanges(cmd.Context(), pending)
	if err != nil {
		return err
	}
	if !apply {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted; nothing written.")
		return nil
	}
	return fixWrite(cmd, results, backup)
}

// collectTargets expands file and directory arguments into file paths.
// Explicit files are taken as-is; walked directories are filtered on
// the configured extensions, and hidden directories are skipped.
func collectTargets(args, extensions []string) ([]string, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		wanted[strings.ToLower(e)] = true
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		walkErr := filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if wanted[strings.ToLower(filepath.Ext(p))] {
				paths = append(paths, p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}
	if len(paths) == 0 {
		return nil, errors.New("no matching files")
	}
	return paths, nil
}

func countLines(s string) int {
	return strings.Count(s, "\n") + 1
}
