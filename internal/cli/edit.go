package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdtidy/internal/document"
	"github.com/mithrel/mdtidy/internal/editor"
	"github.com/mithrel/mdtidy/pkg/normalize"
)

func newEditCmd() *cobra.Command {
	var noFix bool
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a file in $EDITOR, then normalize the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			strict := resolveStrict(cmd, app.Cfg.Strict)

			out, changed, err := editor.Open(args[0])
			if err != nil {
				return err
			}
			if noFix || !app.Cfg.NormalizeOnSave {
				if !changed {
					fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				}
				return nil
			}

			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			fixed := normalize.Document(string(out), strict)
			if fixed == doc.Body {
				if !changed {
					fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				}
				return nil
			}
			if err := document.Replace(doc, fixed, app.Cfg.WriteBackup); err != nil {
				return err
			}
			notifyFixed(cmd.OutOrStdout(), doc.Path, countLines(doc.Body)-countLines(fixed))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noFix, "no-fix", false, "skip normalization after the editor exits")
	addModeFlags(cmd)
	return cmd
}
