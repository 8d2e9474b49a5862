package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mithrel/mdtidy/internal/document"
	"github.com/mithrel/mdtidy/pkg/normalize"
)

func newPreviewCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a file in the terminal, normalized unless --raw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			strict := resolveStrict(cmd, app.Cfg.Strict)

			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			body := doc.Body
			if !raw {
				body = normalize.Document(body, strict)
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(app.Cfg.PreviewStyle),
				glamour.WithWordWrap(app.Cfg.PreviewWrap),
			)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			out, err := r.Render(body)
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}

			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				_, err := io.WriteString(w, out)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "render the file as-is without normalizing")
	addModeFlags(cmd)
	return cmd
}
