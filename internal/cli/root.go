package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/mdtidy/internal/config"
	"github.com/mithrel/mdtidy/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "mdtidy",
		Short:         "mdtidy — remove blank-line noise between Markdown list items",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}

// resolveStrict applies --strict/--merge overrides on top of config.
func resolveStrict(cmd *cobra.Command, cfg bool) bool {
	if cmd.Flags().Changed("merge") {
		if v, _ := cmd.Flags().GetBool("merge"); v {
			return false
		}
	}
	if cmd.Flags().Changed("strict") {
		if v, _ := cmd.Flags().GetBool("strict"); v {
			return true
		}
	}
	return cfg
}

// addModeFlags registers the shared strict/merge override flags.
func addModeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "keep one empty line between distinct lists (overrides config)")
	cmd.Flags().Bool("merge", false, "drop every blank line between list items (overrides config)")
	cmd.MarkFlagsMutuallyExclusive("strict", "merge")
}
