package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/wpreader/internal/config"
	"github.com/mithrel/wpreader/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// rootFlagKeys maps root persistent flags onto config keys.
var rootFlagKeys = map[string]string{
	"domain":    "site.domain",
	"style":     "render.style",
	"width":     "render.word_wrap",
	"log-level": "log.level",
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "wpreader-cli",
		Short:         "wpreader: read WordPress posts, pages and categories in the terminal",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyConfigFlagOverrides(cmd, v, rootFlagKeys)
			app, err := wire.BuildApp(cmd.Context(), v, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, app))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app, ok := cmd.Context().Value(appKey).(*wire.App); ok {
				_ = app.Log.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")
	pf.String("domain", "", "site domain used for ?p=<id> links")
	pf.String("style", "", "glamour style for rich text")
	pf.Int("width", 0, "word wrap column for rich text")
	pf.String("log-level", "", "log level: debug|info|warn|error")

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

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
