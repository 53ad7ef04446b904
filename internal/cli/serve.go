package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mithrel/wpreader/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:               "serve <kind> <file|->",
		Short:             "Serve items as HTML pages",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeItemArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			items, err := loadItems(cmd, app, args)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = app.Cfg.HTTPAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(app.Site, app.Style, app.Log, items).Run(ctx, addr, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from http_addr)")
	return cmd
}
