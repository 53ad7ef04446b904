package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mithrel/wpreader/internal/present"
	"github.com/mithrel/wpreader/internal/source"
	"github.com/mithrel/wpreader/internal/wire"
	"github.com/mithrel/wpreader/pkg/wp"
)

var kindNames = []string{"post", "page", "category"}

// loadItems decodes the export named by args: <kind> <file|->.
func loadItems(cmd *cobra.Command, app *wire.App, args []string) ([]wp.Item, error) {
	kind, err := wp.ParseKind(args[0])
	if err != nil {
		return nil, err
	}
	items, err := source.Load(args[1], kind, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	app.Log.Info("loaded items",
		zap.String("kind", kind.String()),
		zap.String("path", args[1]),
		zap.Int("count", len(items)),
	)
	return items, nil
}

// completeItemArgs suggests kinds for the first argument and files after.
func completeItemArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		out := make([]string, 0, len(kindNames))
		for _, k := range kindNames {
			if strings.HasPrefix(k, toComplete) {
				out = append(out, k)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
	if len(args) == 1 {
		return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// resolveMode picks the output mode from the flag, then config.
func resolveMode(app *wire.App, flag string) (present.Mode, error) {
	name := flag
	if name == "" {
		name = app.Cfg.Output
	}
	mode, ok := present.ParseMode(name)
	if !ok {
		return 0, fmt.Errorf("unknown output %q", name)
	}
	return mode, nil
}

func presentOptions(app *wire.App, mode present.Mode) present.Options {
	return present.Options{
		Mode:        mode,
		Site:        app.Site,
		Style:       app.Style,
		FilterLimit: app.Cfg.TUI.FilterLimit,
	}
}
