package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/wpreader/internal/present"
	"github.com/mithrel/wpreader/internal/util"
	"github.com/mithrel/wpreader/pkg/wp"
)

func newListCmd() *cobra.Command {
	var (
		output  string
		headers bool
		indent  bool
		since   string
		until   string
	)
	cmd := &cobra.Command{
		Use:               "list <kind> <file|->",
		Short:             "List the items in an export",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeItemArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if output == "" {
				output = "plain"
			}
			mode, err := resolveMode(app, output)
			if err != nil {
				return err
			}
			window, err := util.ParseTimeRange(since, until, time.Now())
			if err != nil {
				return err
			}
			items, err := loadItems(cmd, app, args)
			if err != nil {
				return err
			}
			items = filterModified(items, window)

			opts := presentOptions(app, mode)
			opts.Headers = headers
			opts.JSONIndent = indent
			return renderItems(cmd, items, opts)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plain", "output: plain|json|ndjson|tui|html")
	cmd.Flags().BoolVar(&headers, "headers", true, "print column headers")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	cmd.Flags().StringVar(&since, "since", "", "only items modified since (e.g. 2w, 2024-01-31)")
	cmd.Flags().StringVar(&until, "until", "", "only items modified until")
	return cmd
}

// filterModified keeps items whose modified date is in window. Items without
// dates (categories) only survive an open window.
func filterModified(items []wp.Item, window util.TimeRange) []wp.Item {
	out := make([]wp.Item, 0, len(items))
	for _, it := range items {
		var mod time.Time
		if c, ok := wp.AsContent(it); ok {
			mod = c.ModifiedGMT
		}
		if window.Contains(mod) {
			out = append(out, it)
		}
	}
	return out
}

func renderItems(cmd *cobra.Command, items []wp.Item, opts present.Options) error {
	if opts.Mode == present.ModeTUI {
		return present.RenderItems(cmd.Context(), cmd.OutOrStdout(), items, opts)
	}
	return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.RenderItems(cmd.Context(), w, items, opts)
	})
}

func newBrowseCmd() *cobra.Command {
	var headers bool
	cmd := &cobra.Command{
		Use:               "browse <kind> <file|->",
		Short:             "Browse an export interactively",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeItemArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			items, err := loadItems(cmd, app, args)
			if err != nil {
				return err
			}
			opts := presentOptions(app, present.ModeTUI)
			opts.Headers = headers
			return present.RenderItems(cmd.Context(), cmd.OutOrStdout(), items, opts)
		},
	}
	cmd.Flags().BoolVar(&headers, "headers", true, "show column headers")
	return cmd
}
