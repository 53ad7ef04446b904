package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mithrel/wpreader/internal/present"
	"github.com/mithrel/wpreader/internal/source"
	"github.com/mithrel/wpreader/internal/util"
	"github.com/mithrel/wpreader/internal/view"
	"github.com/mithrel/wpreader/pkg/wp"
)

func newShowCmd() *cobra.Command {
	var (
		id     int
		match  string
		output string
		indent bool
	)
	cmd := &cobra.Command{
		Use:   "show <kind> <file|->",
		Short: "Display one post, page or category",
		Long: `Display one item from a WordPress REST export.

The item is chosen by --id, by the best fuzzy --match on its title,
or is the first item in the export.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeItemArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if cmd.Flags().Changed("id") && match != "" {
				return fmt.Errorf("choose either --id or --match")
			}
			mode, err := resolveMode(app, output)
			if err != nil {
				return err
			}
			items, err := loadItems(cmd, app, args)
			if err != nil {
				return err
			}
			item, err := pickItem(items, cmd.Flags().Changed("id"), id, match)
			if err != nil {
				return err
			}
			opts := presentOptions(app, mode)
			opts.JSONIndent = indent
			return renderItem(cmd, item, opts)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "item id to show")
	cmd.Flags().StringVarP(&match, "match", "m", "", "fuzzy match on the item title")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output: plain|pretty|json|tui|html (default from config)")
	cmd.Flags().BoolVar(&indent, "indent", true, "indent JSON output")
	return cmd
}

func pickItem(items []wp.Item, byID bool, id int, match string) (wp.Item, error) {
	switch {
	case byID:
		return source.Find(items, id)
	case match != "":
		titles := make([]string, len(items))
		for i, it := range items {
			titles[i] = view.Title(it)
		}
		best := util.RankMatches(match, titles, 1)
		if len(best) == 0 {
			return nil, fmt.Errorf("%w: no title matches %q", source.ErrNotFound, match)
		}
		return items[best[0]], nil
	default:
		return source.First(items)
	}
}

func renderItem(cmd *cobra.Command, item wp.Item, opts present.Options) error {
	if opts.Mode == present.ModeTUI {
		return present.RenderItem(cmd.Context(), cmd.OutOrStdout(), item, opts)
	}
	return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.RenderItem(cmd.Context(), w, item, opts)
	})
}
