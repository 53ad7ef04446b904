package wire

import (
	"context"
	"io"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mithrel/wpreader/internal/config"
	"github.com/mithrel/wpreader/internal/logging"
	"github.com/mithrel/wpreader/internal/present/format"
	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/pkg/wp"
)

// App aggregates the major services for easy injection.
type App struct {
	V     *viper.Viper
	Cfg   config.Config
	Log   *zap.Logger
	Site  wp.Site
	Style format.Style
}

// BuildApp wires dependencies from the loaded viper instance. out is where
// rendered items go; a word_wrap of 0 follows its width when it is a terminal.
func BuildApp(ctx context.Context, v *viper.Viper, out io.Writer) (*App, error) {
	cfg, err := config.Decode(v)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})

	site := cfg.Site
	if site.Domain == "" {
		site = wp.Wordhord
	}
	wrap := cfg.Render.WordWrap
	if wrap == 0 {
		wrap = terminalWidth(out)
	}
	logger.Debug("app wired",
		zap.String("site", site.Domain),
		zap.String("style", cfg.Render.Style),
		zap.Int("word_wrap", wrap),
	)
	return &App{
		V:    v,
		Cfg:  cfg,
		Log:  logger,
		Site: site,
		Style: format.Style{
			DateFormat: cfg.Render.DateFormat,
			Renderer:   richtext.NewRenderer(cfg.Render.Style, wrap),
		},
	}, nil
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return richtext.DefaultWordWrap
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return richtext.DefaultWordWrap
	}
	return w
}
