package wire

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/wpreader/internal/config"
	"github.com/mithrel/wpreader/internal/richtext"
)

func TestBuildApp(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, config.Load(context.Background(), v))
	v.Set("site.domain", "example.org")
	v.Set("render.word_wrap", 0)

	app, err := BuildApp(context.Background(), v, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "https://example.org/?p=5", app.Site.PageURL(5))
	require.Equal(t, richtext.DefaultWordWrap, app.Style.Renderer.WordWrap(), "non-terminal output uses the default width")
	require.Equal(t, config.DefaultDateFormat, app.Style.DateFormat)
	require.NotNil(t, app.Log)
}
