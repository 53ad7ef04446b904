package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/wpreader/internal/source"
	"github.com/mithrel/wpreader/internal/view"
)

const postsJSON = `[
 {
  "id": 42,
  "date_gmt": "2021-05-18T10:30:00",
  "modified_gmt": "2021-05-19T08:00:00",
  "slug": "hello-world",
  "link": "https://example.com/42",
  "title": {"rendered": "Hello World"},
  "content": {"rendered": "<p>The <strong>body</strong> text.</p>"},
  "excerpt": {"rendered": "<p>A short excerpt [&hellip;]</p>"},
  "categories": [1, 2],
  "tags": [3]
 },
 {
  "id": 43,
  "date_gmt": "2019-01-01T00:00:00",
  "modified_gmt": "2019-01-02T00:00:00",
  "slug": "older-news",
  "link": "https://example.com/43",
  "title": {"rendered": "Older news"},
  "content": {"rendered": ""},
  "excerpt": {"rendered": ""},
  "categories": [],
  "tags": []
 }
]`

// isolate points config lookup at empty temp dirs and writes the posts export.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("HOME", filepath.Join(tmp, "home"))
	t.Setenv("PAGER", "cat")
	t.Chdir(tmp)
	path := filepath.Join(tmp, "posts.json")
	if err := os.WriteFile(path, []byte(postsJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestShowPlainHelloWorld(t *testing.T) {
	path := isolate(t)
	out, err := run(t, "", "show", "post", path, "--id", "42", "-o", "plain")
	require.NoError(t, err, out)

	require.True(t, strings.HasPrefix(out, "Hello World\n"))
	require.Contains(t, out, "\nID\n  42 <https://wordhord.com/?p=42>\n")
	require.Contains(t, out, "\nLink\n  https://example.com/42\n")
	require.Contains(t, out, "\nSlug\n  hello-world\n")
	require.Contains(t, out, "\nDate Posted\n  May 18, 2021\n")
	require.Contains(t, out, "\nExcerpt\n  A short excerpt …\n")
	require.Contains(t, out, "\nContent\n  The body text.\n")
	require.Contains(t, out, "\nCategories\n  1\n  2\n")
	require.Contains(t, out, "\nTags\n  3\n")
}

func TestShowDomainFlagOverridesConfig(t *testing.T) {
	path := isolate(t)
	out, err := run(t, "", "--domain", "example.org", "show", "post", path, "-o", "plain")
	require.NoError(t, err, out)
	require.Contains(t, out, "42 <https://example.org/?p=42>")
}

func TestShowJSONFromStdinByMatch(t *testing.T) {
	isolate(t)
	out, err := run(t, postsJSON, "show", "posts", "-", "--match", "older", "-o", "json")
	require.NoError(t, err, out)

	var d view.Display
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	require.Equal(t, 43, d.ID)
	require.Equal(t, "Older news", d.Title)

	body, ok := d.Section(view.HeaderContent)
	require.True(t, ok)
	require.Equal(t, view.RowText, body.Rows[0].Kind, "empty body falls back to text")
}

func TestShowErrors(t *testing.T) {
	path := isolate(t)

	_, err := run(t, "", "show", "post", path, "--id", "99")
	require.True(t, errors.Is(err, source.ErrNotFound))

	_, err = run(t, "", "show", "media", path)
	require.ErrorContains(t, err, "unknown item kind")

	_, err = run(t, "", "show", "post", path, "--id", "42", "--match", "x")
	require.ErrorContains(t, err, "either --id or --match")

	_, err = run(t, "", "show", "post", path, "-o", "xml")
	require.ErrorContains(t, err, `unknown output "xml"`)
}

func TestShowCategoryUsesSlugTitle(t *testing.T) {
	isolate(t)
	in := `{"id": 5, "slug": "news", "link": "https://example.com/c/news", "name": "News"}`
	out, err := run(t, in, "show", "category", "-", "-o", "plain")
	require.NoError(t, err, out)
	require.True(t, strings.HasPrefix(out, "news\n"))
	require.NotContains(t, out, "Date Posted")
	require.NotContains(t, out, "Categories")
}

func TestListPlainWithSince(t *testing.T) {
	path := isolate(t)
	out, err := run(t, "", "list", "post", path)
	require.NoError(t, err, out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "kind"))

	out, err = run(t, "", "list", "post", path, "--since", "2020-01-01", "--headers=false", "-o", "ndjson")
	require.NoError(t, err, out)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	var s view.Summary
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &s))
	require.Equal(t, 42, s.ID)

	_, err = run(t, "", "list", "post", path, "--since", "whenever")
	require.ErrorContains(t, err, "invalid --since")
}

func TestConfigGenerateAndCheck(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "wpreader", "config.toml")

	out, err := run(t, "", "config", "generate", "--output", cfgPath)
	require.NoError(t, err, out)
	require.Contains(t, out, "Wrote "+cfgPath)

	_, err = run(t, "", "config", "generate", "--output", cfgPath)
	require.ErrorContains(t, err, "config already exists")

	out, err = run(t, "", "--config", cfgPath, "config", "check")
	require.NoError(t, err, out)
	require.Contains(t, out, "Config OK: "+cfgPath)

	require.NoError(t, os.WriteFile(cfgPath, []byte("output = \"xml\"\n"), 0o600))
	_, err = run(t, "", "--config", cfgPath, "config", "check")
	require.ErrorContains(t, err, `output "xml"`)
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	require.Contains(t, out, "wpreader-cli")
}
