package wp

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"post": KindPost, "Posts": KindPost, " page ": KindPage, "categories": KindCategory,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseKind("media")
	require.True(t, errors.Is(err, ErrUnknownKind))
}

func TestCleanedValues(t *testing.T) {
	p := Post{
		Base:    Base{Slug: "%e6%97%a5%e6%9c%ac"},
		Title:   "Tom &amp; Jerry&#8217;s <em>Day</em>",
		Content: Content{Excerpt: "  <p>Once upon a time [&hellip;]</p>\n"},
	}
	require.Equal(t, "Tom & Jerry’s Day", p.TitleCleaned())
	require.Equal(t, "日本", p.SlugCleaned())
	require.Equal(t, "<p>Once upon a time …</p>", p.ExcerptCleaned())

	bad := Base{Slug: "100%-bad"}
	require.Equal(t, "100%-bad", bad.SlugCleaned())
}

func TestAsContent(t *testing.T) {
	_, ok := AsContent(Post{})
	require.True(t, ok)
	_, ok = AsContent(Page{})
	require.True(t, ok)
	_, ok = AsContent(Category{})
	require.False(t, ok)
}

func TestSitePageURL(t *testing.T) {
	require.Equal(t, "https://wordhord.com/?p=42", Wordhord.PageURL(42))
	require.Equal(t, "https://example.org/?p=7", Site{Domain: "https://example.org/"}.PageURL(7))
}

const postJSON = `[{
  "id": 42,
  "date_gmt": "2021-05-18T10:30:00",
  "modified_gmt": "2021-05-19T08:00:00",
  "slug": "hello-world",
  "link": "https://example.com/42",
  "title": {"rendered": "Hello World"},
  "content": {"rendered": "<p>Body</p>"},
  "excerpt": {"rendered": "<p>Short</p>"},
  "categories": [1, 2],
  "tags": [3]
}]`

func TestDecodePosts(t *testing.T) {
	items, err := Decode(KindPost, strings.NewReader(postJSON))
	require.NoError(t, err)
	require.Len(t, items, 1)

	p, ok := items[0].(Post)
	require.True(t, ok)
	require.Equal(t, 42, p.ItemID())
	require.Equal(t, "https://example.com/42", p.ItemLink())
	require.Equal(t, "Hello World", p.TitleCleaned())
	require.Equal(t, []int{1, 2}, p.Categories)
	require.Equal(t, []int{3}, p.Tags)
	require.Equal(t, time.Date(2021, 5, 18, 10, 30, 0, 0, time.UTC), p.DateGMT)
	require.Equal(t, "<p>Body</p>", p.ContentHTML)
}

func TestDecodeSingleCategory(t *testing.T) {
	in := `{"id": 5, "count": 12, "name": "News &amp; Notes", "slug": "news", "link": "https://example.com/c/news", "taxonomy": "category"}`
	items, err := Decode(KindCategory, strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)
	c := items[0].(Category)
	require.Equal(t, KindCategory, c.Kind())
	require.Equal(t, 12, c.Count)
	require.Equal(t, "news", c.ItemSlug())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(KindPost, strings.NewReader(`{"id": 1, "date_gmt": "yesterday"}`))
	require.Error(t, err)

	_, err = Decode(KindPage, strings.NewReader(`[{]`))
	require.Error(t, err)

	items, err := Decode(KindPage, strings.NewReader("  \n"))
	require.NoError(t, err)
	require.Empty(t, items)
}
