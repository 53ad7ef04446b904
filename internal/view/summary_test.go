package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/wpreader/pkg/wp"
)

func TestSummarizeAll(t *testing.T) {
	items := []wp.Item{
		helloPost(),
		wp.Category{Base: wp.Base{ID: 3, Slug: "news", Link: "https://example.com/c/news"}},
	}
	got := SummarizeAll(items)
	require.Len(t, got, 2)

	require.Equal(t, "post", got[0].Kind)
	require.Equal(t, "Hello World", got[0].Title)
	require.NotNil(t, got[0].Modified)

	require.Equal(t, "category", got[1].Kind)
	require.Equal(t, "news", got[1].Title)
	require.Nil(t, got[1].Modified)
}
