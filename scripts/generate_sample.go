package main

import (
	"encoding/json"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"time"
)

type rendered struct {
	Rendered string `json:"rendered"`
}

// restPost mirrors the /wp-json/wp/v2/posts response shape wpreader decodes.
type restPost struct {
	ID          int      `json:"id"`
	DateGMT     string   `json:"date_gmt"`
	ModifiedGMT string   `json:"modified_gmt"`
	Slug        string   `json:"slug"`
	Link        string   `json:"link"`
	Title       rendered `json:"title"`
	Excerpt     rendered `json:"excerpt"`
	Content     rendered `json:"content"`
	Categories  []int    `json:"categories"`
	Tags        []int    `json:"tags"`
}

const wpTime = "2006-01-02T15:04:05"

func main() {
	total := flag.Int("n", 200, "number of posts")
	domain := flag.String("domain", "wordhord.com", "site domain for links")
	flag.Parse()

	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	out := make([]restPost, 0, *total)
	for i := 0; i < *total; i++ {
		id := 1000 + i
		slug := fmt.Sprintf("sample-post-%03d", i+1)

		// Stagger timestamps backwards to look natural
		posted := base.Add(-time.Duration(36*i+mr.Intn(60)) * time.Hour)
		modified := posted
		if mr.Float64() < 0.3 {
			modified = posted.Add(time.Duration(mr.Intn(72)) * time.Hour)
		}

		out = append(out, restPost{
			ID:          id,
			DateGMT:     posted.Format(wpTime),
			ModifiedGMT: modified.Format(wpTime),
			Slug:        slug,
			Link:        fmt.Sprintf("https://%s/%d/%02d/%s/", *domain, posted.Year(), posted.Month(), slug),
			Title:       rendered{fmt.Sprintf("Sample Post %03d &#8211; notes", i+1)},
			Excerpt:     rendered{fmt.Sprintf("<p>Opening lines of sample post %03d [&hellip;]</p>\n", i+1)},
			Content: rendered{fmt.Sprintf(
				"<p>This is the body of <strong>sample post %03d</strong>.</p>\n<ul><li>first</li><li>second</li></ul>\n", i+1)},
			Categories: pick(mr, 1, 1+mr.Intn(2)),
			Tags:       pick(mr, 10, mr.Intn(4)),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

// pick returns k distinct ids from [first, first+20).
func pick(r *mrand.Rand, first, k int) []int {
	idx := r.Perm(20)[:k]
	out := make([]int, k)
	for i, j := range idx {
		out[i] = first + j
	}
	return out
}
