package wp

import (
	"strconv"
	"strings"
)

// Site is a WordPress installation the reader links back to.
type Site struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// Wordhord is the default site.
var Wordhord = Site{Name: "Wordhord", Domain: "wordhord.com"}

// PageURL returns the ?p= permalink WordPress resolves for any post id.
func (s Site) PageURL(id int) string {
	return s.PageURLPrefix() + strconv.Itoa(id)
}

// PageURLPrefix is PageURL without the id.
func (s Site) PageURLPrefix() string {
	host := strings.TrimSpace(s.Domain)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(host, "/")
	return "https://" + host + "/?p="
}
