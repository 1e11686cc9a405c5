package site

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pamudauposath/portfolio/internal/content"
	"github.com/pamudauposath/portfolio/internal/view"
)

// mediaSep separates an item id from its gallery position in detail keys,
// as in "7.m2".
const mediaSep = ".m"

func splitDetailKey(key string) (id, rest string) {
	key = strings.TrimSuffix(key, ".html")
	id, rest, _ = strings.Cut(key, mediaSep)
	return id, rest
}

func mediaKey(id string, i int) string {
	if i == 0 {
		return id
	}
	return id + mediaSep + strconv.Itoa(i)
}

// gallery renders the media carousel of a detail view. Position is
// reduced modulo the number of media, as the gallery wraps.
func gallery(links Linker, section, id, fallback string, media []content.Media, position string) *MediaView {
	if len(media) == 0 {
		return nil
	}
	pos, _ := strconv.Atoi(position)

	open := func(i int) *view.Carousel[content.Media] {
		c := view.NewCarousel(media, 1, view.Wrap)
		c.JumpTo(i)
		return c
	}
	cur := open(pos)
	win := cur.View()
	m := win.Items[0]

	step := func(fn func(*view.Carousel[content.Media])) string {
		c := open(win.Start)
		fn(c)
		return links.Detail(section, mediaKey(id, c.View().Start))
	}

	mv := &MediaView{
		Type:     m.Type,
		URL:      m.URL,
		Fallback: fallback,
		Position: fmt.Sprintf("%d / %d", win.Start+1, len(media)),
		Multiple: win.Navigable,
		Prev:     Link{Label: "Previous", URL: step((*view.Carousel[content.Media]).Retreat)},
		Next:     Link{Label: "Next", URL: step((*view.Carousel[content.Media]).Advance)},
	}
	if mv.Type == "image" {
		mv.URL = links.URL(m.URL)
	}
	for i := 0; i < win.Indicators; i++ {
		mv.Dots = append(mv.Dots, Link{
			Label:  fmt.Sprintf("Show media %d", i+1),
			URL:    links.Detail(section, mediaKey(id, i)),
			Active: i == win.Start,
		})
	}
	return mv
}

// period formats a date range; an empty end means ongoing.
func period(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - " + content.Present
	case start == "" || start == end:
		return end
	}
	return start + " - " + end
}

// clip splits tags into the first n and a count of the rest.
func clip(tags []string, n int) ([]string, int) {
	if len(tags) <= n {
		return tags[:len(tags):len(tags)], 0
	}
	return tags[:n:n], len(tags) - n
}

func appendLink(links []Link, label, url string) []Link {
	if url == "" {
		return links
	}
	return append(links, Link{Label: label, URL: url})
}

func appendList(lists []List, heading string, items []string) []List {
	if len(items) == 0 {
		return lists
	}
	return append(lists, List{Heading: heading, Items: items})
}
