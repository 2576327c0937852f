package markdown

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/net/html"
)

const (
	WORDS_PER_MINUTE = 265

	// Each image adds viewing time, starting at 12 seconds and
	// decreasing per image down to 3.
	firstImageSeconds = 12
	minImageSeconds   = 3
)

// EstimateReadTime reports the estimated reading time of rendered HTML
// as a label like "3 min read". Estimates never fall below one minute.
func EstimateReadTime(renderedHTML string) string {
	doc, err := html.Parse(strings.NewReader(renderedHTML))
	if err != nil {
		return "1 min read"
	}

	words := 0
	images := 0
	walk(doc, func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			words += len(strings.Fields(n.Data))
		case isElement(n, "img"):
			images++
		}
	})

	seconds := float64(words) / WORDS_PER_MINUTE * 60

	imageSeconds := firstImageSeconds
	for i := 0; i < images; i++ {
		seconds += float64(imageSeconds)
		if imageSeconds > minImageSeconds {
			imageSeconds--
		}
	}

	minutes := int(math.Ceil(seconds / 60))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
