// Package goquery provides CSS-selector-based HTML inspection for fixtures.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nmcintosh/w2n"
)

// calloutSelector matches ServiceNow documentation callout markup. The
// service converts these divs into Notion callout blocks, so counting the
// same classes locally keeps the two sides of the summary comparable.
const calloutSelector = "div.note, div.warning, div.important, div.tip, div.caution, div.callout"

// Ensure Counter implements w2n.Counter at compile time.
var _ w2n.Counter = (*Counter)(nil)

// Counter counts content blocks in raw HTML.
type Counter struct{}

// NewCounter creates a new Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Count returns the number of tables, images, lists and callouts in the
// HTML. Lists nested inside another list are not counted separately,
// matching how the import service counts list blocks.
func (c *Counter) Count(html string) (w2n.BlockCounts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return w2n.BlockCounts{}, w2n.Errorf(w2n.EINVALID, "failed to parse HTML: %v", err)
	}

	var counts w2n.BlockCounts
	counts.Tables = doc.Find("table").Length()
	counts.Images = doc.Find("img").Length()

	doc.Find("ul, ol").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("ul, ol").Length() == 0 {
			counts.Lists++
		}
	})

	counts.Callouts = doc.Find(calloutSelector).Length()

	return counts, nil
}
