// Package htmltomarkdown converts fixture HTML to Markdown for previewing
// what a page will roughly contain before importing it.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/nmcintosh/w2n"
)

// Ensure Converter implements w2n.Converter at compile time.
var _ w2n.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert fixture HTML to Markdown.
// The table plugin matters here: ServiceNow fixtures are table-heavy and
// a preview without them would be useless.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms fixture HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", w2n.Errorf(w2n.EINVALID, "empty fixture HTML")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
