package htmltomarkdown_test

import (
	"testing"

	"github.com/nmcintosh/w2n"
	"github.com/nmcintosh/w2n/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Performance Overview</h1><p>The dashboard shows system health.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Performance Overview")
		assert.Contains(t, md, "The dashboard shows system health.")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Metric</th><th>Value</th></tr></thead>
<tbody><tr><td>Latency</td><td>12ms</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Metric")
		assert.Contains(t, md, "Latency")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>Open the record</li><li>Apply the change</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Open the record")
		assert.Contains(t, md, "- Apply the change")
	})

	t.Run("keeps callout text", func(t *testing.T) {
		t.Parallel()

		html := `<div class="note"><p>Note: changes take effect after cache flush.</p></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "changes take effect after cache flush")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		assert.Equal(t, w2n.EINVALID, w2n.ErrorCode(err))
	})
}
