package w2n

import (
	"fmt"
	"strings"
)

// FormatValidation formats a validation report for display. Missing
// counters print as 0; a missing report or hasErrors flag prints as
// unknown since it is treated as a failure.
func FormatValidation(v *ValidationReport) string {
	var b strings.Builder

	b.WriteString("Validation results:\n")
	if v == nil {
		b.WriteString("  Has errors: unknown (no validation report)\n")
		return b.String()
	}

	if v.HasErrors == nil {
		b.WriteString("  Has errors: unknown (treated as failure)\n")
	} else {
		fmt.Fprintf(&b, "  Has errors: %t\n", *v.HasErrors)
	}

	if v.Source != nil {
		b.WriteString("\n  Source counts:\n")
		b.WriteString(formatCounts(v.Source))
	}
	if v.Notion != nil {
		b.WriteString("\n  Notion counts:\n")
		b.WriteString(formatCounts(v.Notion))
	}

	if len(v.Errors) > 0 {
		b.WriteString("\n  Warnings:\n")
		for _, e := range v.Errors {
			fmt.Fprintf(&b, "    - %s\n", e)
		}
	}

	return b.String()
}

// FormatCounts formats block counts on a single line, for the local
// fixture summary.
func FormatCounts(c BlockCounts) string {
	return fmt.Sprintf("%d tables, %d images, %d lists, %d callouts",
		c.Tables, c.Images, c.Lists, c.Callouts)
}

func formatCounts(c *BlockCounts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "    Tables: %d\n", c.Tables)
	fmt.Fprintf(&b, "    Images: %d\n", c.Images)
	fmt.Fprintf(&b, "    Lists: %d\n", c.Lists)
	fmt.Fprintf(&b, "    Callouts: %d\n", c.Callouts)
	return b.String()
}
