// Package report renders comparison tables for humans: markdown, HTML
// and xlsx workbooks.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"curveval/domain/eval"
)

// MarkdownRenderer renders comparison tables as markdown text.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a markdown renderer
func NewMarkdownRenderer() *MarkdownRenderer { return &MarkdownRenderer{} }

// Table renders a single comparison table as a markdown section.
func (r *MarkdownRenderer) Table(table *eval.ComparisonTable) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", table.Metric.String())
	fmt.Fprintf(&b, "Baseline case: `%s`\n\n", table.Baseline)

	cols := table.Columns()
	b.WriteString("| " + strings.Join(cols, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(cols)) + "\n")

	for _, row := range table.Rows {
		cells := []string{
			string(row.Case),
			fmt.Sprintf("%.4f", row.PValue),
			fmt.Sprintf("%.4f", row.Score),
			fmt.Sprintf("%.4f", row.LeftQuantile),
			fmt.Sprintf("%.4f", row.RightQuantile),
			string(row.Decision),
		}
		if row.Overfit != nil {
			cells = append(cells,
				fmt.Sprintf("%.2f", row.Overfit.IterDiff),
				fmt.Sprintf("%.4f", row.Overfit.IterPValue))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Session renders the tables of a whole evaluation session, one section
// per metric, in the given metric order.
func (r *MarkdownRenderer) Session(names []string, tables map[string]*eval.ComparisonTable) string {
	var b strings.Builder
	b.WriteString("# Model comparison report\n\n")
	for _, name := range names {
		table, ok := tables[name]
		if !ok {
			continue
		}
		b.WriteString(r.Table(table))
	}
	return b.String()
}

// HTML converts rendered markdown into a standalone HTML fragment.
func (r *MarkdownRenderer) HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
