package report

import (
	"fmt"
	"strings"

	"roikit/domain/core"
	"roikit/domain/inequality"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown renders a decomposition run as a markdown document: one table
// of index decompositions, one table of group summaries, and any
// diagnostics the sample raised.
func Markdown(title string, decomps []inequality.Decomposition, summaries []GroupSummary, diagnostics []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Decompositions\n\n")
	b.WriteString("| Index | Within | Between | Overall | Between share | Residual |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, d := range decomps {
		fmt.Fprintf(&b, "| %s | %.6f | %.6f | %.6f | %.4f | %.6f |\n",
			d.Index, d.Within, d.Between, d.Overall, d.Ratio, d.Residual)
	}
	b.WriteString("\n")

	b.WriteString("## Groups\n\n")
	b.WriteString("| Group | Count | Missing | Mean | Median | Std dev | Min | Max | Pop share | Value share |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|---|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %d | %d | %.2f | %.2f | %.2f | %.2f | %.2f | %.4f | %.4f |\n",
			s.Group, s.Count, s.Missing, s.Mean, s.Median, s.StdDev, s.Min, s.Max, s.PopulationShare, s.ValueShare)
	}
	b.WriteString("\n")

	if len(diagnostics) > 0 {
		b.WriteString("## Diagnostics\n\n")
		for _, d := range diagnostics {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML converts a markdown report into a standalone HTML fragment.
func HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

// Artifact packages a rendered markdown report.
func Artifact(md string) core.Artifact {
	return core.Artifact{
		ID:        core.NewID(),
		Kind:      core.ArtifactReport,
		Payload:   md,
		CreatedAt: core.Now(),
	}
}
