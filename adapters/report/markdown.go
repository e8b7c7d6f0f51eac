package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"fourcast/domain/backtest"
)

// MarkdownRenderer renders a sweep result as a markdown report comparing
// accuracy against the random baseline and tallying window uniformity.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render implements ports.ReportRenderer.
func (r *MarkdownRenderer) Render(result *backtest.SweepResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("nil sweep result")
	}

	var b strings.Builder
	b.WriteString("# Backtest Results\n\n")
	fmt.Fprintf(&b, "Sweep `%s`, %d window size(s), %d ms\n", result.SweepID, len(result.Outcomes), result.RuntimeMs)

	for _, outcome := range result.Outcomes {
		fmt.Fprintf(&b, "\n## Window Size: %d draws\n\n", outcome.WindowSize)
		if outcome.Summary == nil {
			fmt.Fprintf(&b, "Skipped: %s\n", outcome.Err)
			continue
		}
		summary := outcome.Summary

		chi := summary.ChiSquare
		uniformRate := 0.0
		if chi.Total > 0 {
			uniformRate = float64(chi.Uniform) / float64(chi.Total)
		}
		fmt.Fprintf(&b, "Chi-square test: %d/%d (%.1f%%) consistent with uniform", chi.Uniform, chi.Total, uniformRate*100)
		if chi.Inconclusive > 0 {
			fmt.Fprintf(&b, ", %d inconclusive", chi.Inconclusive)
		}
		b.WriteString("\n\nAccuracy by Top-K:\n\n")
		b.WriteString("| K | Correct | Accuracy | Baseline | Improvement |\n")
		b.WriteString("|---|---------|----------|----------|-------------|\n")
		for _, ks := range summary.ByK {
			fmt.Fprintf(&b, "| %d | %d/%d | %.1f%% | %.1f%% | %+.1f%% |\n",
				ks.K, ks.Correct, ks.Total, ks.Accuracy*100, ks.Baseline*100, ks.Improvement*100)
		}
	}

	return b.String(), nil
}

// RenderHTML renders the markdown report as an HTML document fragment.
func (r *MarkdownRenderer) RenderHTML(result *backtest.SweepResult) (string, error) {
	md, err := r.Render(result)
	if err != nil {
		return "", err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, renderer)), nil
}
