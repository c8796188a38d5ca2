package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

func TestMarkdown(t *testing.T) {
	v := Analysis("https://acme.io", &analysis.Report{
		BrandOverview: "Rockets",
		KeyStrengths:  []string{"Fast\nand cheap"},
		FullAnalysis:  &analysis.FullAnalysis{},
	})
	md := Markdown(v)

	assert.Contains(t, md, "# Brand Strategy Analysis\n")
	assert.Contains(t, md, "Comprehensive brand analysis for https://acme.io")
	assert.Contains(t, md, "## Brand Overview\n\n### Overview\n\nRockets\n")
	assert.Contains(t, md, "- Fast and cheap\n")
	assert.Contains(t, md, "## Brand Mission\n\nBrand mission not available\n")
	assert.Contains(t, md, "- No brand goals available\n")
}

func TestHTML(t *testing.T) {
	v := Analysis("https://acme.io", &analysis.Report{
		BrandOverview: `<script>alert(1)</script>`,
		FullAnalysis:  &analysis.FullAnalysis{},
	})
	out, err := HTML(v)
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "<title>Brand Strategy Analysis</title>")
	assert.Contains(t, page, "<h2>Brand Mission</h2>")
	assert.Contains(t, page, "<li>No brand goals available</li>")
	assert.NotContains(t, page, "<script>")
}
