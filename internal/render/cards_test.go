package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

func cardByTitle(t *testing.T, cards []Card, title string) Card {
	t.Helper()
	for _, c := range cards {
		if c.Title == title {
			return c
		}
	}
	require.Failf(t, "card not found", "title %q", title)
	return Card{}
}

func section(t *testing.T, c Card, heading string) Section {
	t.Helper()
	for _, s := range c.Sections {
		if s.Heading == heading {
			return s
		}
	}
	require.Failf(t, "section not found", "%q in %q", heading, c.Title)
	return Section{}
}

func TestCards_EmptyFullAnalysisRendersPlaceholders(t *testing.T) {
	cards := Cards(&analysis.Report{FullAnalysis: &analysis.FullAnalysis{}})

	cases := []struct {
		card, heading string
		want          string
	}{
		{"Brand Identity", "Brand Voice", "Not available"},
		{"Brand Identity", "Brand Promise", "Not available"},
		{"Brand Identity", "Brand Personality", "Not available"},
		{"Brand Mission", "", "Brand mission not available"},
		{"Brand Vision", "", "Brand vision not available"},
		{"Unique Selling Proposition", "", "USP not available"},
		{"Brand Goals", "", "No brand goals available"},
		{"Brand Values", "", "No brand values available"},
		{"Brand Archetype Profile", "The Sage Overview", "Brand archetype analysis not available"},
		{"Brand Archetype Profile", "Application to Your Company", "Application analysis not available"},
		{"Brand Archetype Profile", "General Definition", "Definition not available"},
		{"Brand Archetype Profile", "Key Traits", "No traits available"},
		{"Brand Archetype Profile", "Typical Goal", "Goal not available"},
		{"Brand Archetype Profile", "Core Strategies", "No strategies available"},
		{"Brand Archetype Profile", "Marketing Niche", "Marketing niche not available"},
		{"Brand Archetype Profile", "Potential Drawback", "Drawback analysis not available"},
		{"Brand Archetype Profile", "Example Brands", "No example brands available"},
		{"Brand Narrative", "Brand Positioning Statement", "Brand positioning statement not available"},
		{"Brand Narrative", "What We Do", "What we do description not available"},
		{"Brand Narrative", "How We Do It", "How we do it description not available"},
		{"Brand Narrative", "Why We Do It", "Why we do it description not available"},
		{"Visual Identity", "Typography", "Typography guidelines not available"},
		{"Visual Identity", "Color Palette", "Color palette guidelines not available"},
		{"SWOT Analysis", "Strengths", "No strengths analysis available"},
		{"SWOT Analysis", "Weaknesses", "No weaknesses analysis available"},
		{"SWOT Analysis", "Opportunities", "No opportunities analysis available"},
		{"SWOT Analysis", "Threats", "No threats analysis available"},
		{"SWOT Analysis", "Overall Assessment", "Overall SWOT assessment not available"},
		{"Competitor Analysis", "Competitive Landscape Summary", "Competitor analysis not available"},
		{"Actionable Insights", "", "No actionable insights available"},
		{"Landing Page Analysis", "Overall Assessment", "Landing page assessment not available"},
		{"Landing Page Analysis", "Strengths", "No strengths identified"},
		{"Landing Page Analysis", "Weaknesses", "No weaknesses identified"},
		{"Landing Page Analysis", "Recommendations", "No recommendations available"},
		{"SEO Analysis", "", "SEO analysis not available"},
		{"Ideal Customer Profile (ICP)", "Core Pain Points", "No pain points identified"},
		{"Ideal Customer Profile (ICP)", "Goals & Aspirations", "No goals identified"},
		{"Ideal Customer Profile (ICP)", "Decision Making Style", "Decision making style not available"},
		{"Ideal Customer Profile (ICP)", "Psychographics", "No psychographics available"},
		{"Ideal Customer Profile (ICP)", "Preferred Communication Channels", "No preferred channels available"},
		{"Marketing Copy", "Headlines", "No headlines available"},
		{"Marketing Copy", "Taglines", "No taglines available"},
		{"Content Strategy", "Hero Content", "No hero content strategy available"},
		{"Content Strategy", "Hub Content", "No hub content strategy available"},
		{"Content Strategy", "Hygiene Content", "No hygiene content strategy available"},
		{"Marketing Campaign Ideas", "Awareness Campaigns", "No awareness campaigns available"},
		{"Marketing Campaign Ideas", "Interest Campaigns", "No interest campaigns available"},
		{"Marketing Campaign Ideas", "Desire Campaigns", "No desire campaigns available"},
		{"Marketing Campaign Ideas", "Action Campaigns", "No action campaigns available"},
		{"Brand Strategy for High-Growth Digital", "", "Brand strategy summary not available"},
	}
	for _, tc := range cases {
		t.Run(tc.card+"/"+tc.heading, func(t *testing.T) {
			s := section(t, cardByTitle(t, cards, tc.card), tc.heading)
			if s.Text != "" {
				assert.Equal(t, tc.want, s.Text)
			} else {
				assert.Equal(t, []string{tc.want}, s.Items)
			}
		})
	}
}

func TestCards_NestedAbsence(t *testing.T) {
	cards := Cards(&analysis.Report{FullAnalysis: &analysis.FullAnalysis{
		IdealCustomerProfile: &analysis.IdealCustomerProfile{},
		AdCopyVariations:     &analysis.AdCopyVariations{},
	}})

	icp := cardByTitle(t, cards, "Ideal Customer Profile (ICP)")
	assert.Equal(t, "Ideal Customer Profile", icp.Sections[0].Heading)
	assert.Equal(t, []string{
		"Title: Not available",
		"Company Size: Not available",
		"Industry: Not available",
		"Revenue: Not available",
		"Location: Not available",
	}, section(t, icp, "Demographics").Items)

	ads := cardByTitle(t, cards, "Ad Copy Variations")
	assert.Equal(t, []string{"LinkedIn headline not available", "LinkedIn body not available", "CTA not available"},
		section(t, ads, "LinkedIn Sponsored Content").Items)
	assert.Equal(t, []string{"Facebook headline not available", "Facebook body not available", "CTA not available"},
		section(t, ads, "Facebook/Instagram Feed Ad").Items)
	assert.Equal(t, []string{"Headline 1 | Headline 2", "Google ad description not available", "CTA not available"},
		section(t, ads, "Google Search Ad (RSA)").Items)
}

func TestCards_MissingFullAnalysisUsesFallback(t *testing.T) {
	cards := Cards(&analysis.Report{BrandOverview: "Rockets"})
	fb := analysis.FallbackFullAnalysis()

	assert.Equal(t, fb.BrandMission, cardByTitle(t, cards, "Brand Mission").Sections[0].Text)
	assert.Equal(t, fb.BrandGoals, cardByTitle(t, cards, "Brand Goals").Sections[0].Items)
	assert.Equal(t, "Rockets", section(t, cardByTitle(t, cards, "Brand Overview"), "Overview").Text)
	assert.Equal(t, "The Sage Overview", cardByTitle(t, cards, "Brand Archetype Profile").Sections[0].Heading)
}

func TestCards_NilReportNeverPanics(t *testing.T) {
	var cards []Card
	assert.NotPanics(t, func() { cards = Cards(nil) })
	overview := cardByTitle(t, cards, "Brand Overview")
	assert.Equal(t, "Brand overview not available", section(t, overview, "Overview").Text)
	assert.Equal(t, []string{"No key strengths available"}, section(t, overview, "Key Strengths").Items)
}

func TestCards_BlankValuesCountAsMissing(t *testing.T) {
	cards := Cards(&analysis.Report{FullAnalysis: &analysis.FullAnalysis{
		BrandMission: "  ",
		BrandGoals:   []string{"", " "},
		BrandValues:  []string{"Trust", ""},
		BrandArchetype: &analysis.BrandArchetype{
			Type: "The Hero",
		},
	}})
	assert.Equal(t, "Brand mission not available", cardByTitle(t, cards, "Brand Mission").Sections[0].Text)
	assert.Equal(t, []string{"No brand goals available"}, cardByTitle(t, cards, "Brand Goals").Sections[0].Items)
	assert.Equal(t, []string{"Trust"}, cardByTitle(t, cards, "Brand Values").Sections[0].Items)
	assert.Equal(t, "The Hero Overview", cardByTitle(t, cards, "Brand Archetype Profile").Sections[0].Heading)
}

func TestCards_FallbackReportRendersIdentityOnly(t *testing.T) {
	fb := analysis.FallbackReport()
	cards := Cards(fb)

	assert.Equal(t, fb.BrandOverview, section(t, cardByTitle(t, cards, "Brand Overview"), "Overview").Text)
	assert.Equal(t, fb.FullAnalysis.BrandMission, cardByTitle(t, cards, "Brand Mission").Sections[0].Text)
	assert.Equal(t, "The Sage Overview", cardByTitle(t, cards, "Brand Archetype Profile").Sections[0].Heading)

	// sections past the archetype are not part of the fallback
	assert.Equal(t, "Brand positioning statement not available",
		section(t, cardByTitle(t, cards, "Brand Narrative"), "Brand Positioning Statement").Text)
	assert.Equal(t, []string{"No strengths analysis available"},
		section(t, cardByTitle(t, cards, "SWOT Analysis"), "Strengths").Items)
	assert.Nil(t, fb.FullAnalysis.BrandNarrative)
	assert.Empty(t, fb.FullAnalysis.BrandStrategy)
}

func TestCards_MissingFullAnalysisRendersEverySection(t *testing.T) {
	r := analysis.FallbackReport()
	r.FullAnalysis = nil
	cards := Cards(r)

	fb := analysis.FallbackFullAnalysis()
	assert.Equal(t, fb.BrandNarrative.PositioningStatement,
		section(t, cardByTitle(t, cards, "Brand Narrative"), "Brand Positioning Statement").Text)
	assert.Equal(t, fb.BrandStrategy, cardByTitle(t, cards, "Brand Strategy for High-Growth Digital").Sections[0].Text)
	for _, c := range cards {
		for _, s := range c.Sections {
			assert.False(t, strings.Contains(s.Text, "not available"), "%s/%s", c.Title, s.Heading)
		}
	}
}
