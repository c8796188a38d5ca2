// Package render turns a brand report into display cards. Every field that
// is missing, at any depth, renders as its placeholder text.
package render

import (
	"strings"

	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

// Section is one block inside a card: a paragraph, a list, or both.
type Section struct {
	Heading string   `json:"heading,omitempty"`
	Text    string   `json:"text,omitempty"`
	Items   []string `json:"items,omitempty"`
}

type Card struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// View is the analysis screen.
type View struct {
	Title      string `json:"title"`
	WebsiteURL string `json:"website_url"`
	Cards      []Card `json:"cards"`
}

const notAvailable = "Not available"

// whitespace-only values count as missing, same as empty ones
func text(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

func list(items []string, placeholder string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return []string{placeholder}
	}
	return out
}

func para(heading, v, placeholder string) Section {
	return Section{Heading: heading, Text: text(v, placeholder)}
}

func items(heading string, v []string, placeholder string) Section {
	return Section{Heading: heading, Items: list(v, placeholder)}
}

// Analysis renders the analysis screen of websiteURL.
func Analysis(websiteURL string, r *analysis.Report) View {
	return View{
		Title:      "Brand Strategy Analysis",
		WebsiteURL: websiteURL,
		Cards:      Cards(r),
	}
}

// Cards renders r in display order. A nil report or a report without
// fullAnalysis uses the fallback sections; nil never panics.
func Cards(r *analysis.Report) []Card {
	if r == nil {
		r = &analysis.Report{}
	}
	fa := r.FullAnalysis
	if fa == nil {
		fa = analysis.FallbackFullAnalysis()
	}

	cards := []Card{overviewCard(r)}
	cards = append(cards, identityCards(fa)...)
	cards = append(cards,
		archetypeCard(fa.BrandArchetype),
		narrativeCard(fa.BrandNarrative),
		visualCard(fa.VisualIdentity),
		swotCard(fa.SWOTAnalysis),
		competitorCard(fa.CompetitorAnalysis),
		Card{Title: "Actionable Insights", Sections: []Section{items("", fa.ActionableInsights, "No actionable insights available")}},
		landingPageCard(fa.LandingPageAnalysis),
		Card{Title: "SEO Analysis", Sections: []Section{para("", fa.SEOAnalysis, "SEO analysis not available")}},
		icpCard(fa.IdealCustomerProfile),
		marketingCopyCard(fa.MarketingCopy),
		adCopyCard(fa.AdCopyVariations),
		contentCard(fa.ContentStrategy),
		campaignCard(fa.MarketingCampaignIdeas),
		Card{Title: "Brand Strategy for High-Growth Digital", Sections: []Section{para("", fa.BrandStrategy, "Brand strategy summary not available")}},
	)
	return cards
}

func overviewCard(r *analysis.Report) Card {
	return Card{Title: "Brand Overview", Sections: []Section{
		para("Overview", r.BrandOverview, "Brand overview not available"),
		para("Target Audience", r.TargetAudience, "Target audience not available"),
		items("Key Strengths", r.KeyStrengths, "No key strengths available"),
		items("Opportunities", r.Opportunities, "No opportunities available"),
		items("Recommended Channels", r.RecommendedChannels, "No recommended channels available"),
		para("Competitive Advantage", r.CompetitiveAdvantage, "Competitive advantage not available"),
	}}
}

func identityCards(fa *analysis.FullAnalysis) []Card {
	id := fa.BrandIdentity
	if id == nil {
		id = &analysis.BrandIdentity{}
	}
	return []Card{
		{Title: "Brand Identity", Sections: []Section{
			para("Brand Voice", id.BrandVoice, notAvailable),
			para("Brand Promise", id.BrandPromise, notAvailable),
			para("Brand Personality", id.BrandPersonality, notAvailable),
		}},
		{Title: "Brand Mission", Sections: []Section{para("", fa.BrandMission, "Brand mission not available")}},
		{Title: "Brand Vision", Sections: []Section{para("", fa.BrandVision, "Brand vision not available")}},
		{Title: "Unique Selling Proposition", Sections: []Section{para("", fa.UniqueSellingProposition, "USP not available")}},
		{Title: "Brand Goals", Sections: []Section{items("", fa.BrandGoals, "No brand goals available")}},
		{Title: "Brand Values", Sections: []Section{items("", fa.BrandValues, "No brand values available")}},
	}
}

func archetypeCard(a *analysis.BrandArchetype) Card {
	if a == nil {
		a = &analysis.BrandArchetype{}
	}
	return Card{Title: "Brand Archetype Profile", Sections: []Section{
		para(text(a.Type, "The Sage")+" Overview", a.Overview, "Brand archetype analysis not available"),
		para("Application to Your Company", a.Application, "Application analysis not available"),
		para("General Definition", a.Definition, "Definition not available"),
		items("Key Traits", a.KeyTraits, "No traits available"),
		para("Typical Goal", a.TypicalGoal, "Goal not available"),
		items("Core Strategies", a.CoreStrategies, "No strategies available"),
		para("Marketing Niche", a.MarketingNiche, "Marketing niche not available"),
		para("Potential Drawback", a.PotentialDrawback, "Drawback analysis not available"),
		items("Example Brands", a.ExampleBrands, "No example brands available"),
	}}
}

func narrativeCard(n *analysis.BrandNarrative) Card {
	if n == nil {
		n = &analysis.BrandNarrative{}
	}
	return Card{Title: "Brand Narrative", Sections: []Section{
		para("Brand Positioning Statement", n.PositioningStatement, "Brand positioning statement not available"),
		para("What We Do", n.WhatWeDo, "What we do description not available"),
		para("How We Do It", n.HowWeDoIt, "How we do it description not available"),
		para("Why We Do It", n.WhyWeDoIt, "Why we do it description not available"),
	}}
}

func visualCard(v *analysis.VisualIdentity) Card {
	if v == nil {
		v = &analysis.VisualIdentity{}
	}
	return Card{Title: "Visual Identity", Sections: []Section{
		para("Typography", v.Typography, "Typography guidelines not available"),
		para("Color Palette", v.ColorPalette, "Color palette guidelines not available"),
	}}
}

func swotCard(s *analysis.SWOTAnalysis) Card {
	if s == nil {
		s = &analysis.SWOTAnalysis{}
	}
	return Card{Title: "SWOT Analysis", Sections: []Section{
		items("Strengths", s.Strengths, "No strengths analysis available"),
		items("Weaknesses", s.Weaknesses, "No weaknesses analysis available"),
		items("Opportunities", s.Opportunities, "No opportunities analysis available"),
		items("Threats", s.Threats, "No threats analysis available"),
		para("Overall Assessment", s.OverallAssessment, "Overall SWOT assessment not available"),
	}}
}

func competitorCard(c *analysis.CompetitorAnalysis) Card {
	summary := ""
	if c != nil {
		summary = c.Summary
	}
	return Card{Title: "Competitor Analysis", Sections: []Section{
		para("Competitive Landscape Summary", summary, "Competitor analysis not available"),
	}}
}

func landingPageCard(l *analysis.LandingPageAnalysis) Card {
	if l == nil {
		l = &analysis.LandingPageAnalysis{}
	}
	return Card{Title: "Landing Page Analysis", Sections: []Section{
		para("Overall Assessment", l.OverallAssessment, "Landing page assessment not available"),
		items("Strengths", l.Strengths, "No strengths identified"),
		items("Weaknesses", l.Weaknesses, "No weaknesses identified"),
		items("Recommendations", l.Recommendations, "No recommendations available"),
	}}
}

func icpCard(p *analysis.IdealCustomerProfile) Card {
	if p == nil {
		p = &analysis.IdealCustomerProfile{}
	}
	d := p.Demographics
	if d == nil {
		d = &analysis.Demographics{}
	}
	return Card{Title: "Ideal Customer Profile (ICP)", Sections: []Section{
		{Heading: text(p.Title, "Ideal Customer Profile")},
		{Heading: "Demographics", Items: []string{
			"Title: " + text(d.Title, notAvailable),
			"Company Size: " + text(d.CompanySize, notAvailable),
			"Industry: " + text(d.Industry, notAvailable),
			"Revenue: " + text(d.Revenue, notAvailable),
			"Location: " + text(d.Location, notAvailable),
		}},
		items("Core Pain Points", p.CorePainPoints, "No pain points identified"),
		items("Goals & Aspirations", p.GoalsAspirations, "No goals identified"),
		para("Decision Making Style", p.DecisionMakingStyle, "Decision making style not available"),
		items("Psychographics", p.Psychographics, "No psychographics available"),
		items("Preferred Communication Channels", p.PreferredChannels, "No preferred channels available"),
	}}
}

func marketingCopyCard(m *analysis.MarketingCopy) Card {
	if m == nil {
		m = &analysis.MarketingCopy{}
	}
	return Card{Title: "Marketing Copy", Sections: []Section{
		items("Headlines", m.Headlines, "No headlines available"),
		items("Taglines", m.Taglines, "No taglines available"),
	}}
}

func adCopyCard(a *analysis.AdCopyVariations) Card {
	if a == nil {
		a = &analysis.AdCopyVariations{}
	}
	li := a.LinkedinSponsored
	if li == nil {
		li = &analysis.AdCopy{}
	}
	fb := a.FacebookInstagram
	if fb == nil {
		fb = &analysis.AdCopy{}
	}
	g := a.GoogleSearch
	if g == nil {
		g = &analysis.SearchAd{}
	}
	return Card{Title: "Ad Copy Variations", Sections: []Section{
		{Heading: "LinkedIn Sponsored Content", Items: []string{
			text(li.Headline, "LinkedIn headline not available"),
			text(li.Body, "LinkedIn body not available"),
			text(li.CTA, "CTA not available"),
		}},
		{Heading: "Facebook/Instagram Feed Ad", Items: []string{
			text(fb.Headline, "Facebook headline not available"),
			text(fb.Body, "Facebook body not available"),
			text(fb.CTA, "CTA not available"),
		}},
		{Heading: "Google Search Ad (RSA)", Items: []string{
			text(g.Headline1, "Headline 1") + " | " + text(g.Headline2, "Headline 2"),
			text(g.Description, "Google ad description not available"),
			text(g.CTA, "CTA not available"),
		}},
	}}
}

func contentCard(c *analysis.ContentStrategy) Card {
	if c == nil {
		c = &analysis.ContentStrategy{}
	}
	return Card{Title: "Content Strategy", Sections: []Section{
		items("Hero Content", c.HeroContent, "No hero content strategy available"),
		items("Hub Content", c.HubContent, "No hub content strategy available"),
		items("Hygiene Content", c.HygieneContent, "No hygiene content strategy available"),
	}}
}

func campaignCard(c *analysis.CampaignIdeas) Card {
	if c == nil {
		c = &analysis.CampaignIdeas{}
	}
	return Card{Title: "Marketing Campaign Ideas", Sections: []Section{
		items("Awareness Campaigns", c.Awareness, "No awareness campaigns available"),
		items("Interest Campaigns", c.Interest, "No interest campaigns available"),
		items("Desire Campaigns", c.Desire, "No desire campaigns available"),
		items("Action Campaigns", c.Action, "No action campaigns available"),
	}}
}
