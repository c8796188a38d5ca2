package analysis

// FallbackReport returns the static example report shown whenever report
// generation fails. Its FullAnalysis carries only the identity sections;
// every other card renders its placeholder. Each call builds a fresh value.
func FallbackReport() *Report {
	return &Report{
		BrandOverview:  "This brand demonstrates strong digital presence with a focus on innovation and user experience. The website showcases modern design principles and clear value propositions that resonate with tech-savvy audiences.",
		TargetAudience: "Primary audience consists of growth-focused entrepreneurs, digital marketers, and SaaS companies looking to scale their operations. Secondary audience includes consultants and agencies seeking AI-powered solutions.",
		KeyStrengths: []string{
			"Strong Digital Presence",
			"Clear Value Proposition",
			"Modern UX/UI Design",
			"Technical Innovation",
			"Growth-Focused Messaging",
		},
		Opportunities: []string{
			"Expand content marketing strategy with video content",
			"Implement advanced SEO optimization for technical keywords",
			"Develop strategic partnerships with complementary SaaS tools",
			"Create educational webinar series for lead generation",
			"Launch referral program to leverage existing customer base",
		},
		RecommendedChannels: []string{
			"LinkedIn Ads",
			"Google Ads",
			"Content Marketing",
			"Email Campaigns",
			"Webinars",
			"Podcast Sponsorships",
		},
		CompetitiveAdvantage: "The brand's unique positioning at the intersection of AI technology and growth marketing creates a distinctive competitive moat. The focus on practical, results-driven solutions rather than just technology showcases differentiates from pure-tech competitors.",
		FullAnalysis:         fallbackIdentity(),
	}
}

// fallbackIdentity holds the identity, mission, vision, USP, goals, values
// and archetype sections of the fallback report.
func fallbackIdentity() *FullAnalysis {
	return &FullAnalysis{
		BrandIdentity: &BrandIdentity{
			BrandVoice:       "Professional, authoritative, and approachable with a focus on expertise and innovation",
			BrandPromise:     "Accelerating digital transformation through AI-powered strategies and proven growth methodologies",
			BrandPersonality: "Expert, innovative, results-driven, trustworthy, forward-thinking",
		},
		BrandMission:             "To empower businesses with cutting-edge AI and digital strategies that drive measurable growth and competitive advantage",
		BrandVision:              "To be the leading catalyst for digital transformation, helping companies navigate and thrive in the AI-driven future",
		UniqueSellingProposition: "The only AI/GTM consultancy that combines deep technical expertise with proven growth strategies to deliver measurable results in 90 days or less",
		BrandGoals: []string{
			"Establish thought leadership in AI-driven growth strategies",
			"Scale to 100+ successful client transformations by 2025",
			"Build the premier AI consultancy brand in the market",
			"Create proprietary methodologies that become industry standards",
		},
		BrandValues: []string{
			"Innovation-first approach",
			"Data-driven decision making",
			"Transparent communication",
			"Measurable results",
			"Continuous learning",
		},
		BrandArchetype: &BrandArchetype{
			Type:              "The Sage",
			Overview:          "The Sage archetype represents wisdom, knowledge, and the pursuit of truth through understanding",
			Application:       "High Growth Digital embodies The Sage by providing expert guidance and deep insights into AI and digital transformation",
			Definition:        "A brand that seeks to understand the world and share knowledge to help others make better decisions",
			KeyTraits:         []string{"Wise", "Knowledgeable", "Thoughtful", "Analytical", "Trustworthy", "Experienced"},
			TypicalGoal:       "To help others understand complex concepts and make informed decisions",
			CoreStrategies:    []string{"Educational content", "Thought leadership", "Expert positioning", "Knowledge sharing"},
			MarketingNiche:    "B2B consulting, educational content, expert advisory services",
			PotentialDrawback: "May appear overly academic or slow to act",
			ExampleBrands:     []string{"McKinsey & Company", "Harvard Business Review", "MIT Technology Review"},
		},
	}
}

// FallbackFullAnalysis is the section bag rendered when a report carries
// no FullAnalysis at all.
func FallbackFullAnalysis() *FullAnalysis {
	fa := fallbackIdentity()
	fa.BrandNarrative = &BrandNarrative{
		PositioningStatement: "For ambitious businesses seeking digital transformation, High Growth Digital is the AI/GTM consultancy that delivers measurable growth through proven methodologies and cutting-edge technology",
		WhatWeDo:             "We provide AI-powered growth strategies, digital transformation consulting, and go-to-market optimization",
		HowWeDoIt:            "Through data-driven analysis, proprietary methodologies, and hands-on implementation support",
		WhyWeDoIt:            "To democratize access to world-class growth strategies and help businesses thrive in the digital age",
	}
	fa.VisualIdentity = &VisualIdentity{
		Typography:   "Modern sans-serif fonts (Inter, Helvetica) for clarity and professionalism",
		ColorPalette: "Deep blues and teals with accent colors in bright orange or green for energy and trust",
	}
	fa.SWOTAnalysis = &SWOTAnalysis{
		Strengths: []string{
			"Deep expertise in AI and digital transformation",
			"Proven track record with measurable results",
			"Strong personal brand and thought leadership",
			"Innovative methodologies and approaches",
		},
		Weaknesses: []string{
			"Limited brand recognition compared to established consultancies",
			"Smaller team size may limit scalability",
			"Newer market presence requires more trust-building",
		},
		Opportunities: []string{
			"Rapidly growing AI adoption market",
			"Increasing demand for digital transformation",
			"Opportunity to establish category leadership",
			"Potential for strategic partnerships",
		},
		Threats: []string{
			"Large consulting firms entering AI space",
			"Market saturation with AI consultants",
			"Economic downturns affecting consulting budgets",
			"Rapid technology changes requiring constant adaptation",
		},
		OverallAssessment: "Strong position in a growing market with clear differentiation, but needs focused brand building and market education",
	}
	fa.CompetitorAnalysis = &CompetitorAnalysis{
		Summary: "The competitive landscape includes large consulting firms (McKinsey, BCG), specialized AI consultancies, and independent experts. Key differentiator is the combination of AI expertise with practical GTM execution.",
	}
	fa.ActionableInsights = []string{
		"Develop a content marketing strategy showcasing AI transformation case studies",
		"Create proprietary frameworks and methodologies to establish thought leadership",
		"Build strategic partnerships with technology vendors",
		"Invest in personal branding and speaking opportunities",
		"Develop scalable service offerings and training programs",
	}
	fa.LandingPageAnalysis = &LandingPageAnalysis{
		OverallAssessment: "Professional and credible but could benefit from stronger value proposition messaging and social proof",
		Recommendations: []string{
			"Add more specific case studies and results",
			"Include client testimonials and logos",
			"Strengthen the hero section with clearer value proposition",
			"Add trust signals and certifications",
		},
		Strengths: []string{
			"Clean, professional design",
			"Clear service offerings",
			"Good use of white space",
			"Mobile responsive",
		},
		Weaknesses: []string{
			"Limited social proof",
			"Generic messaging in places",
			"Could use stronger calls-to-action",
			"Missing urgency or scarcity elements",
		},
	}
	fa.SEOAnalysis = "Good technical foundation but needs more content marketing and keyword optimization for AI and digital transformation terms"
	fa.IdealCustomerProfile = &IdealCustomerProfile{
		Title: "The Ambitious HealthTech Leader",
		Demographics: &Demographics{
			Title:       "VP/Director of Growth, Marketing, or Digital Transformation",
			CompanySize: "50-500 employees",
			Industry:    "HealthTech, SaaS, B2B Technology",
			Revenue:     "$10M-$100M ARR",
			Location:    "North America, Europe",
		},
		CorePainPoints: []string{
			"Struggling to scale growth beyond current plateau",
			"Unclear how to leverage AI for competitive advantage",
			"Difficulty measuring ROI on digital initiatives",
			"Need to modernize go-to-market strategies",
		},
		GoalsAspirations: []string{
			"Achieve 40%+ year-over-year growth",
			"Implement AI-driven growth strategies",
			"Build scalable, predictable revenue systems",
			"Establish market leadership position",
		},
		DecisionMakingStyle: "Data-driven, collaborative, seeks expert validation before major investments",
		Psychographics: []string{
			"Innovation-focused",
			"Results-oriented",
			"Time-conscious",
			"Quality-focused",
			"Growth-minded",
		},
		PreferredChannels: []string{
			"LinkedIn",
			"Industry conferences",
			"Peer recommendations",
			"Thought leadership content",
			"Webinars and workshops",
		},
	}
	fa.MarketingCopy = &MarketingCopy{
		Headlines: []string{
			"Transform Your Business with AI-Powered Growth Strategies",
			"From Digital Transformation to Market Domination",
			"The AI Advantage Your Competitors Don't Have",
			"Proven Growth Strategies for the AI Era",
		},
		Taglines: []string{
			"Growth. Accelerated.",
			"AI-Powered. Results-Driven.",
			"Your Digital Transformation Partner",
			"Where Strategy Meets Innovation",
		},
	}
	fa.AdCopyVariations = &AdCopyVariations{
		LinkedinSponsored: &AdCopy{
			Headline: "Ready to 10x Your Growth with AI?",
			Body:     "Join 100+ companies using our proven AI-powered strategies to accelerate growth. Get your free strategy assessment.",
			CTA:      "Get Free Assessment",
		},
		FacebookInstagram: &AdCopy{
			Headline: "The Secret to Sustainable Growth",
			Body:     "Discover how leading companies are using AI to transform their growth strategies. Download our free playbook.",
			CTA:      "Download Now",
		},
		GoogleSearch: &SearchAd{
			Headline1:   "AI Growth Strategies | Proven Results",
			Headline2:   "Transform Your Business Today",
			Description: "Expert AI & digital transformation consulting. Measurable results in 90 days. Free consultation available.",
			CTA:         "Get Started",
		},
	}
	fa.ContentStrategy = &ContentStrategy{
		HeroContent: []string{
			"Comprehensive AI transformation case studies",
			"Industry-specific growth playbooks",
			"Viral thought leadership pieces on AI trends",
		},
		HubContent: []string{
			"Weekly AI and growth strategy insights",
			"How-to guides for digital transformation",
			"Industry analysis and market reports",
		},
		HygieneContent: []string{
			"Service pages and company information",
			"FAQ and support documentation",
			"Basic educational content on AI and growth",
		},
	}
	fa.MarketingCampaignIdeas = &CampaignIdeas{
		Awareness: []string{
			"AI Transformation Summit virtual event",
			"Thought leadership content series on LinkedIn",
			"Podcast sponsorships in business and tech shows",
		},
		Interest: []string{
			"Free AI readiness assessment tool",
			"Growth strategy webinar series",
			"Industry-specific case study campaigns",
		},
		Desire: []string{
			"Limited-time strategy consultation offers",
			"Success story video testimonials",
			"ROI calculator for AI implementations",
		},
		Action: []string{
			"Free 30-minute strategy session",
			"Pilot program with guaranteed results",
			"Exclusive workshop for qualified prospects",
		},
	}
	fa.BrandStrategy = "Position as the premier AI/GTM consultancy through thought leadership, proven methodologies, and measurable results. Focus on building trust through education and demonstrating expertise through case studies and frameworks."
	return fa
}
