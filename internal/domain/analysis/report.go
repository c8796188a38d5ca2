package analysis

// Report is the brand-strategy record produced by the generator.
// The six core fields are required by the schema; everything under
// FullAnalysis is optional at every depth.
type Report struct {
	BrandOverview        string        `json:"brandOverview"`
	TargetAudience       string        `json:"targetAudience"`
	KeyStrengths         []string      `json:"keyStrengths"`
	Opportunities        []string      `json:"opportunities"`
	RecommendedChannels  []string      `json:"recommendedChannels"`
	CompetitiveAdvantage string        `json:"competitiveAdvantage"`
	FullAnalysis         *FullAnalysis `json:"fullAnalysis,omitempty"`
}

// FullAnalysis is the open-ended bag of report sections.
type FullAnalysis struct {
	BrandIdentity            *BrandIdentity        `json:"brandIdentity,omitempty"`
	BrandMission             string                `json:"brandMission,omitempty"`
	BrandVision              string                `json:"brandVision,omitempty"`
	UniqueSellingProposition string                `json:"uniqueSellingProposition,omitempty"`
	BrandGoals               []string              `json:"brandGoals,omitempty"`
	BrandValues              []string              `json:"brandValues,omitempty"`
	BrandArchetype           *BrandArchetype       `json:"brandArchetype,omitempty"`
	BrandNarrative           *BrandNarrative       `json:"brandNarrative,omitempty"`
	VisualIdentity           *VisualIdentity       `json:"visualIdentity,omitempty"`
	SWOTAnalysis             *SWOTAnalysis         `json:"swotAnalysis,omitempty"`
	CompetitorAnalysis       *CompetitorAnalysis   `json:"competitorAnalysis,omitempty"`
	ActionableInsights       []string              `json:"actionableInsights,omitempty"`
	LandingPageAnalysis      *LandingPageAnalysis  `json:"landingPageAnalysis,omitempty"`
	SEOAnalysis              string                `json:"seoAnalysis,omitempty"`
	IdealCustomerProfile     *IdealCustomerProfile `json:"idealCustomerProfile,omitempty"`
	MarketingCopy            *MarketingCopy        `json:"marketingCopy,omitempty"`
	AdCopyVariations         *AdCopyVariations     `json:"adCopyVariations,omitempty"`
	ContentStrategy          *ContentStrategy      `json:"contentStrategy,omitempty"`
	MarketingCampaignIdeas   *CampaignIdeas        `json:"marketingCampaignIdeas,omitempty"`
	BrandStrategy            string                `json:"brandStrategy,omitempty"`
}

type BrandIdentity struct {
	BrandVoice       string `json:"brandVoice,omitempty"`
	BrandPromise     string `json:"brandPromise,omitempty"`
	BrandPersonality string `json:"brandPersonality,omitempty"`
}

type BrandArchetype struct {
	Type              string   `json:"type,omitempty"`
	Overview          string   `json:"overview,omitempty"`
	Application       string   `json:"application,omitempty"`
	Definition        string   `json:"definition,omitempty"`
	KeyTraits         []string `json:"keyTraits,omitempty"`
	TypicalGoal       string   `json:"typicalGoal,omitempty"`
	CoreStrategies    []string `json:"coreStrategies,omitempty"`
	MarketingNiche    string   `json:"marketingNiche,omitempty"`
	PotentialDrawback string   `json:"potentialDrawback,omitempty"`
	ExampleBrands     []string `json:"exampleBrands,omitempty"`
}

type BrandNarrative struct {
	PositioningStatement string `json:"positioningStatement,omitempty"`
	WhatWeDo             string `json:"whatWeDo,omitempty"`
	HowWeDoIt            string `json:"howWeDoIt,omitempty"`
	WhyWeDoIt            string `json:"whyWeDoIt,omitempty"`
}

type VisualIdentity struct {
	Typography   string `json:"typography,omitempty"`
	ColorPalette string `json:"colorPalette,omitempty"`
}

type SWOTAnalysis struct {
	Strengths         []string `json:"strengths,omitempty"`
	Weaknesses        []string `json:"weaknesses,omitempty"`
	Opportunities     []string `json:"opportunities,omitempty"`
	Threats           []string `json:"threats,omitempty"`
	OverallAssessment string   `json:"overallAssessment,omitempty"`
}

type CompetitorAnalysis struct {
	Summary string `json:"summary,omitempty"`
}

type LandingPageAnalysis struct {
	OverallAssessment string   `json:"overallAssessment,omitempty"`
	Strengths         []string `json:"strengths,omitempty"`
	Weaknesses        []string `json:"weaknesses,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
}

type IdealCustomerProfile struct {
	Title               string        `json:"title,omitempty"`
	Demographics        *Demographics `json:"demographics,omitempty"`
	CorePainPoints      []string      `json:"corePainPoints,omitempty"`
	GoalsAspirations    []string      `json:"goalsAspirations,omitempty"`
	DecisionMakingStyle string        `json:"decisionMakingStyle,omitempty"`
	Psychographics      []string      `json:"psychographics,omitempty"`
	PreferredChannels   []string      `json:"preferredChannels,omitempty"`
}

type Demographics struct {
	Title       string `json:"title,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Revenue     string `json:"revenue,omitempty"`
	Location    string `json:"location,omitempty"`
}

type MarketingCopy struct {
	Headlines []string `json:"headlines,omitempty"`
	Taglines  []string `json:"taglines,omitempty"`
}

type AdCopyVariations struct {
	LinkedinSponsored *AdCopy   `json:"linkedinSponsored,omitempty"`
	FacebookInstagram *AdCopy   `json:"facebookInstagram,omitempty"`
	GoogleSearch      *SearchAd `json:"googleSearch,omitempty"`
}

type AdCopy struct {
	Headline string `json:"headline,omitempty"`
	Body     string `json:"body,omitempty"`
	CTA      string `json:"cta,omitempty"`
}

type SearchAd struct {
	Headline1   string `json:"headline1,omitempty"`
	Headline2   string `json:"headline2,omitempty"`
	Description string `json:"description,omitempty"`
	CTA         string `json:"cta,omitempty"`
}

type ContentStrategy struct {
	HeroContent    []string `json:"heroContent,omitempty"`
	HubContent     []string `json:"hubContent,omitempty"`
	HygieneContent []string `json:"hygieneContent,omitempty"`
}

type CampaignIdeas struct {
	Awareness []string `json:"awareness,omitempty"`
	Interest  []string `json:"interest,omitempty"`
	Desire    []string `json:"desire,omitempty"`
	Action    []string `json:"action,omitempty"`
}

// generatedObject is the flat JSON shape the generator returns: the core
// fields and the optional sections side by side.
type generatedObject struct {
	BrandOverview        string   `json:"brandOverview"`
	TargetAudience       string   `json:"targetAudience"`
	KeyStrengths         []string `json:"keyStrengths"`
	Opportunities        []string `json:"opportunities"`
	RecommendedChannels  []string `json:"recommendedChannels"`
	CompetitiveAdvantage string   `json:"competitiveAdvantage"`
	FullAnalysis
}

// ReportFromGenerated builds a Report from a schema-validated generated object.
// The whole object becomes FullAnalysis.
func ReportFromGenerated(raw []byte) (*Report, error) {
	var g generatedObject
	if err := VerifyGenerated(raw, &g); err != nil {
		return nil, err
	}
	full := g.FullAnalysis
	return &Report{
		BrandOverview:        g.BrandOverview,
		TargetAudience:       g.TargetAudience,
		KeyStrengths:         g.KeyStrengths,
		Opportunities:        g.Opportunities,
		RecommendedChannels:  g.RecommendedChannels,
		CompetitiveAdvantage: g.CompetitiveAdvantage,
		FullAnalysis:         &full,
	}, nil
}
