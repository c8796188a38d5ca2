package prompt

import (
	"encoding/json"
	"fmt"
)

// maxContentRunes caps the scraped markdown placed in the prompt.
const maxContentRunes = 30000

// brandStructure is the JSON outline the model is asked to follow. The
// response schema enforces the shape; this text steers the content.
const brandStructure = `{
  "brandOverview": "string",
  "targetAudience": "string",
  "keyStrengths": ["array of strings"],
  "opportunities": ["array of strings"],
  "recommendedChannels": ["array of strings"],
  "competitiveAdvantage": "string",
  "brandIdentity": {
    "brandVoice": "string",
    "brandPromise": "string",
    "brandPersonality": "string"
  },
  "brandMission": "string",
  "brandVision": "string",
  "uniqueSellingProposition": "string",
  "brandGoals": ["array of strings"],
  "brandValues": ["array of strings"],
  "swotAnalysis": {
    "strengths": ["array"],
    "weaknesses": ["array"],
    "opportunities": ["array"],
    "threats": ["array"],
    "overallAssessment": "string"
  },
  "idealCustomerProfile": {
    "title": "string",
    "demographics": {
      "title": "string",
      "companySize": "string",
      "industry": "string",
      "revenue": "string",
      "location": "string"
    },
    "corePainPoints": ["array"],
    "goalsAspirations": ["array"],
    "decisionMakingStyle": "string",
    "psychographics": ["array"],
    "preferredChannels": ["array"]
  },
  "marketingCopy": {
    "headlines": ["array"],
    "taglines": ["array"]
  },
  "contentStrategy": {
    "heroContent": ["array"],
    "hubContent": ["array"],
    "hygieneContent": ["array"]
  },
  "actionableInsights": ["array of strings"]
}`

// BrandAnalysis builds the report prompt from a scraped website.
func BrandAnalysis(websiteURL, markdown string, metadata map[string]string) string {
	if metadata == nil {
		metadata = map[string]string{}
	}
	meta, _ := json.Marshal(metadata) // map[string]string always marshals
	return fmt.Sprintf(`Analyze the following website and provide a comprehensive brand strategy analysis:

Website URL: %s
Website Content: %s
Website Metadata: %s

Please provide a detailed brand analysis in JSON format with the following structure:
%s

Make the analysis specific to this website and industry. Be detailed and actionable.`,
		websiteURL, truncate(markdown, maxContentRunes), meta, brandStructure)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
