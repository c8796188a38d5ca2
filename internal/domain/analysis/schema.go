package analysis

import (
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// SchemaName is sent along with the schema to providers that name it.
const SchemaName = "brand_analysis"

func str() jsonschema.Definition { return jsonschema.Definition{Type: jsonschema.String} }

func strs() jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}}
}

func obj(props map[string]jsonschema.Definition) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.Object, Properties: props}
}

func adCopy() jsonschema.Definition {
	return obj(map[string]jsonschema.Definition{"headline": str(), "body": str(), "cta": str()})
}

// Schema is the fixed JSON schema the generated report must satisfy.
func Schema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"brandOverview":        str(),
			"targetAudience":       str(),
			"keyStrengths":         strs(),
			"opportunities":        strs(),
			"recommendedChannels":  strs(),
			"competitiveAdvantage": str(),
			"brandIdentity": obj(map[string]jsonschema.Definition{
				"brandVoice":       str(),
				"brandPromise":     str(),
				"brandPersonality": str(),
			}),
			"brandMission":             str(),
			"brandVision":              str(),
			"uniqueSellingProposition": str(),
			"brandGoals":               strs(),
			"brandValues":              strs(),
			"brandArchetype": obj(map[string]jsonschema.Definition{
				"type":              str(),
				"overview":          str(),
				"application":       str(),
				"definition":        str(),
				"keyTraits":         strs(),
				"typicalGoal":       str(),
				"coreStrategies":    strs(),
				"marketingNiche":    str(),
				"potentialDrawback": str(),
				"exampleBrands":     strs(),
			}),
			"brandNarrative": obj(map[string]jsonschema.Definition{
				"positioningStatement": str(),
				"whatWeDo":             str(),
				"howWeDoIt":            str(),
				"whyWeDoIt":            str(),
			}),
			"visualIdentity": obj(map[string]jsonschema.Definition{
				"typography":   str(),
				"colorPalette": str(),
			}),
			"swotAnalysis": obj(map[string]jsonschema.Definition{
				"strengths":         strs(),
				"weaknesses":        strs(),
				"opportunities":     strs(),
				"threats":           strs(),
				"overallAssessment": str(),
			}),
			"competitorAnalysis": obj(map[string]jsonschema.Definition{"summary": str()}),
			"actionableInsights": strs(),
			"landingPageAnalysis": obj(map[string]jsonschema.Definition{
				"overallAssessment": str(),
				"strengths":         strs(),
				"weaknesses":        strs(),
				"recommendations":   strs(),
			}),
			"seoAnalysis": str(),
			"idealCustomerProfile": obj(map[string]jsonschema.Definition{
				"title": str(),
				"demographics": obj(map[string]jsonschema.Definition{
					"title":       str(),
					"companySize": str(),
					"industry":    str(),
					"revenue":     str(),
					"location":    str(),
				}),
				"corePainPoints":      strs(),
				"goalsAspirations":    strs(),
				"decisionMakingStyle": str(),
				"psychographics":      strs(),
				"preferredChannels":   strs(),
			}),
			"marketingCopy": obj(map[string]jsonschema.Definition{
				"headlines": strs(),
				"taglines":  strs(),
			}),
			"adCopyVariations": obj(map[string]jsonschema.Definition{
				"linkedinSponsored": adCopy(),
				"facebookInstagram": adCopy(),
				"googleSearch": obj(map[string]jsonschema.Definition{
					"headline1":   str(),
					"headline2":   str(),
					"description": str(),
					"cta":         str(),
				}),
			}),
			"contentStrategy": obj(map[string]jsonschema.Definition{
				"heroContent":    strs(),
				"hubContent":     strs(),
				"hygieneContent": strs(),
			}),
			"marketingCampaignIdeas": obj(map[string]jsonschema.Definition{
				"awareness": strs(),
				"interest":  strs(),
				"desire":    strs(),
				"action":    strs(),
			}),
			"brandStrategy": str(),
		},
		Required: []string{
			"brandOverview", "targetAudience", "keyStrengths",
			"opportunities", "recommendedChannels", "competitiveAdvantage",
		},
	}
}

// VerifyGenerated validates raw against Schema and decodes it into v.
func VerifyGenerated(raw []byte, v any) error {
	if err := jsonschema.VerifySchemaAndUnmarshal(Schema(), raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	return nil
}
