package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

func TestToSchema_ReportSchema(t *testing.T) {
	s := ToSchema(analysis.Schema())

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{
		"brandOverview", "targetAudience", "keyStrengths",
		"opportunities", "recommendedChannels", "competitiveAdvantage",
	}, s.Required)

	strengths := s.Properties["keyStrengths"]
	require.NotNil(t, strengths)
	assert.Equal(t, genai.TypeArray, strengths.Type)
	require.NotNil(t, strengths.Items)
	assert.Equal(t, genai.TypeString, strengths.Items.Type)

	google := s.Properties["adCopyVariations"].Properties["googleSearch"]
	require.NotNil(t, google)
	assert.Equal(t, genai.TypeObject, google.Type)
	assert.Equal(t, genai.TypeString, google.Properties["headline1"].Type)
}

func TestModelFor(t *testing.T) {
	c := &Client{Model: "gemini-2.5-flash"}
	assert.Equal(t, "gemini-2.5-flash", c.modelFor("gpt-4o-mini"))
	assert.Equal(t, "gemini-2.5-flash", c.modelFor(""))
	assert.Equal(t, "gemini-2.5-pro", c.modelFor("gemini-2.5-pro"))
}
