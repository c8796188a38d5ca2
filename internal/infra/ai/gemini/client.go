package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"

	"github.com/bryanwahyu/brand-playground/internal/domain/ai"
)

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 8192
)

// Client is a Generator backed by the Gemini API.
type Client struct {
	client    *genai.Client
	Model     string
	MaxTokens int32
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{client: client, Model: model, MaxTokens: defaultMaxTokens}, nil
}

func (c *Client) Close() error { return c.client.Close() }

func (c *Client) GenerateObject(ctx context.Context, req ai.ObjectRequest) ([]byte, error) {
	model := c.client.GenerativeModel(c.Model)
	model.SetMaxOutputTokens(c.MaxTokens)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = ToSchema(req.Schema)

	text, err := c.generate(ctx, model, req.Prompt)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (c *Client) GenerateText(ctx context.Context, req ai.TextRequest) (string, error) {
	model := c.client.GenerativeModel(c.modelFor(req.Model))
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	return c.generate(ctx, model, req.Prompt)
}

// modelFor keeps the configured model unless the request names a Gemini one.
// Chat requests default to an OpenAI model name.
func (c *Client) modelFor(requested string) string {
	if strings.HasPrefix(requested, "gemini") {
		return requested
	}
	return c.Model
}

func (c *Client) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if isQuota(err) {
			return "", fmt.Errorf("%w: %v", ai.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ai.ErrEmptyResponse
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ai.ErrEmptyResponse
	}
	return b.String(), nil
}

func isQuota(err error) bool {
	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.HTTPCode() == http.StatusTooManyRequests || apiErr.GRPCStatus().Code() == codes.ResourceExhausted
}

// ToSchema converts a JSON schema definition into Gemini's schema subset.
func ToSchema(d jsonschema.Definition) *genai.Schema {
	s := &genai.Schema{Description: d.Description, Enum: d.Enum, Required: d.Required}
	switch d.Type {
	case jsonschema.Object:
		s.Type = genai.TypeObject
		if len(d.Properties) > 0 {
			s.Properties = make(map[string]*genai.Schema, len(d.Properties))
			for name, p := range d.Properties {
				s.Properties[name] = ToSchema(p)
			}
		}
	case jsonschema.Array:
		s.Type = genai.TypeArray
		if d.Items != nil {
			s.Items = ToSchema(*d.Items)
		}
	case jsonschema.Integer:
		s.Type = genai.TypeInteger
	case jsonschema.Number:
		s.Type = genai.TypeNumber
	case jsonschema.Boolean:
		s.Type = genai.TypeBoolean
	default:
		s.Type = genai.TypeString
	}
	return s
}
