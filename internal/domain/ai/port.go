package ai

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// ObjectRequest asks for a JSON value matching Schema.
type ObjectRequest struct {
	Prompt     string
	SchemaName string
	Schema     jsonschema.Definition
}

// TextRequest asks for free-form text. Empty Model or zero MaxTokens
// means the provider default.
type TextRequest struct {
	Prompt    string
	Model     string
	MaxTokens int
}

// Generator is the hosted language model.
type Generator interface {
	GenerateObject(ctx context.Context, req ObjectRequest) ([]byte, error)
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}
