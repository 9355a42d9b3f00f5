package prompt

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/ced-it/promptforge/internal/llm"
)

// ErrEmptyIdea is returned when the idea text is missing or blank after
// trimming. It is the only error Generate ever returns.
var ErrEmptyIdea = errors.New("keywords are required")

// Generator turns a Request into a Result, either through the completion
// service or through the per-category fallback templates. A nil provider
// means template mode for the lifetime of the process.
type Generator struct {
	provider  llm.Provider
	model     string
	maxTokens int
}

func NewGenerator(provider llm.Provider, model string, maxTokens int) *Generator {
	if maxTokens <= 0 {
		maxTokens = 2000
	}
	return &Generator{
		provider:  provider,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Mode reports which path Generate will take: "api" when a completion
// provider is configured, "template" otherwise.
func (g *Generator) Mode() string {
	if g.provider == nil {
		return "template"
	}
	return "api"
}

// Generate produces the result for one submission. Once the idea text has
// validated, the caller always gets a usable Result: any completion-service
// failure is absorbed into the fallback path and flagged with an extra tip.
func (g *Generator) Generate(ctx context.Context, req *Request) (Result, error) {
	req.Keywords = strings.TrimSpace(req.Keywords)
	if req.Keywords == "" {
		return Result{}, ErrEmptyIdea
	}

	if g.provider == nil {
		return FallbackResult(req), nil
	}

	resp, err := g.provider.Complete(ctx, &llm.CompletionRequest{
		Model: g.model,
		Messages: []llm.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: BuildUserMessage(req)},
		},
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		log.Printf("completion failed, falling back to templates: %v", err)
		res := FallbackResult(req)
		res.Tips = append(res.Tips, OfflineTip)
		return res, nil
	}

	return Normalize(resp.Content), nil
}
