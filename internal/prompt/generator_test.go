package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ced-it/promptforge/internal/llm"
)

type fakeProvider struct {
	reply   string
	err     error
	lastReq *llm.CompletionRequest
}

func (f *fakeProvider) Name() string                    { return "fake" }
func (f *fakeProvider) Ping(ctx context.Context) error  { return nil }
func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply}, nil
}

func TestGenerateRejectsBlankIdea(t *testing.T) {
	g := NewGenerator(nil, "", 0)

	for _, kw := range []string{"", "   ", "\n\t "} {
		_, err := g.Generate(context.Background(), &Request{Keywords: kw})
		if !errors.Is(err, ErrEmptyIdea) {
			t.Errorf("keywords %q: err = %v, want ErrEmptyIdea", kw, err)
		}
	}
}

func TestGenerateTemplateModeWithoutProvider(t *testing.T) {
	g := NewGenerator(nil, "", 0)

	res, err := g.Generate(context.Background(), &Request{Keywords: "un chat", Type: CategoryImage})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := FallbackResult(&Request{Keywords: "un chat", Type: CategoryImage})
	if res.Prompt != want.Prompt {
		t.Error("template mode should produce the deterministic fallback")
	}
	for _, tip := range res.Tips {
		if tip == OfflineTip {
			t.Error("template mode must not carry the offline-error tip")
		}
	}
}

func TestGenerateSendsPersonaAndTaskInstruction(t *testing.T) {
	fake := &fakeProvider{reply: `{"prompt":"P","tips":[],"variations":[]}`}
	g := NewGenerator(fake, "test-model", 1234)

	res, err := g.Generate(context.Background(), &Request{Keywords: "  un chat  ", Type: CategoryCode})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Prompt != "P" {
		t.Errorf("Prompt = %q, want normalized reply", res.Prompt)
	}

	req := fake.lastReq
	if req == nil {
		t.Fatal("provider was never called")
	}
	if req.Model != "test-model" || req.MaxTokens != 1234 {
		t.Errorf("model/maxTokens not threaded: %+v", req)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Fatalf("want system+user messages, got %+v", req.Messages)
	}
	if req.Messages[0].Content != SystemPrompt {
		t.Error("system message should be the embedded persona prompt")
	}
	if !strings.Contains(req.Messages[1].Content, `"un chat"`) {
		t.Error("user message should carry the trimmed idea text")
	}
}

func TestGenerateAbsorbsProviderErrors(t *testing.T) {
	fake := &fakeProvider{err: errors.New("upstream exploded")}
	g := NewGenerator(fake, "", 0)

	res, err := g.Generate(context.Background(), &Request{Keywords: "un chat", Type: CategoryImage})
	if err != nil {
		t.Fatalf("provider errors must not propagate, got %v", err)
	}

	if len(res.Tips) == 0 || res.Tips[len(res.Tips)-1] != OfflineTip {
		t.Errorf("offline tip should be appended last, tips = %v", res.Tips)
	}
	want := FallbackResult(&Request{Keywords: "un chat", Type: CategoryImage})
	if res.Prompt != want.Prompt {
		t.Error("error path should produce the deterministic fallback prompt")
	}
}

func TestGenerateNormalizesChattyReply(t *testing.T) {
	fake := &fakeProvider{reply: "Sure! {\"prompt\":\"optimized\",\"tips\":[\"t\"],\"variations\":[]} hope that helps"}
	g := NewGenerator(fake, "", 0)

	res, err := g.Generate(context.Background(), &Request{Keywords: "idée"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Prompt != "optimized" {
		t.Errorf("Prompt = %q", res.Prompt)
	}
}

func TestGeneratorMode(t *testing.T) {
	if mode := NewGenerator(nil, "", 0).Mode(); mode != "template" {
		t.Errorf("Mode = %q, want template", mode)
	}
	if mode := NewGenerator(&fakeProvider{}, "", 0).Mode(); mode != "api" {
		t.Errorf("Mode = %q, want api", mode)
	}
}
