package llm

// NewProvider returns the completion-service client, or nil when no API key
// is configured. A nil provider puts the whole process in template mode;
// the decision is made once at startup and never revisited.
func NewProvider(apiKey, model string) Provider {
	if apiKey == "" {
		return nil
	}
	return NewAnthropicProvider(apiKey, model)
}
