package llm

import "context"

// Provider defines the interface for text-generation providers. The
// journal only needs plain prose, so the contract is prompt in, string
// out.
type Provider interface {
	// GenerateText produces a completion for the given prompts.
	GenerateText(ctx context.Context, request *TextRequest) (*TextResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// TextRequest contains all parameters needed for one text generation
type TextRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int64
	Temperature  float64
}

// TextResponse contains the result from the LLM
type TextResponse struct {
	Text  string
	Usage Usage
}

// Usage holds token counts for a single call
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
