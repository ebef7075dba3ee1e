// Package llm is the boundary to the generative-text service. The pipeline
// depends only on the Client interface; the OpenAI adapter and the test
// fakes implement it.
package llm

import "context"

// Response is the result of one completion call.
type Response struct {
	Content        string
	PromptTokens   int
	ResponseTokens int
	Model          string
}

// TotalTokens is the combined prompt and response token count.
func (r Response) TotalTokens() int {
	return r.PromptTokens + r.ResponseTokens
}

// Client is the generative-text port. Implementations own transport
// concerns such as timeouts, retries and auth; callers only cancel via ctx.
type Client interface {
	// Complete generates free text for a prompt.
	Complete(ctx context.Context, prompt, systemPrompt string, temperature float64, maxOutputTokens int) (Response, error)
	// CompleteJSON generates a JSON-encoded object; the schema is defined
	// by the prompt. The content is returned unparsed.
	CompleteJSON(ctx context.Context, prompt, systemPrompt string, temperature float64) (Response, error)
	// CountTokens estimates the token count of a text.
	CountTokens(text string) int
}
