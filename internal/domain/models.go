package domain

import "time"

// CommandRequest is one structured invocation of a supported command.
// It is created per interaction and discarded once handled.
type CommandRequest struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
}

// Param returns the named parameter, or an empty string when absent.
func (r CommandRequest) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// CompletionRequest is a single-prompt request sent to a provider.
type CompletionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

// CompletionResponse represents a finished, non-streaming provider response.
type CompletionResponse struct {
	ID         string    `json:"id"`
	Model      string    `json:"model"`
	Provider   string    `json:"provider"`
	Content    string    `json:"content"`
	Usage      Usage     `json:"usage"`
	FinishTime time.Time `json:"finish_time"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
