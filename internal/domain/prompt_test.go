package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/promptrelay/internal/domain"
)

func TestPromptBuilder_Build(t *testing.T) {
	builder := domain.NewPromptBuilder()

	tests := []struct {
		name     string
		req      domain.CommandRequest
		expected string
	}{
		{
			name:     "ask",
			req:      domain.CommandRequest{Name: "ask", Params: map[string]string{"question": "What is 2+2?"}},
			expected: "Answer helpfully and friendly: What is 2+2?",
		},
		{
			name: "translate",
			req: domain.CommandRequest{Name: "translate", Params: map[string]string{
				"text":           "Good morning",
				"targetLanguage": "Vietnamese",
			}},
			expected: "Translate to Vietnamese: \"Good morning\"",
		},
		{
			name:     "summarize",
			req:      domain.CommandRequest{Name: "summarize", Params: map[string]string{"text": "A long story."}},
			expected: "Summarize concisely: A long story.",
		},
		{
			name: "code explain wraps code in a fence",
			req: domain.CommandRequest{Name: "code", Params: map[string]string{
				"code":   "fmt.Println(1)",
				"action": "explain",
			}},
			expected: "Explain what the following code does, step by step:\n```\nfmt.Println(1)\n```",
		},
		{
			name: "creative poem",
			req: domain.CommandRequest{Name: "creative", Params: map[string]string{
				"topic": "the sea",
				"type":  "poem",
			}},
			expected: "Write a poem about: the sea",
		},
		{
			name: "analyze keywords",
			req: domain.CommandRequest{Name: "analyze", Params: map[string]string{
				"text": "Go is fast.",
				"type": "keywords",
			}},
			expected: "Extract the most important keywords from the following text: Go is fast.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := builder.Build(tt.req)

			require.NoError(t, err)
			require.Equal(t, tt.expected, prompt)
		})
	}
}

func TestPromptBuilder_EverySubActionProducesPrompt(t *testing.T) {
	builder := domain.NewPromptBuilder()

	for _, spec := range domain.Catalog() {
		choices := spec.Choices()
		if len(choices) == 0 {
			choices = []string{""}
		}

		for _, choice := range choices {
			params := make(map[string]string, len(spec.Params))
			for _, p := range spec.Params {
				params[p.Name] = "value-of-" + p.Name
			}
			if spec.SubAction != "" {
				params[spec.SubAction] = choice
			}

			t.Run(spec.Name+"/"+choice, func(t *testing.T) {
				req := domain.CommandRequest{Name: spec.Name, Params: params}

				first, err := builder.Build(req)
				require.NoError(t, err)
				require.NotEmpty(t, first)

				second, err := builder.Build(req)
				require.NoError(t, err)
				require.Equal(t, first, second)

				for _, p := range spec.Params {
					if p.Name == spec.SubAction {
						continue
					}
					require.Contains(t, first, params[p.Name])
				}
			})
		}
	}
}

func TestPromptBuilder_Errors(t *testing.T) {
	builder := domain.NewPromptBuilder()

	t.Run("should fail with unknown command", func(t *testing.T) {
		prompt, err := builder.Build(domain.CommandRequest{Name: "dance", Params: nil})

		require.ErrorIs(t, err, domain.ErrUnknownCommand)
		require.Empty(t, prompt)
	})

	t.Run("should fail with unknown sub-action instead of an empty prompt", func(t *testing.T) {
		prompt, err := builder.Build(domain.CommandRequest{Name: "code", Params: map[string]string{
			"code":   "x := 1",
			"action": "format",
		}})

		require.ErrorIs(t, err, domain.ErrUnknownSubAction)
		require.Empty(t, prompt)
		require.Contains(t, err.Error(), "explain, debug, optimize")
	})

	t.Run("should fail on unknown creative type", func(t *testing.T) {
		_, err := builder.Build(domain.CommandRequest{Name: "creative", Params: map[string]string{
			"topic": "cats",
			"type":  "haiku",
		}})

		require.ErrorIs(t, err, domain.ErrUnknownSubAction)
	})

	t.Run("should treat sub-action values as case-sensitive", func(t *testing.T) {
		_, err := builder.Build(domain.CommandRequest{Name: "analyze", Params: map[string]string{
			"text": "hello",
			"type": "Sentiment",
		}})

		require.ErrorIs(t, err, domain.ErrUnknownSubAction)
	})

	t.Run("should fail when a required parameter is missing", func(t *testing.T) {
		_, err := builder.Build(domain.CommandRequest{Name: "translate", Params: map[string]string{
			"text": "hello",
		}})

		require.ErrorIs(t, err, domain.ErrMissingParameter)
		require.True(t, domain.IsValidationError(err))
	})

	t.Run("should fail when a required parameter is blank", func(t *testing.T) {
		_, err := builder.Build(domain.CommandRequest{Name: "ask", Params: map[string]string{"question": "   "}})

		require.ErrorIs(t, err, domain.ErrMissingParameter)
	})
}

func TestPromptBuilder_ValuesAreNotReinterpolated(t *testing.T) {
	builder := domain.NewPromptBuilder()

	prompt, err := builder.Build(domain.CommandRequest{Name: "translate", Params: map[string]string{
		"text":           "say {targetLanguage}",
		"targetLanguage": "French",
	}})

	require.NoError(t, err)
	require.Equal(t, "Translate to French: \"say {targetLanguage}\"", prompt)
}
