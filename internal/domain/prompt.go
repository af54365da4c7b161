package domain

import (
	"fmt"
	"strings"
)

// ParamSpec describes one named string parameter of a command.
type ParamSpec struct {
	Name        string
	Description string
	// Choices is non-empty for sub-action discriminators; it is a closed enumeration.
	Choices []string
}

// CommandSpec describes one supported command: its schema and its prompt templates.
type CommandSpec struct {
	Name        string
	Description string
	Params      []ParamSpec

	// SubAction names the discriminator parameter, empty when the command has one template.
	SubAction string

	// Templates maps a sub-action value to its template. Commands without a
	// sub-action keep their single template under the empty key.
	Templates map[string]string
}

// Choices returns the allowed values of the sub-action parameter in declaration order.
func (c CommandSpec) Choices() []string {
	for _, p := range c.Params {
		if p.Name == c.SubAction {
			return p.Choices
		}
	}
	return nil
}

const codeFence = "```"

// commandTable is the static dispatch table. Templates reference parameters as {name};
// values are substituted verbatim and never re-scanned.
//
//nolint:gochecknoglobals // read-only after init
var commandTable = []CommandSpec{
	{
		Name:        "ask",
		Description: "Ask the AI anything",
		Params: []ParamSpec{
			{Name: "question", Description: "Your question"},
		},
		Templates: map[string]string{
			"": "Answer helpfully and friendly: {question}",
		},
	},
	{
		Name:        "translate",
		Description: "Translate text into another language",
		Params: []ParamSpec{
			{Name: "text", Description: "Text to translate"},
			{Name: "targetLanguage", Description: "Language to translate into"},
		},
		Templates: map[string]string{
			"": "Translate to {targetLanguage}: \"{text}\"",
		},
	},
	{
		Name:        "summarize",
		Description: "Summarize a piece of text",
		Params: []ParamSpec{
			{Name: "text", Description: "Text to summarize"},
		},
		Templates: map[string]string{
			"": "Summarize concisely: {text}",
		},
	},
	{
		Name:        "code",
		Description: "Explain, debug or optimize code",
		Params: []ParamSpec{
			{Name: "code", Description: "The code snippet"},
			{Name: "action", Description: "What to do with the code", Choices: []string{"explain", "debug", "optimize"}},
		},
		SubAction: "action",
		Templates: map[string]string{
			"explain":  "Explain what the following code does, step by step:\n" + codeFence + "\n{code}\n" + codeFence,
			"debug":    "Find the bugs in the following code and show a fixed version:\n" + codeFence + "\n{code}\n" + codeFence,
			"optimize": "Optimize the following code and explain each improvement:\n" + codeFence + "\n{code}\n" + codeFence,
		},
	},
	{
		Name:        "creative",
		Description: "Generate creative writing",
		Params: []ParamSpec{
			{Name: "topic", Description: "What to write about"},
			{Name: "type", Description: "Kind of text", Choices: []string{"poem", "story", "email", "article"}},
		},
		SubAction: "type",
		Templates: map[string]string{
			"poem":    "Write a poem about: {topic}",
			"story":   "Write a short story about: {topic}",
			"email":   "Write a professional email about: {topic}",
			"article": "Write a well-structured article about: {topic}",
		},
	},
	{
		Name:        "analyze",
		Description: "Analyze a piece of text",
		Params: []ParamSpec{
			{Name: "text", Description: "Text to analyze"},
			{Name: "type", Description: "Kind of analysis", Choices: []string{"sentiment", "keywords", "topic"}},
		},
		SubAction: "type",
		Templates: map[string]string{
			"sentiment": "Analyze the sentiment (positive, negative or neutral) of the following text and explain why: {text}",
			"keywords":  "Extract the most important keywords from the following text: {text}",
			"topic":     "Identify the main topic of the following text: {text}",
		},
	},
}

// Catalog returns the static command schema in registration order.
// The builder and the transport registrar share it, so they cannot drift apart.
func Catalog() []CommandSpec {
	out := make([]CommandSpec, len(commandTable))
	copy(out, commandTable)
	return out
}

// PromptBuilder maps a CommandRequest to exactly one prompt string.
type PromptBuilder struct {
	commands map[string]CommandSpec
}

// NewPromptBuilder creates a prompt builder over the static dispatch table.
func NewPromptBuilder() *PromptBuilder {
	commands := make(map[string]CommandSpec, len(commandTable))
	for _, spec := range commandTable {
		commands[spec.Name] = spec
	}

	return &PromptBuilder{
		commands: commands,
	}
}

// Build produces the prompt for req. It fails with ErrUnknownCommand, ErrMissingParameter
// or ErrUnknownSubAction; it never returns an empty prompt.
func (b *PromptBuilder) Build(req CommandRequest) (string, error) {
	spec, ok := b.commands[req.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, req.Name)
	}

	pairs := make([]string, 0, len(spec.Params)*2)
	for _, p := range spec.Params {
		value := req.Param(p.Name)
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("%w: %s requires %q", ErrMissingParameter, spec.Name, p.Name)
		}
		pairs = append(pairs, "{"+p.Name+"}", value)
	}

	var key string
	if spec.SubAction != "" {
		key = req.Param(spec.SubAction)
	}

	template, ok := spec.Templates[key]
	if !ok {
		return "", fmt.Errorf("%w: %s %s %q (expected one of %s)",
			ErrUnknownSubAction, spec.Name, spec.SubAction, key, strings.Join(spec.Choices(), ", "))
	}

	return strings.NewReplacer(pairs...).Replace(template), nil
}
