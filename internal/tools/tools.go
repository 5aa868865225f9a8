package tools

import (
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

// Spec captures a single callable tool/function exposed to the agent.
// JSONSchema must be a valid JSON Schema object encoded as raw JSON.
type Spec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	JSONSchema  json.RawMessage `json:"json_schema"`
}

// EncodeTools converts Spec entries into an OpenAI-compatible tools array
// so the surface can be handed to any OpenAI-style agent runtime.
func EncodeTools(specs []Spec) []openai.Tool {
	out := make([]openai.Tool, 0, len(specs))
	for _, s := range specs {
		out = append(out, openai.Tool{
			Type: "function",
			Function: &openai.FunctionDefinition{
				Name:        s.Name,
				Description: s.Description,
				Parameters:  s.JSONSchema,
			},
		})
	}
	return out
}
