package tools

import (
	"context"
	"encoding/json"
)

// Reader is the application operation behind the tool surface.
// LatestArticle never fails: failures come back as plain-language text the
// agent can relay.
type Reader interface {
	LatestArticle(ctx context.Context) string
}

// LatestArticleTool is the stable name of the single externally callable
// operation.
const LatestArticleTool = "get_latest_article"

// NewReaderRegistry builds the tool surface. It registers exactly one
// tool, get_latest_article, which takes no arguments and returns either the
// formatted article document or a failure message.
func NewReaderRegistry(reader Reader) (*Registry, error) {
	r := NewRegistry()
	schema := json.RawMessage(`{
        "type":"object",
        "properties":{},
        "additionalProperties":false
    }`)
	err := r.Register(Definition{
		StableName:  LatestArticleTool,
		SemVer:      "v1.0.0",
		Description: "Fetch the latest post from the publication and return it as plain text",
		JSONSchema:  schema,
		Handler: func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
			out := struct {
				Article string `json:"article"`
			}{Article: reader.LatestArticle(ctx)}
			return json.Marshal(out)
		},
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
