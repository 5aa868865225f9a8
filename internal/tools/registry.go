package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// Handler executes a tool with raw JSON arguments and returns a raw JSON
// result or an error. Errors must be safe to surface into an agent
// transcript.
type Handler func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)

// Definition describes a callable tool with a stable identity.
// StableName must be lowercase snake_case and never change across versions;
// SemVer is bumped when behavior changes.
type Definition struct {
	StableName  string
	SemVer      string
	Description string
	JSONSchema  json.RawMessage
	Handler     Handler
}

// Registry holds the available tools keyed by stable name.
type Registry struct {
	nameToDef map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{nameToDef: make(map[string]Definition)}
}

var (
	nameRe   = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	semverRe = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)
)

// Register adds or replaces a tool definition by stable name after
// validating name, version, schema shape, and handler presence.
func (r *Registry) Register(def Definition) error {
	if def.StableName == "" || !nameRe.MatchString(def.StableName) {
		return fmt.Errorf("invalid stable name %q: must be lowercase snake_case starting with a letter", def.StableName)
	}
	if def.SemVer == "" || !semverRe.MatchString(def.SemVer) {
		return fmt.Errorf("invalid semver %q: must follow semantic versioning", def.SemVer)
	}
	if len(def.JSONSchema) == 0 || !isJSONObject(def.JSONSchema) {
		return errors.New("json schema must be a non-empty JSON object")
	}
	if def.Handler == nil {
		return errors.New("handler must not be nil")
	}
	if r.nameToDef == nil {
		r.nameToDef = make(map[string]Definition)
	}
	r.nameToDef[def.StableName] = def
	return nil
}

// Get returns a tool definition by stable name if present.
func (r *Registry) Get(stableName string) (Definition, bool) {
	def, ok := r.nameToDef[stableName]
	return def, ok
}

// Specs returns the registered tools as specs in deterministic order
// (sorted by stable name).
func (r *Registry) Specs() []Spec {
	names := make([]string, 0, len(r.nameToDef))
	for name := range r.nameToDef {
		names = append(names, name)
	}
	sort.Strings(names)
	specs := make([]Spec, 0, len(names))
	for _, name := range names {
		def := r.nameToDef[name]
		description := def.Description
		if def.SemVer != "" {
			description = fmt.Sprintf("%s (version %s)", description, def.SemVer)
		}
		specs = append(specs, Spec{
			Name:        def.StableName,
			Description: description,
			JSONSchema:  def.JSONSchema,
		})
	}
	return specs
}

// isJSONObject returns true if the raw JSON represents a JSON object.
func isJSONObject(raw json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	_, ok := v.(map[string]interface{})
	return ok
}
