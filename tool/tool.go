package tool

import "context"

// Type is a JSON schema type name.
type Type string

const (
	TypeJson   Type = "object"
	TypeString Type = "string"
	TypeInt    Type = "integer"
	TypeNumber Type = "number"
	TypeBool   Type = "boolean"
	TypeArray  Type = "array"
)

// PropertySchema describes a single input property of a tool.
type PropertySchema struct {
	Type        Type   `json:"type"`
	Description string `json:"description,omitempty"`
}

// PropertiesSchema describes the JSON object a tool accepts as input.
type PropertiesSchema struct {
	Type       Type                      `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// Tool is a capability that can be registered with an agent.
// Call takes a JSON object matching Schema and returns a formatted
// string. User-facing problems (unknown city, malformed input) are
// returned as the result string with a nil error, so callers never
// need error handling around tool invocations.
type Tool interface {
	Name() string
	Description() string
	Schema() *PropertiesSchema
	Strict() bool
	Call(ctx context.Context, input string) (string, error)
}
