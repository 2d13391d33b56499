// Package validator provides interfaces and types for JSON Schema validation.
package validator

// A JSONDocument is a valid parsed JSON document - i.e. the result of json.Unmarshal().
// YAML documents decoded into plain Go values satisfy it too.
type JSONDocument interface{}

// A JSONSchema is a valid parsed JSON document representing a JSON Schema.
// A Compiler must compile the JSONSchema before use, which surfaces any schema issues.
type JSONSchema JSONDocument

// Validator represents something which can be used to validate a JSON document.
type Validator interface {
	// Validate validates a JSON document.
	Validate(v JSONDocument) error
}

// Compiler defines a JSON Schema compiler. Schemas are registered under an ID
// first and compiled by that ID.
type Compiler interface {
	// AddSchema registers a JSONSchema with the compiler.
	AddSchema(id string, data JSONSchema) error

	// Compile creates a Validator from the JSONSchema previously added with the given ID.
	Compile(id string) (Validator, error)
}
