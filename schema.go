// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackfn

// FunctionSchema is a function definition in the shape OpenAI-compatible
// chat APIs accept in their "tools" list.
type FunctionSchema struct {
	Type     string       `json:"type"`
	Function FunctionSpec `json:"function"`
}

// FunctionSpec is the "function" member of a FunctionSchema.
type FunctionSpec struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Parameters  ObjectSchema `json:"parameters"`
}

// ObjectSchema is the JSON schema of a function's arguments object.
type ObjectSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

// PropertySchema is the JSON schema of a single argument. Type is a string,
// or a two element array ending in "null" for nullable parameters.
type PropertySchema struct {
	Type        interface{} `json:"type"`
	Description string      `json:"description,omitempty"`
}

// Schema renders d as a FunctionSchema. Nullable parameters get a
// ["<type>", "null"] type and, like every required parameter, are listed in
// Required.
func (d FunctionDefinition) Schema() FunctionSchema {
	obj := ObjectSchema{
		Type:       "object",
		Properties: make(map[string]PropertySchema, len(d.Parameters)),
		Required:   []string{},
	}

	for _, p := range d.Parameters {
		var typ interface{} = string(p.Type)
		if p.Nullable {
			typ = []string{string(p.Type), "null"}
		}

		obj.Properties[p.Name] = PropertySchema{Type: typ, Description: p.Description}

		if p.Required {
			obj.Required = append(obj.Required, p.Name)
		}
	}

	return FunctionSchema{
		Type: "function",
		Function: FunctionSpec{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  obj,
		},
	}
}

// Schemas returns the schema of every function, in Definitions order.
func Schemas() []FunctionSchema {
	defs := Definitions()
	out := make([]FunctionSchema, len(defs))

	for i, d := range defs {
		out[i] = d.Schema()
	}

	return out
}
