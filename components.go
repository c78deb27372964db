// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

// Components holds reusable objects keyed by component name.
type Components struct {
	Schemas         map[string]*SchemaNode
	Responses       map[string]*Response
	Parameters      map[string]*Parameter
	Examples        map[string]*Example
	RequestBodies   map[string]*RequestBody
	Headers         map[string]*Header
	SecuritySchemes map[string]*SecurityScheme
	Links           map[string]*Link
	Callbacks       map[string]*Callback
	PathItems       map[string]*PathItem
	Extensions      Extensions
}

// IsEmpty reports whether no component map holds an entry.
func (c *Components) IsEmpty() bool {
	if c == nil {
		return true
	}

	return len(c.Schemas)+len(c.Responses)+len(c.Parameters)+len(c.Examples)+
		len(c.RequestBodies)+len(c.Headers)+len(c.SecuritySchemes)+len(c.Links)+
		len(c.Callbacks)+len(c.PathItems) == 0
}

func (b *builder) components(raw map[string]any, path string) *Components {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Components", path, fields)

	return &Components{
		Schemas:         buildMap(r, "schemas", b.schema),
		Responses:       buildMap(r, "responses", b.response),
		Parameters:      buildMap(r, "parameters", b.parameter),
		Examples:        buildMap(r, "examples", b.example),
		RequestBodies:   buildMap(r, "requestBodies", b.requestBody),
		Headers:         buildMap(r, "headers", b.header),
		SecuritySchemes: buildMap(r, "securitySchemes", b.securityScheme),
		Links:           buildMap(r, "links", b.link),
		Callbacks:       buildMap(r, "callbacks", b.callback),
		PathItems:       buildMap(r, "pathItems", b.pathItem),
		Extensions:      extensions,
	}
}
