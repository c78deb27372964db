// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import "strings"

// Paths maps path templates such as "/pets/{id}" to their path items.
type Paths struct {
	Items      map[string]*PathItem
	Extensions Extensions
}

// Templates returns path templates in sorted order.
func (p *Paths) Templates() []string {
	if p == nil {
		return nil
	}

	return sortedKeys(p.Items)
}

// PathItem holds the operations available on one path.
type PathItem struct {
	Ref         *string
	Summary     *string
	Description *string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []*Parameter
	Extensions  Extensions
}

// MethodOperation pairs an HTTP method with its operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// UpperMethod returns the method in upper case.
func (m MethodOperation) UpperMethod() string {
	return strings.ToUpper(m.Method)
}

// Operations returns populated operations in get, put, post, delete, options,
// head, patch, trace order.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}

	candidates := []MethodOperation{
		{Method: "get", Operation: p.Get},
		{Method: "put", Operation: p.Put},
		{Method: "post", Operation: p.Post},
		{Method: "delete", Operation: p.Delete},
		{Method: "options", Operation: p.Options},
		{Method: "head", Operation: p.Head},
		{Method: "patch", Operation: p.Patch},
		{Method: "trace", Operation: p.Trace},
	}

	out := make([]MethodOperation, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Operation != nil {
			out = append(out, candidate)
		}
	}

	return out
}

// Operation is one API operation on a path.
type Operation struct {
	Tags         []string
	Summary      *string
	Description  *string
	ExternalDocs *ExternalDocs
	OperationID  *string
	Parameters   []*Parameter
	RequestBody  *RequestBody
	Responses    map[string]*Response
	Callbacks    map[string]*Callback
	Deprecated   *bool
	Security     []*SecurityRequirement
	Servers      []*Server
	Extensions   Extensions
}

// IsDeprecated reports the deprecated flag, false when absent.
func (o *Operation) IsDeprecated() bool {
	return o != nil && o.Deprecated != nil && *o.Deprecated
}

// HasSecurityOverride reports whether the operation declares its own
// security list; an empty list removes document-level security.
func (o *Operation) HasSecurityOverride() bool {
	return o != nil && o.Security != nil
}

// Callback is either a reference or one runtime expression with the path
// item that receives the callback request.
type Callback struct {
	Ref        *string
	Expression string
	PathItem   *PathItem
}

// IsEmpty reports whether neither an expression nor a reference was found.
func (c *Callback) IsEmpty() bool {
	return c == nil || (c.Ref == nil && c.PathItem == nil)
}

// paths builds the key-as-data Paths object.
func (b *builder) paths(raw map[string]any, path string) *Paths {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Paths", path, normalizePaths(fields))

	templates := r.object(shapePaths)
	for _, template := range sortedKeys(templates) {
		if !strings.HasPrefix(template, "/") {
			b.warn("path template does not start with a slash", childPath(path, template))
		}
	}

	return &Paths{
		Items:      buildEntries(r, shapePaths, templates, path, b.pathItem),
		Extensions: extensions,
	}
}

func (b *builder) pathItem(raw map[string]any, path string) *PathItem {
	extensions, fields := splitExtensions(raw)
	r := b.reader("PathItem", path, fields)

	return &PathItem{
		Ref:         r.str(refKey),
		Summary:     r.str("summary"),
		Description: r.str("description"),
		Get:         buildOne(r, "get", b.operation),
		Put:         buildOne(r, "put", b.operation),
		Post:        buildOne(r, "post", b.operation),
		Delete:      buildOne(r, "delete", b.operation),
		Options:     buildOne(r, "options", b.operation),
		Head:        buildOne(r, "head", b.operation),
		Patch:       buildOne(r, "patch", b.operation),
		Trace:       buildOne(r, "trace", b.operation),
		Servers:     buildList(r, "servers", b.server),
		Parameters:  buildList(r, "parameters", b.parameter),
		Extensions:  extensions,
	}
}

func (b *builder) operation(raw map[string]any, path string) *Operation {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Operation", path, fields)

	return &Operation{
		Tags:         r.stringList("tags"),
		Summary:      r.str("summary"),
		Description:  r.str("description"),
		ExternalDocs: buildOne(r, "externalDocs", b.externalDocs),
		OperationID:  r.str("operationId"),
		Parameters:   buildList(r, "parameters", b.parameter),
		RequestBody:  buildOne(r, "requestBody", b.requestBody),
		Responses:    b.responses(r),
		Callbacks:    buildMap(r, "callbacks", b.callback),
		Deprecated:   r.boolean("deprecated"),
		Security:     b.securityRequirements(r, "security"),
		Servers:      buildList(r, "servers", b.server),
		Extensions:   extensions,
	}
}

// responses builds the status code map of an operation. Extension keys of
// the Responses object are dropped.
func (b *builder) responses(r fieldReader) map[string]*Response {
	const key = "responses"

	object := r.object(key)
	if object == nil {
		return nil
	}

	_, codes := splitExtensions(object)
	return buildEntries(r, key, codes, r.child(key), b.response)
}

// callback reshapes a Callback object around its runtime expression key.
func (b *builder) callback(raw map[string]any, path string) *Callback {
	shaped, expressions := normalizeCallback(raw)
	r := b.reader("Callback", path, shaped)

	callback := &Callback{Ref: r.str(shapeRef)}
	expression := r.str(shapeExpression)
	if expression == nil {
		return callback
	}

	if expressions > 1 {
		b.warn("callback declares several expressions, keeping the last one", path,
			"expressions", expressions, "kept", *expression)
	}

	callback.Expression = *expression
	if item := r.object(shapePathItem); item != nil {
		callback.PathItem = b.pathItem(item, childPath(path, *expression))
	}

	return callback
}
