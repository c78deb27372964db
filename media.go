// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

// MediaType is one entry of a content map. The wire field "schema" is held
// in SchemaObject.
type MediaType struct {
	Ref          *string
	SchemaObject *SchemaNode
	Example      *Value
	Examples     map[string]*Example
	Encoding     map[string]*Encoding
	Extensions   Extensions
}

// Encoding describes serialization of one multipart or form property.
type Encoding struct {
	Ref           *string
	ContentType   *string
	Headers       map[string]*Header
	Style         *string
	Explode       *bool
	AllowReserved *bool
	Extensions    Extensions
}

// Example is the Example Object.
type Example struct {
	Ref           *string
	Summary       *string
	Description   *string
	Value         *Value
	ExternalValue *string
	Extensions    Extensions
}

// Parameter is the Parameter Object. Name and In are required unless Ref is set.
type Parameter struct {
	Ref             *string
	Name            string
	In              string
	Description     *string
	Required        *bool
	Deprecated      *bool
	AllowEmptyValue *bool
	Style           *string
	Explode         *bool
	AllowReserved   *bool
	SchemaObject    *SchemaNode
	Example         *Value
	Examples        map[string]*Example
	Content         map[string]*MediaType
	Extensions      Extensions
}

// IsRequired reports the required flag, false when absent.
func (p *Parameter) IsRequired() bool {
	return p != nil && p.Required != nil && *p.Required
}

// Header is the Header Object: a Parameter without name and location.
type Header struct {
	Ref             *string
	Description     *string
	Required        *bool
	Deprecated      *bool
	AllowEmptyValue *bool
	Style           *string
	Explode         *bool
	AllowReserved   *bool
	SchemaObject    *SchemaNode
	Example         *Value
	Examples        map[string]*Example
	Content         map[string]*MediaType
	Extensions      Extensions
}

// Link is the Link Object. Parameters and RequestBody hold raw values or
// runtime expressions.
type Link struct {
	Ref          *string
	OperationRef *string
	OperationID  *string
	Parameters   map[string]any
	RequestBody  *Value
	Description  *string
	Server       *Server
	Extensions   Extensions
}

// Response is the Response Object.
type Response struct {
	Ref         *string
	Description *string
	Headers     map[string]*Header
	Content     map[string]*MediaType
	Links       map[string]*Link
	Extensions  Extensions
}

// RequestBody is the Request Body Object.
type RequestBody struct {
	Ref         *string
	Description *string
	Content     map[string]*MediaType
	Required    *bool
	Extensions  Extensions
}

func (b *builder) mediaType(raw map[string]any, path string) *MediaType {
	extensions, fields := splitExtensions(raw)
	r := b.reader("MediaType", path, fields)

	return &MediaType{
		Ref:          r.str(refKey),
		SchemaObject: buildOne(r, "schema", b.schema),
		Example:      r.optionalValue("example"),
		Examples:     buildMap(r, "examples", b.example),
		Encoding:     buildMap(r, "encoding", b.encoding),
		Extensions:   extensions,
	}
}

func (b *builder) encoding(raw map[string]any, path string) *Encoding {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Encoding", path, fields)

	return &Encoding{
		Ref:           r.str(refKey),
		ContentType:   r.str("contentType"),
		Headers:       buildMap(r, "headers", b.header),
		Style:         r.str("style"),
		Explode:       r.boolean("explode"),
		AllowReserved: r.boolean("allowReserved"),
		Extensions:    extensions,
	}
}

func (b *builder) example(raw map[string]any, path string) *Example {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Example", path, fields)

	return &Example{
		Ref:           r.str(refKey),
		Summary:       r.str("summary"),
		Description:   r.str("description"),
		Value:         r.optionalValue("value"),
		ExternalValue: r.str("externalValue"),
		Extensions:    extensions,
	}
}

func (b *builder) parameter(raw map[string]any, path string) *Parameter {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Parameter", path, fields)

	return &Parameter{
		Ref:             r.str(refKey),
		Name:            r.requiredUnlessRef("name"),
		In:              r.requiredUnlessRef("in"),
		Description:     r.str("description"),
		Required:        r.boolean("required"),
		Deprecated:      r.boolean("deprecated"),
		AllowEmptyValue: r.boolean("allowEmptyValue"),
		Style:           r.str("style"),
		Explode:         r.boolean("explode"),
		AllowReserved:   r.boolean("allowReserved"),
		SchemaObject:    buildOne(r, "schema", b.schema),
		Example:         r.optionalValue("example"),
		Examples:        buildMap(r, "examples", b.example),
		Content:         buildMap(r, "content", b.mediaType),
		Extensions:      extensions,
	}
}

func (b *builder) header(raw map[string]any, path string) *Header {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Header", path, fields)

	return &Header{
		Ref:             r.str(refKey),
		Description:     r.str("description"),
		Required:        r.boolean("required"),
		Deprecated:      r.boolean("deprecated"),
		AllowEmptyValue: r.boolean("allowEmptyValue"),
		Style:           r.str("style"),
		Explode:         r.boolean("explode"),
		AllowReserved:   r.boolean("allowReserved"),
		SchemaObject:    buildOne(r, "schema", b.schema),
		Example:         r.optionalValue("example"),
		Examples:        buildMap(r, "examples", b.example),
		Content:         buildMap(r, "content", b.mediaType),
		Extensions:      extensions,
	}
}

func (b *builder) link(raw map[string]any, path string) *Link {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Link", path, fields)

	return &Link{
		Ref:          r.str(refKey),
		OperationRef: r.str("operationRef"),
		OperationID:  r.str("operationId"),
		Parameters:   r.object("parameters"),
		RequestBody:  r.optionalValue("requestBody"),
		Description:  r.str("description"),
		Server:       buildOne(r, "server", b.server),
		Extensions:   extensions,
	}
}

func (b *builder) response(raw map[string]any, path string) *Response {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Response", path, fields)

	return &Response{
		Ref:         r.str(refKey),
		Description: r.str("description"),
		Headers:     buildMap(r, "headers", b.header),
		Content:     buildMap(r, "content", b.mediaType),
		Links:       buildMap(r, "links", b.link),
		Extensions:  extensions,
	}
}

func (b *builder) requestBody(raw map[string]any, path string) *RequestBody {
	extensions, fields := splitExtensions(raw)
	r := b.reader("RequestBody", path, fields)

	return &RequestBody{
		Ref:         r.str(refKey),
		Description: r.str("description"),
		Content:     buildMap(r, "content", b.mediaType),
		Required:    r.boolean("required"),
		Extensions:  extensions,
	}
}
