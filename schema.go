// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Value is an arbitrary JSON value carried verbatim. A nil *Value means the
// field was absent, while a Value with nil Raw is an explicit JSON null.
type Value struct {
	Raw any
}

// JSON renders the value as single-line JSON.
func (v *Value) JSON() string {
	if v == nil {
		return ""
	}

	return mustJSONInline(v.Raw)
}

// SchemaType is the "type" keyword: one name, or several in OAS 3.1 documents.
type SchemaType []string

// String joins type names with " | ".
func (t SchemaType) String() string {
	return strings.Join(t, " | ")
}

// Includes reports whether name is one of the declared types.
func (t SchemaType) Includes(name string) bool {
	return slices.Contains(t, name)
}

// Primary returns the first non-null type name.
func (t SchemaType) Primary() string {
	for _, name := range t {
		if name != "null" {
			return name
		}
	}

	if len(t) > 0 {
		return t[0]
	}

	return ""
}

// ExclusiveBound is exclusiveMinimum/exclusiveMaximum: the OAS 3.0 boolean
// modifier or the OAS 3.1 numeric bound. Exactly one field is set.
type ExclusiveBound struct {
	Flag  *bool
	Value *Number
}

// String renders the bound for display.
func (b *ExclusiveBound) String() string {
	switch {
	case b == nil:
		return ""
	case b.Flag != nil:
		return fmt.Sprint(*b.Flag)
	case b.Value != nil:
		return b.Value.String()
	default:
		return ""
	}
}

// additionalMode tags the state of additionalProperties.
type additionalMode uint8

const (
	additionalUnset additionalMode = iota
	additionalBool
	additionalSchema
)

// AdditionalProperties is the tri-state additionalProperties keyword:
// unset, a boolean flag, or a constraining schema.
type AdditionalProperties struct {
	mode   additionalMode
	allow  bool
	schema *SchemaNode
}

// AdditionalAllowed returns the boolean form of additionalProperties.
func AdditionalAllowed(allow bool) AdditionalProperties {
	return AdditionalProperties{mode: additionalBool, allow: allow}
}

// AdditionalSchema returns the schema form of additionalProperties.
func AdditionalSchema(schema *SchemaNode) AdditionalProperties {
	return AdditionalProperties{mode: additionalSchema, allow: true, schema: schema}
}

// IsSet reports whether the keyword was present.
func (a AdditionalProperties) IsSet() bool {
	return a.mode != additionalUnset
}

// IsBool reports whether the keyword holds a boolean.
func (a AdditionalProperties) IsBool() bool {
	return a.mode == additionalBool
}

// Allowed reports whether extra properties are permitted: true for the
// boolean true, for a schema, and for the unset keyword.
func (a AdditionalProperties) Allowed() bool {
	return a.mode == additionalUnset || a.allow
}

// Schema returns the constraining schema or nil.
func (a AdditionalProperties) Schema() *SchemaNode {
	return a.schema
}

// SchemaNode is the recursive Schema Object. Children built from one document
// form a tree; a $ref is carried in Ref and never followed.
type SchemaNode struct {
	Ref         *string
	Title       *string
	Description *string
	Type        SchemaType
	Format      *string

	MultipleOf       *Number
	Maximum          *Number
	ExclusiveMaximum *ExclusiveBound
	Minimum          *Number
	ExclusiveMinimum *ExclusiveBound
	MaxLength        *Number
	MinLength        *Number
	Pattern          *string
	MaxItems         *Number
	MinItems         *Number
	UniqueItems      *bool
	MaxProperties    *Number
	MinProperties    *Number
	Required         []string
	Enum             []any
	Const            *Value

	AllOf                []*SchemaNode
	OneOf                []*SchemaNode
	AnyOf                []*SchemaNode
	Not                  *SchemaNode
	Items                *SchemaNode
	Properties           map[string]*SchemaNode
	AdditionalProperties AdditionalProperties

	Default       *Value
	Nullable      *bool
	ReadOnly      *bool
	WriteOnly     *bool
	Deprecated    *bool
	Example       *Value
	Examples      []any
	ExternalDocs  *ExternalDocs
	XML           *XML
	Discriminator *Discriminator
	Extensions    Extensions
}

// RefName returns the last segment of the reference pointer, or "".
func (s *SchemaNode) RefName() string {
	if s == nil || s.Ref == nil {
		return ""
	}

	return refName(*s.Ref)
}

// IsRequired reports whether property name is listed in required.
func (s *SchemaNode) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// PropertyNames returns required properties first, in declared order, then
// the optional ones sorted.
func (s *SchemaNode) PropertyNames() []string {
	if s == nil {
		return nil
	}

	return propertyOrder(s.Required, s.Properties)
}

// HasComposition reports whether allOf, oneOf or anyOf is present.
func (s *SchemaNode) HasComposition() bool {
	return s != nil && (len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0)
}

// XML is the XML Object of a schema.
type XML struct {
	Name       *string
	Namespace  *string
	Prefix     *string
	Attribute  *bool
	Wrapped    *bool
	Extensions Extensions
}

// Discriminator is the Discriminator Object of a schema.
type Discriminator struct {
	PropertyName *string
	Mapping      map[string]string
	Extensions   Extensions
}

// refName extracts the trailing component name of a reference pointer.
func refName(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	index := strings.LastIndex(ref, "/")
	if index < 0 {
		return ref
	}

	name := ref[index+1:]
	name = strings.ReplaceAll(name, "~1", "/")
	return strings.ReplaceAll(name, "~0", "~")
}

// schema builds a SchemaNode depth first.
func (b *builder) schema(raw map[string]any, path string) *SchemaNode {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Schema", path, fields)

	return &SchemaNode{
		Ref:         r.str(refKey),
		Title:       r.str("title"),
		Description: r.str("description"),
		Type:        r.schemaType("type"),
		Format:      r.str("format"),

		MultipleOf:       r.number("multipleOf"),
		Maximum:          r.number("maximum"),
		ExclusiveMaximum: r.exclusiveBound("exclusiveMaximum"),
		Minimum:          r.number("minimum"),
		ExclusiveMinimum: r.exclusiveBound("exclusiveMinimum"),
		MaxLength:        r.integer("maxLength"),
		MinLength:        r.integer("minLength"),
		Pattern:          r.str("pattern"),
		MaxItems:         r.integer("maxItems"),
		MinItems:         r.integer("minItems"),
		UniqueItems:      r.boolean("uniqueItems"),
		MaxProperties:    r.integer("maxProperties"),
		MinProperties:    r.integer("minProperties"),
		Required:         r.stringList("required"),
		Enum:             r.list("enum"),
		Const:            r.optionalValue("const"),

		AllOf:                buildList(r, "allOf", b.schema),
		OneOf:                buildList(r, "oneOf", b.schema),
		AnyOf:                buildList(r, "anyOf", b.schema),
		Not:                  buildOne(r, "not", b.schema),
		Items:                buildOne(r, "items", b.schema),
		Properties:           buildMap(r, "properties", b.schema),
		AdditionalProperties: b.additionalProperties(r),

		Default:       r.optionalValue("default"),
		Nullable:      r.boolean("nullable"),
		ReadOnly:      r.boolean("readOnly"),
		WriteOnly:     r.boolean("writeOnly"),
		Deprecated:    r.boolean("deprecated"),
		Example:       r.optionalValue("example"),
		Examples:      r.list("examples"),
		ExternalDocs:  buildOne(r, "externalDocs", b.externalDocs),
		XML:           buildOne(r, "xml", b.xml),
		Discriminator: buildOne(r, "discriminator", b.discriminator),
		Extensions:    extensions,
	}
}

// additionalProperties reads the boolean-or-schema keyword.
func (b *builder) additionalProperties(r fieldReader) AdditionalProperties {
	const key = "additionalProperties"

	value, ok := r.value(key)
	if !ok {
		return AdditionalProperties{}
	}

	switch typed := value.(type) {
	case bool:
		return AdditionalAllowed(typed)
	case map[string]any:
		return AdditionalSchema(b.schema(typed, r.child(key)))
	default:
		r.typeIssue(key, "a boolean or an object", value)
		return AdditionalProperties{}
	}
}

// schemaType reads "type" as a single name or a list of names.
func (r fieldReader) schemaType(key string) SchemaType {
	value, ok := r.value(key)
	if !ok {
		return nil
	}

	switch typed := value.(type) {
	case string:
		return SchemaType{typed}
	case []any:
		names := r.stringList(key)
		if len(names) == 0 {
			r.issue(key, IssueConstraint, "type list must not be empty")
			return nil
		}

		return SchemaType(names)
	default:
		r.typeIssue(key, "a string or an array of strings", typed)
		return nil
	}
}

// exclusiveBound reads exclusiveMinimum/exclusiveMaximum in either OAS form.
func (r fieldReader) exclusiveBound(key string) *ExclusiveBound {
	value, ok := r.value(key)
	if !ok {
		return nil
	}

	switch typed := value.(type) {
	case bool:
		return &ExclusiveBound{Flag: &typed}
	case json.Number:
		number := Number{literal: typed}
		return &ExclusiveBound{Value: &number}
	default:
		r.typeIssue(key, "a boolean or a number", value)
		return nil
	}
}

// optionalValue wraps any present JSON value, null included.
func (r fieldReader) optionalValue(key string) *Value {
	value, ok := r.value(key)
	if !ok {
		return nil
	}

	return &Value{Raw: value}
}

// xml builds an XML object.
func (b *builder) xml(raw map[string]any, path string) *XML {
	extensions, fields := splitExtensions(raw)
	r := b.reader("XML", path, fields)

	return &XML{
		Name:       r.str("name"),
		Namespace:  r.str("namespace"),
		Prefix:     r.str("prefix"),
		Attribute:  r.boolean("attribute"),
		Wrapped:    r.boolean("wrapped"),
		Extensions: extensions,
	}
}

// discriminator builds a Discriminator object.
func (b *builder) discriminator(raw map[string]any, path string) *Discriminator {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Discriminator", path, fields)

	return &Discriminator{
		PropertyName: r.str("propertyName"),
		Mapping:      r.stringMap("mapping"),
		Extensions:   extensions,
	}
}
