// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// schemaAttributes renders a flat attribute list for one schema node.
// Description, properties and nested member schemas are rendered by templates.
func schemaAttributes(schema *SchemaNode) []attributeView {
	if schema == nil {
		return nil
	}

	out := make([]attributeView, 0, 16)
	add := func(name, value string) {
		out = append(out, attributeView{Name: name, Value: value})
	}

	if schema.Ref != nil {
		add("Reference", schemaReference(schema))
	}

	if len(schema.Type) > 0 {
		add("Type", code(schema.Type.String()))
	}

	if schema.Format != nil {
		add("Format", code(*schema.Format))
	}

	if schema.Title != nil {
		add("Title", *schema.Title)
	}

	if schema.Default != nil {
		add("Default", code(schema.Default.JSON()))
	}

	if len(schema.Enum) > 0 {
		add("Enum", jsonList(schema.Enum))
	}

	if schema.Const != nil {
		add("Const", code(schema.Const.JSON()))
	}

	if schema.Example != nil {
		add("Example", code(schema.Example.JSON()))
	}

	if len(schema.Examples) > 0 {
		add("Examples", jsonList(schema.Examples))
	}

	for _, flag := range []struct {
		name  string
		value *bool
	}{
		{"Nullable", schema.Nullable},
		{"Read only", schema.ReadOnly},
		{"Write only", schema.WriteOnly},
		{"Deprecated", schema.Deprecated},
	} {
		if flag.value != nil {
			add(flag.name, yesNo(*flag.value))
		}
	}

	if schema.Items != nil {
		add("Items", summarizeSchema(schema.Items))
	}

	if schema.AdditionalProperties.IsSet() {
		add("Additional properties", additionalSummary(schema.AdditionalProperties))
	}

	if composition := compositionSummary(schema); composition != "" {
		add("Composition", composition)
	}

	if schema.Not != nil {
		add("Not", summarizeSchema(schema.Not))
	}

	if constraints := constraintList(schema); len(constraints) > 0 {
		add("Constraints", strings.Join(constraints, "; "))
	}

	if names := schema.Extensions.Names(); len(names) > 0 {
		add("Extensions", extensionList(schema.Extensions))
	}

	return out
}

// summarizeSchema provides compact AsciiDoc text for a schema used inline,
// for example in a property table cell.
func summarizeSchema(schema *SchemaNode) string {
	switch {
	case schema == nil:
		return "any"
	case schema.Ref != nil:
		return schemaReference(schema)
	case schema.Type.Primary() == "array" && schema.Items != nil:
		return "array of " + summarizeSchema(schema.Items)
	case len(schema.Type) > 0:
		text := code(schema.Type.String())
		if schema.Format != nil {
			text += " (" + *schema.Format + ")"
		}

		return text
	case schema.HasComposition():
		return compositionSummary(schema)
	case len(schema.Properties) > 0:
		return code("object")
	default:
		return "any"
	}
}

// componentAnchors maps components sections to the block ID prefix used by
// the components template.
var componentAnchors = map[string]string{
	"schemas":         "schema",
	"responses":       "response",
	"parameters":      "parameter",
	"examples":        "example",
	"requestBodies":   "request-body",
	"headers":         "header",
	"securitySchemes": "security-scheme",
	"links":           "link",
	"callbacks":       "callback",
	"pathItems":       "path-item",
}

// schemaReference renders the $ref of a schema.
func schemaReference(schema *SchemaNode) string {
	return referenceLink(schema.Ref)
}

// referenceLink renders a local components reference as a cross reference
// and any other pointer as literal text.
func referenceLink(value any) string {
	ref := strings.TrimSpace(toText(value))
	if ref == "" {
		return ""
	}

	parts := strings.Split(strings.TrimPrefix(ref, "#/components/"), "/")
	if strings.HasPrefix(ref, "#/components/") && len(parts) == 2 {
		if prefix, ok := componentAnchors[parts[0]]; ok {
			name := refName(ref)
			return fmt.Sprintf("<<%s,%s>>", anchorID(prefix, name), name)
		}
	}

	return code(ref)
}

// additionalSummary renders the tri-state additionalProperties keyword.
func additionalSummary(value AdditionalProperties) string {
	if schema := value.Schema(); schema != nil {
		return summarizeSchema(schema)
	}

	return yesNo(value.Allowed())
}

// compositionSummary renders one-line summary for allOf/anyOf/oneOf combinations.
func compositionSummary(schema *SchemaNode) string {
	items := make([]string, 0, 3)
	for _, group := range []struct {
		name    string
		members []*SchemaNode
	}{
		{"allOf", schema.AllOf},
		{"oneOf", schema.OneOf},
		{"anyOf", schema.AnyOf},
	} {
		if len(group.members) == 0 {
			continue
		}

		parts := make([]string, 0, len(group.members))
		for _, member := range group.members {
			parts = append(parts, summarizeSchema(member))
		}

		items = append(items, group.name+": "+strings.Join(parts, ", "))
	}

	return strings.Join(items, "; ")
}

// constraintList renders numeric and string constraints as deterministic key/value pairs.
func constraintList(schema *SchemaNode) []string {
	if schema == nil {
		return nil
	}

	out := make([]string, 0, 8)
	numbers := []struct {
		key   string
		value *Number
	}{
		{"minimum", schema.Minimum},
		{"maximum", schema.Maximum},
		{"multipleOf", schema.MultipleOf},
		{"minLength", schema.MinLength},
		{"maxLength", schema.MaxLength},
		{"minItems", schema.MinItems},
		{"maxItems", schema.MaxItems},
		{"minProperties", schema.MinProperties},
		{"maxProperties", schema.MaxProperties},
	}

	for _, item := range numbers {
		if item.value != nil {
			out = append(out, item.key+"="+item.value.String())
		}
	}

	if schema.ExclusiveMinimum != nil {
		out = append(out, "exclusiveMinimum="+schema.ExclusiveMinimum.String())
	}

	if schema.ExclusiveMaximum != nil {
		out = append(out, "exclusiveMaximum="+schema.ExclusiveMaximum.String())
	}

	if schema.Pattern != nil {
		out = append(out, "pattern="+code(*schema.Pattern))
	}

	if schema.UniqueItems != nil {
		out = append(out, "uniqueItems="+strconv.FormatBool(*schema.UniqueItems))
	}

	return out
}

// extensionList renders vendor extensions as name=value pairs.
func extensionList(extensions Extensions) string {
	parts := make([]string, 0, len(extensions))
	for _, name := range extensions.Names() {
		parts = append(parts, code(extensionPrefix+name+"="+mustJSONInline(extensions[name])))
	}

	return strings.Join(parts, ", ")
}

// code wraps text in an AsciiDoc literal monospace span. Table cells escape
// the result separately.
func code(text string) string {
	return "`+" + text + "+`"
}

// yesNo renders bool or *bool as "yes" or "no".
func yesNo(value any) string {
	switch typed := value.(type) {
	case bool:
		if typed {
			return "yes"
		}
	case *bool:
		if typed != nil && *typed {
			return "yes"
		}
	}

	return "no"
}

// jsonList renders JSON values list into comma-separated inline code tokens.
func jsonList(values []any) string {
	parts := make([]string, 0, len(values))
	for _, item := range values {
		parts = append(parts, code(mustJSONInline(item)))
	}

	return strings.Join(parts, ", ")
}
