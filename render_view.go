// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// propertyView represents one property row of a schema properties table.
type propertyView struct {
	Name     string
	Required bool
	Schema   *SchemaNode
}

// Nested reports whether the property schema deserves its own block below
// the table: inline objects, compositions and arrays of inline objects.
func (p propertyView) Nested() bool {
	return hasInlineStructure(p.Schema)
}

// hasInlineStructure reports whether schema carries structure beyond a one-line summary.
func hasInlineStructure(schema *SchemaNode) bool {
	switch {
	case schema == nil, schema.Ref != nil:
		return false
	case len(schema.Properties) > 0, schema.HasComposition():
		return true
	case schema.Items != nil:
		return hasInlineStructure(schema.Items)
	default:
		return schema.AdditionalProperties.Schema() != nil
	}
}

// schemaProperties lists properties in render order, required first.
func schemaProperties(schema *SchemaNode) []propertyView {
	if schema == nil {
		return nil
	}

	order := propertyOrder(schema.Required, schema.Properties)
	out := make([]propertyView, 0, len(order))
	for _, name := range order {
		out = append(out, propertyView{
			Name:     name,
			Required: schema.IsRequired(name),
			Schema:   schema.Properties[name],
		})
	}

	return out
}

// propertyOrder returns required properties first in declared order, then
// the remaining ones sorted.
func propertyOrder[V any](required []string, properties map[string]V) []string {
	if len(properties) == 0 {
		return nil
	}

	out := make([]string, 0, len(properties))
	seen := make(map[string]struct{}, len(properties))

	for _, name := range required {
		if _, ok := properties[name]; !ok {
			continue
		}

		if _, exists := seen[name]; exists {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	optional := make([]string, 0, len(properties))
	for name := range properties {
		if _, exists := seen[name]; exists {
			continue
		}

		optional = append(optional, name)
	}

	sort.Strings(optional)
	return append(out, optional...)
}

// operationAnchor builds the block ID of one operation from its operationId,
// or returns "" when the operation has none.
func operationAnchor(item MethodOperation) string {
	if item.Operation == nil || item.Operation.OperationID == nil {
		return ""
	}

	return anchorID("operation", *item.Operation.OperationID)
}

// field renders "label `value`" or "" when value is absent.
func field(label string, value any) string {
	text := toText(value)
	if text == "" {
		return ""
	}

	return label + " " + code(text)
}

// joinText joins the non-empty text forms of values with sep.
func joinText(sep string, values ...any) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if text := strings.TrimSpace(toText(value)); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, sep)
}

// isTrue reports whether value is true or points to true.
func isTrue(value any) bool {
	return yesNo(value) == "yes"
}

// toText converts the scalar shapes stored in nodes to plain text.
func toText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case *string:
		return derefString(typed)
	case bool:
		return strconv.FormatBool(typed)
	case *bool:
		if typed == nil {
			return ""
		}

		return strconv.FormatBool(*typed)
	case Number:
		return typed.String()
	case *Number:
		if typed == nil {
			return ""
		}

		return typed.String()
	case *Value:
		return typed.JSON()
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
