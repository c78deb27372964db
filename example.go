// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all declared properties.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation property coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated example payload.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback values for scalar schema types.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"number":  json.Number("0.0"),
	"integer": json.Number("0"),
	"boolean": false,
	"null":    nil,
}

// exampleBuilder converts a schema graph into example values.
type exampleBuilder struct {
	mode ExampleMode
}

// GenerateExample builds an example payload for schema. References are not
// followed: a $ref schema yields a "<Name>" placeholder string.
func GenerateExample(schema *SchemaNode, mode ExampleMode) (any, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := exampleBuilder{mode: mode}
	return builder.buildNode(schema), nil
}

// EncodeExample encodes a generated payload as pretty JSON or YAML.
func EncodeExample(value any, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case ExampleFormatYAML:
		var node *yaml.Node
		node, err = yamlNodeForValue(value)
		if err == nil {
			data, err = marshalExampleYAMLNode(node)
		}
	default:
		data, err = marshalExampleJSON(value)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
	}

	return data, nil
}

// SchemaExample generates and encodes an example for schema in one step.
// YAML output carries property titles and descriptions as key comments.
func SchemaExample(schema *SchemaNode, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	value, err := GenerateExample(schema, mode)
	if err != nil {
		return nil, err
	}

	format, err = normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	if format == ExampleFormatJSON {
		return EncodeExample(value, format)
	}

	rootNode, err := yamlNodeForValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
	}

	builder := exampleBuilder{mode: ExampleModeAll}
	builder.annotateYAMLNode(rootNode, schema)

	data, err := marshalExampleYAMLNode(rootNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
	}

	return data, nil
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case "":
		return ExampleModeAll, nil
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return ExampleFormatJSON, nil
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	case "yml":
		return ExampleFormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// buildNode recursively builds example value for one schema node.
func (builder *exampleBuilder) buildNode(schema *SchemaNode) any {
	if schema == nil {
		return nil
	}

	if schema.Ref != nil {
		return referencePlaceholder(schema)
	}

	schemaType := schema.Type.Primary()
	properties, required := builder.collectObjectShape(schema)

	if schemaType == "object" || len(properties) > 0 || len(required) > 0 {
		if value, ok := explicitExampleValue(schema); ok {
			if object, ok := value.(map[string]any); ok {
				return cloneJSONValue(object)
			}
		}

		return builder.buildObjectFromShape(properties, required)
	}

	if schemaType == "array" || schema.Items != nil {
		return builder.buildArray(schema)
	}

	if value, ok := explicitExampleValue(schema); ok {
		return cloneJSONValue(value)
	}

	if schema.Const != nil {
		return cloneJSONValue(schema.Const.Raw)
	}

	if len(schema.Enum) > 0 {
		return cloneJSONValue(schema.Enum[0])
	}

	if value, ok := builder.buildCompositionFallback(schema); ok {
		return value
	}

	return scalarPlaceholder(schemaType, schema.Format)
}

// buildObjectFromShape materializes object value from collected property shape.
func (builder *exampleBuilder) buildObjectFromShape(properties map[string]*SchemaNode, required []string) map[string]any {
	out := make(map[string]any)
	if len(properties) == 0 {
		return out
	}

	order := propertyOrder(required, properties)
	if builder.mode == ExampleModeRequired {
		order = requiredPropertyOrder(required, properties)
	}

	for _, key := range order {
		out[key] = builder.buildNode(properties[key])
	}

	return out
}

// buildArray materializes an array value from explicit values or items.
func (builder *exampleBuilder) buildArray(schema *SchemaNode) []any {
	if value, ok := explicitExampleValue(schema); ok {
		if items, ok := value.([]any); ok {
			return cloneJSONValue(items).([]any)
		}
	}

	if schema.Const != nil {
		if items, ok := schema.Const.Raw.([]any); ok {
			return cloneJSONValue(items).([]any)
		}
	}

	if schema.Items != nil {
		return []any{builder.buildNode(schema.Items)}
	}

	return []any{}
}

// collectObjectShape returns merged object properties and required keys,
// folding in allOf members. Referenced members contribute nothing.
func (builder *exampleBuilder) collectObjectShape(schema *SchemaNode) (map[string]*SchemaNode, []string) {
	if schema == nil || schema.Ref != nil {
		return nil, nil
	}

	properties := schema.Properties
	required := schema.Required
	for _, member := range schema.AllOf {
		nestedProperties, nestedRequired := builder.collectObjectShape(member)
		properties = mergePropertySchemas(properties, nestedProperties)
		required = mergeRequiredKeys(required, nestedRequired)
	}

	return properties, required
}

// mergePropertySchemas merges schema property maps while preserving existing keys.
func mergePropertySchemas(left, right map[string]*SchemaNode) map[string]*SchemaNode {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}

	out := make(map[string]*SchemaNode, len(left)+len(right))
	maps.Copy(out, left)

	for key, value := range right {
		if _, exists := out[key]; exists {
			continue
		}

		out[key] = value
	}

	return out
}

// mergeRequiredKeys appends unique required keys while preserving first-seen order.
func mergeRequiredKeys(left, right []string) []string {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))

	for _, key := range append(append([]string(nil), left...), right...) {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

// requiredPropertyOrder returns deterministic order for required properties only.
func requiredPropertyOrder(required []string, properties map[string]*SchemaNode) []string {
	if len(required) == 0 || len(properties) == 0 {
		return nil
	}

	out := make([]string, 0, len(required))
	seen := make(map[string]struct{}, len(required))
	for _, key := range required {
		if _, exists := properties[key]; !exists {
			continue
		}

		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

// buildCompositionFallback builds value from first schema of oneOf/anyOf/allOf.
func (builder *exampleBuilder) buildCompositionFallback(schema *SchemaNode) (any, bool) {
	for _, members := range [][]*SchemaNode{schema.OneOf, schema.AnyOf, schema.AllOf} {
		if len(members) > 0 {
			return builder.buildNode(members[0]), true
		}
	}

	return nil, false
}

// explicitExampleValue returns preferred explicit example value: default,
// then examples[0], then example.
func explicitExampleValue(schema *SchemaNode) (any, bool) {
	if schema.Default != nil {
		return schema.Default.Raw, true
	}

	if len(schema.Examples) > 0 {
		return schema.Examples[0], true
	}

	if schema.Example != nil {
		return schema.Example.Raw, true
	}

	return nil, false
}

// scalarPlaceholder returns fallback placeholder for scalar schema types.
func scalarPlaceholder(schemaType string, format *string) any {
	if schemaType == "string" && format != nil && strings.TrimSpace(*format) != "" {
		return "<" + strings.TrimSpace(*format) + ">"
	}

	return exampleScalarPlaceholders[schemaType]
}

// referencePlaceholder names the referenced component instead of expanding it.
func referencePlaceholder(schema *SchemaNode) string {
	name := schema.RefName()
	if name == "" {
		name = "ref"
	}

	return "<" + name + ">"
}

// cloneJSONValue deep-copies maps and slices used as generated payload values.
func cloneJSONValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = cloneJSONValue(item)
		}

		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, cloneJSONValue(item))
		}

		return out
	default:
		return typed
	}
}

// marshalExampleJSON serializes example payload as pretty JSON.
func marshalExampleJSON(value any) ([]byte, error) {
	data, err := jsonAPI.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

// marshalExampleYAMLNode serializes example payload as YAML.
func marshalExampleYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// annotateYAMLNode assigns schema title/description comments to YAML map keys.
func (builder *exampleBuilder) annotateYAMLNode(node *yaml.Node, schema *SchemaNode) {
	if node == nil || schema == nil {
		return
	}

	switch node.Kind {
	case yaml.MappingNode:
		properties, _ := builder.collectObjectShape(schema)
		for index := 0; index+1 < len(node.Content); index += 2 {
			keyNode := node.Content[index]
			valueNode := node.Content[index+1]

			property, ok := properties[keyNode.Value]
			if !ok {
				continue
			}

			if comment := schemaKeyComment(property); comment != "" {
				keyNode.HeadComment = comment
			}

			builder.annotateYAMLNode(valueNode, property)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			builder.annotateYAMLNode(item, schema.Items)
		}
	}
}

// schemaKeyComment builds YAML key comment from schema title and description.
func schemaKeyComment(schema *SchemaNode) string {
	title := strings.TrimSpace(derefString(schema.Title))
	description := strings.TrimSpace(derefString(schema.Description))

	switch {
	case title == "" && description == "":
		return ""
	case title == "":
		return normalizeYAMLComment(description)
	case description == "" || title == description:
		return normalizeYAMLComment(title)
	default:
		return normalizeYAMLComment(title + "\n" + description)
	}
}

// normalizeYAMLComment drops blank lines from comment body.
func normalizeYAMLComment(comment string) string {
	lines := strings.Split(normalizeLineEndings(comment), "\n")
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		normalized = append(normalized, strings.TrimRight(line, " \t"))
	}

	return strings.Join(normalized, "\n")
}

// yamlNodeForValue builds deterministic yaml.Node tree from a canonical value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case json.Number:
		if NewNumber(typed.String()).IsInteger() {
			return yamlScalarNode("!!int", typed.String()), nil
		}

		if _, err := typed.Float64(); err != nil {
			return nil, err
		}

		return yamlScalarNode("!!float", typed.String()), nil

	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil

	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil

	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil

	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range sortedKeys(typed) {
			valueNode, err := yamlNodeForValue(typed[key])
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil

	default:
		normalized, err := canonicalValue(typed)
		if err != nil {
			return nil, err
		}

		return yamlNodeForValue(normalized)
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// derefString returns the pointed-to string or "".
func derefString(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
