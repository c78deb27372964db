// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// InputFormat selects the document decoder.
type InputFormat string

const (
	// FormatAuto picks JSON when the first non-space byte opens an object, YAML otherwise.
	FormatAuto InputFormat = "auto"
	// FormatJSON decodes the document as JSON.
	FormatJSON InputFormat = "json"
	// FormatYAML decodes the document as YAML.
	FormatYAML InputFormat = "yaml"
)

// jsonAPI decodes numbers as json.Number so integer and float literals stay apart.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// normalizeInputFormat validates input format name and falls back to auto detection.
func normalizeInputFormat(format InputFormat) (InputFormat, error) {
	switch InputFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownInputFormat, format)
	}
}

// detectInputFormat guesses decoder from the first meaningful byte.
func detectInputFormat(data []byte) InputFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}

	return FormatYAML
}

// decodeDocument decodes bytes into the canonical raw tree and checks the root shape.
func decodeDocument(data []byte, format InputFormat, source string) (map[string]any, error) {
	format, err := normalizeInputFormat(format)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Source: source, Message: "empty input"}
	}

	if format == FormatAuto {
		format = detectInputFormat(data)
	}

	var decoded any
	switch format {
	case FormatJSON:
		if err := jsonAPI.Unmarshal(data, &decoded); err != nil {
			return nil, &ParseError{Source: source, Cause: err}
		}
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &ParseError{Source: source, Cause: err}
		}

		decoded, err = canonicalValue(raw)
		if err != nil {
			return nil, &ParseError{Source: source, Cause: err}
		}
	}

	root, ok := decoded.(map[string]any)
	if !ok {
		return nil, &ParseError{Source: source, Message: "document root must be an object, got " + jsonTypeName(decoded)}
	}

	return root, nil
}

// canonicalValue converts yaml.v3 or encoding/json decoded values into the
// shapes the JSON decoder produces: string keys, []any lists and json.Number
// numbers.
func canonicalValue(value any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			normalized, err := canonicalValue(item)
			if err != nil {
				return nil, err
			}

			out[key] = normalized
		}

		return out, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			normalized, err := canonicalValue(item)
			if err != nil {
				return nil, err
			}

			out[fmt.Sprint(key)] = normalized
		}

		return out, nil
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			normalized, err := canonicalValue(item)
			if err != nil {
				return nil, err
			}

			out = append(out, normalized)
		}

		return out, nil
	case int:
		return json.Number(strconv.Itoa(typed)), nil
	case int64:
		return json.Number(strconv.FormatInt(typed, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(typed, 10)), nil
	case float64:
		if math.IsInf(typed, 0) || math.IsNaN(typed) {
			return nil, fmt.Errorf("number %v has no JSON representation", typed)
		}

		text := strconv.FormatFloat(typed, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}

		return json.Number(text), nil
	case json.Number, nil, bool, string:
		return typed, nil
	default:
		// timestamps and other YAML-only scalars keep their text form
		return fmt.Sprint(typed), nil
	}
}

// jsonTypeName names the JSON type of one raw value for diagnostics.
func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// sortedKeys returns deterministic sorted keys for raw JSON objects.
func sortedKeys[V any](values map[string]V) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}

// mustJSONInline marshals values as single-line JSON text for inline snippets.
func mustJSONInline(value any) string {
	data, err := jsonAPI.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// encodePointerToken escapes one JSON pointer token.
func encodePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
