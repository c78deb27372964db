// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// builder owns the issue list of one build pass. Node builders are methods on
// it and never keep state between objects besides the collected issues.
type builder struct {
	logger log.Logger
	issues []FieldIssue
}

// newBuilder creates a builder that logs to logger, or discards logs when nil.
func newBuilder(logger log.Logger) *builder {
	return &builder{logger: normalizeLogger(logger)}
}

// validationError returns collected issues as one error, or nil.
func (b *builder) validationError() error {
	if len(b.issues) == 0 {
		return nil
	}

	return &ValidationError{Issues: b.issues}
}

// warn logs one non-fatal normalization notice.
func (b *builder) warn(msg, path string, keyvals ...any) {
	keyvals = append([]any{"msg", msg, "path", pointerOrRoot(path)}, keyvals...)
	_ = level.Warn(b.logger).Log(keyvals...)
}

// fieldReader reads typed fields of one raw object and records issues
// against its node type and JSON pointer.
type fieldReader struct {
	b      *builder
	node   string
	path   string
	fields map[string]any
}

// reader binds a field reader to one object.
func (b *builder) reader(node, path string, fields map[string]any) fieldReader {
	return fieldReader{b: b, node: node, path: path, fields: fields}
}

// child returns JSON pointer of a field below the current object.
func (r fieldReader) child(key string) string {
	return childPath(r.path, key)
}

// childPath appends one escaped JSON pointer token.
func childPath(path, key string) string {
	return path + "/" + encodePointerToken(key)
}

// pointerOrRoot renders empty pointer as the document root marker.
func pointerOrRoot(path string) string {
	return "#" + path
}

// issue records one failure for field of the current object.
func (r fieldReader) issue(field string, kind IssueKind, msg string) {
	r.b.issues = append(r.b.issues, FieldIssue{
		Path:    pointerOrRoot(r.path),
		Node:    r.node,
		Field:   field,
		Kind:    kind,
		Message: msg,
	})
}

// typeIssue records a wrong JSON type for field.
func (r fieldReader) typeIssue(field, want string, got any) {
	r.issue(field, IssueType, fmt.Sprintf("must be %s, got %s", want, jsonTypeName(got)))
}

// has reports whether field is present, null included.
func (r fieldReader) has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// value returns raw JSON value of field without type checks.
func (r fieldReader) value(key string) (any, bool) {
	value, ok := r.fields[key]
	return value, ok
}

// str reads optional string field.
func (r fieldReader) str(key string) *string {
	value, ok := r.fields[key]
	if !ok {
		return nil
	}

	text, ok := value.(string)
	if !ok {
		r.typeIssue(key, "a string", value)
		return nil
	}

	return &text
}

// requiredStr reads required string field.
func (r fieldReader) requiredStr(key string) string {
	if !r.has(key) {
		r.issue(key, IssueMissing, "required field is missing")
		return ""
	}

	value := r.str(key)
	if value == nil {
		return ""
	}

	return *value
}

// requiredUnlessRef reads a field that is required only when the object is
// not a reference object.
func (r fieldReader) requiredUnlessRef(key string) string {
	if !r.has(refKey) {
		return r.requiredStr(key)
	}

	if value := r.str(key); value != nil {
		return *value
	}

	return ""
}

// boolean reads optional boolean field.
func (r fieldReader) boolean(key string) *bool {
	value, ok := r.fields[key]
	if !ok {
		return nil
	}

	flag, ok := value.(bool)
	if !ok {
		r.typeIssue(key, "a boolean", value)
		return nil
	}

	return &flag
}

// number reads optional numeric field preserving its literal.
func (r fieldReader) number(key string) *Number {
	value, ok := r.fields[key]
	if !ok {
		return nil
	}

	literal, ok := value.(json.Number)
	if !ok {
		r.typeIssue(key, "a number", value)
		return nil
	}

	number := Number{literal: literal}
	return &number
}

// integer reads optional non-negative integer field such as maxLength.
// Integral floats like 10.0 are accepted and keep their literal.
func (r fieldReader) integer(key string) *Number {
	number := r.number(key)
	if number == nil {
		return nil
	}

	if !number.IsIntegral() {
		r.typeIssue(key, "an integer", number.JSON())
		return nil
	}

	if number.Sign() < 0 {
		r.issue(key, IssueConstraint, "must not be negative, got "+number.String())
		return nil
	}

	return number
}

// object reads optional JSON object field.
func (r fieldReader) object(key string) map[string]any {
	value, ok := r.fields[key]
	if !ok {
		return nil
	}

	object, ok := value.(map[string]any)
	if !ok {
		r.typeIssue(key, "an object", value)
		return nil
	}

	return object
}

// list reads optional JSON array field.
func (r fieldReader) list(key string) []any {
	value, ok := r.fields[key]
	if !ok {
		return nil
	}

	items, ok := value.([]any)
	if !ok {
		r.typeIssue(key, "an array", value)
		return nil
	}

	return items
}

// stringList reads optional array of strings, keeping order.
func (r fieldReader) stringList(key string) []string {
	items := r.list(key)
	if items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for index, item := range items {
		text, ok := item.(string)
		if !ok {
			r.issue(key, IssueType, fmt.Sprintf("item %d must be a string, got %s", index, jsonTypeName(item)))
			continue
		}

		out = append(out, text)
	}

	return out
}

// stringMap reads optional object whose values are all strings.
func (r fieldReader) stringMap(key string) map[string]string {
	object := r.object(key)
	if object == nil {
		return nil
	}

	out := make(map[string]string, len(object))
	for _, name := range sortedKeys(object) {
		text, ok := object[name].(string)
		if !ok {
			r.issue(key, IssueType, fmt.Sprintf("value of %q must be a string, got %s", name, jsonTypeName(object[name])))
			continue
		}

		out[name] = text
	}

	return out
}

// buildOne builds an optional nested node field.
func buildOne[T any](r fieldReader, key string, build func(raw map[string]any, path string) *T) *T {
	object := r.object(key)
	if object == nil {
		return nil
	}

	return build(object, r.child(key))
}

// buildList builds an ordered list of nodes, one per array element.
func buildList[T any](r fieldReader, key string, build func(raw map[string]any, path string) *T) []*T {
	items := r.list(key)
	if items == nil {
		return nil
	}

	base := r.child(key)
	out := make([]*T, 0, len(items))
	for index, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			r.issue(key, IssueType, fmt.Sprintf("item %d must be an object, got %s", index, jsonTypeName(item)))
			continue
		}

		out = append(out, build(object, childPath(base, strconv.Itoa(index))))
	}

	return out
}

// buildMap builds a map of named nodes from a JSON object field.
func buildMap[T any](r fieldReader, key string, build func(raw map[string]any, path string) *T) map[string]*T {
	object := r.object(key)
	if object == nil {
		return nil
	}

	return buildEntries(r, key, object, r.child(key), build)
}

// buildEntries builds named nodes from an already extracted object.
func buildEntries[T any](r fieldReader, key string, object map[string]any, base string, build func(raw map[string]any, path string) *T) map[string]*T {
	out := make(map[string]*T, len(object))
	for _, name := range sortedKeys(object) {
		entry, ok := object[name].(map[string]any)
		if !ok {
			r.issue(key, IssueType, fmt.Sprintf("entry %q must be an object, got %s", name, jsonTypeName(object[name])))
			continue
		}

		out[name] = build(entry, childPath(base, name))
	}

	return out
}
