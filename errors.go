// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrReadDocument is returned when document file loading fails.
	ErrReadDocument = errors.New("read document")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("parse document")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validate document")
	// ErrTemplateNotFound is matched by every *TemplateNotFoundError.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrUnknownInputFormat is returned when input format name is not supported.
	ErrUnknownInputFormat = errors.New("unknown input format")
	// ErrReadTemplate is returned when template file loading fails.
	ErrReadTemplate = errors.New("read template")
	// ErrParseTemplate is returned when template parsing fails.
	ErrParseTemplate = errors.New("parse template")
	// ErrExecuteTemplate is returned when template execution fails.
	ErrExecuteTemplate = errors.New("execute template")
	// ErrUnsupportedNode is returned when a value has no template mapping.
	ErrUnsupportedNode = errors.New("unsupported node type")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example encoding format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExample is returned when generated example encoding fails.
	ErrEncodeExample = errors.New("encode example")
)

// ParseError reports input that is not a well-formed JSON or YAML document.
// It is raised before any node is built.
type ParseError struct {
	// Source is the file path or "(stdin)"/"(memory)" marker.
	Source string
	// Message describes structural problems found after decoding.
	Message string
	// Cause is the decoder error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := ErrParse.Error()
	if e.Source != "" {
		msg += " " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IssueKind classifies one field-level validation failure.
type IssueKind string

const (
	// IssueMissing marks an absent required field.
	IssueMissing IssueKind = "missing"
	// IssueType marks a field holding the wrong JSON type.
	IssueType IssueKind = "type"
	// IssueConstraint marks a declared constraint violation.
	IssueConstraint IssueKind = "constraint"
)

// FieldIssue is one field-level failure located inside the document.
type FieldIssue struct {
	// Path is a JSON pointer from the document root to the owning object.
	Path string
	// Node is the object type name, for example "Info".
	Node string
	// Field is the JSON field name.
	Field string
	// Kind classifies the failure.
	Kind IssueKind
	// Message describes the failure.
	Message string
}

// String formats the issue as "path: Node.field: message".
func (issue FieldIssue) String() string {
	path := issue.Path
	if path == "" {
		path = "#"
	}

	return fmt.Sprintf("%s: %s.%s: %s", path, issue.Node, issue.Field, issue.Message)
}

// ValidationError aggregates every field-level failure found while building a
// document. A document with any issue is rejected as a whole.
type ValidationError struct {
	Issues []FieldIssue
}

// Error returns the first issue and the count of the remaining ones.
func (e *ValidationError) Error() string {
	switch len(e.Issues) {
	case 0:
		return ErrValidation.Error()
	case 1:
		return ErrValidation.Error() + ": " + e.Issues[0].String()
	default:
		return fmt.Sprintf("%s: %s (and %d more)", ErrValidation.Error(), e.Issues[0].String(), len(e.Issues)-1)
	}
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Details renders every issue on its own line.
func (e *ValidationError) Details() string {
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, issue.String())
	}

	return strings.Join(lines, "\n")
}

// HasField reports whether any issue names the given node type and field.
func (e *ValidationError) HasField(node, field string) bool {
	for _, issue := range e.Issues {
		if issue.Node == node && issue.Field == field {
			return true
		}
	}

	return false
}

// TemplateNotFoundError reports a template name missing from both the override
// directory and the bundled set.
type TemplateNotFoundError struct {
	Name string
	Dir  string
}

// Error returns a human-readable error message.
func (e *TemplateNotFoundError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("%s: %q", ErrTemplateNotFound.Error(), e.Name)
	}

	return fmt.Sprintf("%s: %q (override dir %s)", ErrTemplateNotFound.Error(), e.Name, e.Dir)
}

// Is reports whether target is ErrTemplateNotFound.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}
