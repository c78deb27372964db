// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log/level"
)

// LoadFile reads an OpenAPI document from path and builds its graph.
func LoadFile(path string, opt LoadOptions) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	if strings.TrimSpace(opt.Source) == "" {
		opt.Source = path
	}

	return Load(data, opt)
}

// Load decodes JSON or YAML bytes and builds the document graph.
func Load(data []byte, opt LoadOptions) (*Document, error) {
	raw, err := decodeDocument(data, opt.Format, normalizeSource(opt.Source))
	if err != nil {
		return nil, err
	}

	return Build(raw, opt)
}

// Build turns an already decoded raw tree into a Document. Trees decoded by
// encoding/json are accepted too, though their float64 numbers lose the
// integer spelling. Every field issue of the tree is collected; any issue
// fails the build with *ValidationError.
func Build(raw map[string]any, opt LoadOptions) (*Document, error) {
	logger := normalizeLogger(opt.Logger)

	canonical, err := canonicalValue(raw)
	if err != nil {
		return nil, &ParseError{Source: normalizeSource(opt.Source), Cause: err}
	}

	b := newBuilder(logger)
	doc := b.document(canonical.(map[string]any))
	if err := b.validationError(); err != nil {
		_ = level.Debug(logger).Log("msg", "document rejected", "source", normalizeSource(opt.Source), "issues", len(b.issues))
		return nil, err
	}

	_ = level.Debug(logger).Log("msg", "document built", "source", normalizeSource(opt.Source), "openapi", doc.Version)
	return doc, nil
}
