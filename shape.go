// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"strings"

	"github.com/grafana/regexp"
)

// refKey is the reference pointer marker key.
const refKey = "$ref"

// runtimeExpressionPattern finds "$" followed by a non-underscore word
// character; keys such as "{$request.body#/callbackUrl}" qualify.
var runtimeExpressionPattern = regexp.MustCompile(`\$[^\W_]\w*`)

// Canonical field names produced by the shape normalizers.
const (
	shapePaths      = "paths"
	shapeExpression = "expression"
	shapePathItem   = "pathItem"
	shapeRef        = "ref"
	shapeScheme     = "schemeName"
	shapeScopes     = "scopes"
)

// normalizePaths wraps a key-as-data Paths object, extensions already removed,
// under a single "paths" field holding the path template map.
func normalizePaths(fields map[string]any) map[string]any {
	return map[string]any{shapePaths: fields}
}

// isRuntimeExpressionKey reports whether key contains a runtime expression
// other than the "$ref" marker.
func isRuntimeExpressionKey(key string) bool {
	for _, match := range runtimeExpressionPattern.FindAllString(key, -1) {
		if !strings.HasPrefix(match, refKey) {
			return true
		}
	}

	return false
}

// normalizeCallback reshapes a Callback object into {"expression", "pathItem"}
// and {"ref"} fields. Keys are inspected in sorted order, so with several
// expression keys the last one wins. The second result counts expression keys.
func normalizeCallback(raw map[string]any) (map[string]any, int) {
	out := make(map[string]any, 3)
	expressions := 0
	for _, key := range sortedKeys(raw) {
		switch {
		case isRuntimeExpressionKey(key):
			out[shapeExpression] = key
			out[shapePathItem] = raw[key]
			expressions++
		case key == refKey:
			out[shapeRef] = raw[key]
		}
	}

	return out, expressions
}

// normalizeSecurityRequirement reshapes a single-entry requirement object
// {"scheme": [scopes]} into {"schemeName", "scopes"}. Only one pair is kept:
// with several keys the last one in sorted order wins. The second result
// counts the keys seen.
func normalizeSecurityRequirement(raw map[string]any) (map[string]any, int) {
	out := make(map[string]any, 2)
	for _, key := range sortedKeys(raw) {
		out[shapeScheme] = key
		out[shapeScopes] = raw[key]
	}

	return out, len(raw)
}
