// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"strings"

	"github.com/grafana/regexp"
)

// extensionPrefix marks vendor extension keys.
const extensionPrefix = "x-"

// extensionKeyPattern matches vendor extension keys.
var extensionKeyPattern = regexp.MustCompile(`^x-.*$`)

// Extensions holds vendor extension values keyed by name without the "x-" prefix.
type Extensions map[string]any

// Has reports whether extension name (without prefix) is present.
func (e Extensions) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// Names returns extension names in sorted order.
func (e Extensions) Names() []string {
	return sortedKeys(e)
}

// splitExtensions partitions raw into vendor extensions, prefix stripped, and
// the remaining fields. raw itself is left untouched and values are shared.
func splitExtensions(raw map[string]any) (Extensions, map[string]any) {
	extensions := make(Extensions)
	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		if extensionKeyPattern.MatchString(key) {
			extensions[strings.TrimPrefix(key, extensionPrefix)] = value
			continue
		}

		fields[key] = value
	}

	return extensions, fields
}
