// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/spf13/afero"
)

const (
	// defaultWrapWidth wraps description paragraphs at this width.
	defaultWrapWidth = 100
	// defaultSource names in-memory input in parse errors.
	defaultSource = "(memory)"
)

// LoadOptions controls decoding and graph building.
type LoadOptions struct {
	// Format selects the decoder; empty means auto detection.
	Format InputFormat
	// Source names the input in parse errors, usually the file path.
	Source string
	// Logger receives normalization warnings. Nil discards them.
	Logger log.Logger
}

// RenderOptions controls template resolution and text layout.
type RenderOptions struct {
	// TemplateDir is an override directory searched before bundled templates.
	TemplateDir string
	// TemplateFS is the filesystem TemplateDir lives on. Nil means the OS filesystem.
	TemplateFS afero.Fs
	// WrapWidth wraps description paragraphs; zero or less uses the default.
	WrapWidth int
	// Logger receives template resolution notices. Nil discards them.
	Logger log.Logger
}

// Options combines loading and rendering options for Convert.
type Options struct {
	Format      InputFormat
	Source      string
	TemplateDir string
	TemplateFS  afero.Fs
	WrapWidth   int
	Logger      log.Logger
}

// loadOptions extracts loading options.
func (o Options) loadOptions() LoadOptions {
	return LoadOptions{Format: o.Format, Source: o.Source, Logger: o.Logger}
}

// renderOptions extracts rendering options.
func (o Options) renderOptions() RenderOptions {
	return RenderOptions{
		TemplateDir: o.TemplateDir,
		TemplateFS:  o.TemplateFS,
		WrapWidth:   o.WrapWidth,
		Logger:      o.Logger,
	}
}

// normalizeWrapWidth validates wrap width and falls back to default.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// normalizeSource falls back to a marker for unnamed input.
func normalizeSource(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return defaultSource
	}

	return source
}

// normalizeLogger substitutes a no-op logger for nil.
func normalizeLogger(logger log.Logger) log.Logger {
	if logger == nil {
		return log.NewNopLogger()
	}

	return logger
}
