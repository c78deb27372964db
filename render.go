// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"fmt"
	"os"
	"path"
	"slices"
	"strings"
	"text/template"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Renderer turns built nodes into AsciiDoc text. Its template set is parsed
// once and never changed, so a Renderer may be reused.
type Renderer struct {
	set    *template.Template
	dir    string
	logger log.Logger
}

// NewRenderer resolves and parses every template: an override directory entry
// wins over the bundled one with the same name. Extra templates found in the
// override directory are parsed too and can be called from the others.
func NewRenderer(opt RenderOptions) (*Renderer, error) {
	logger := normalizeLogger(opt.Logger)

	source, err := newTemplateSource(opt, logger)
	if err != nil {
		return nil, err
	}

	set, err := parseTemplateSet(source, templateFuncs(normalizeWrapWidth(opt.WrapWidth)))
	if err != nil {
		return nil, err
	}

	return &Renderer{set: set, dir: source.dir, logger: logger}, nil
}

// Render renders node through the template fixed for its type.
func (r *Renderer) Render(node any) (string, error) {
	name, err := TemplateName(node)
	if err != nil {
		return "", err
	}

	return r.RenderTemplate(name, node)
}

// RenderTemplate renders data through the named template.
func (r *Renderer) RenderTemplate(name string, data any) (string, error) {
	name = normalizeTemplateName(name)

	tpl := r.set.Lookup(name)
	if tpl == nil {
		return "", &TemplateNotFoundError{Name: name, Dir: r.dir}
	}

	var out strings.Builder
	if err := tpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteTemplate, name, err)
	}

	_ = level.Debug(r.logger).Log("msg", "template rendered", "name", name, "bytes", out.Len())
	return normalizeOutput(out.String()), nil
}

// ConvertFile reads an OpenAPI document from path and renders AsciiDoc text.
func ConvertFile(path string, opt Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	if strings.TrimSpace(opt.Source) == "" {
		opt.Source = path
	}

	return Convert(data, opt)
}

// Convert loads a document and renders it. Nothing is rendered when loading
// fails, and no partial text is returned on a rendering failure.
func Convert(data []byte, opt Options) (string, error) {
	doc, err := Load(data, opt.loadOptions())
	if err != nil {
		return "", err
	}

	renderer, err := NewRenderer(opt.renderOptions())
	if err != nil {
		return "", err
	}

	return renderer.Render(doc)
}

// BuiltinTemplateNames returns all bundled template names sorted.
func BuiltinTemplateNames() []string {
	names := slices.Clone(builtInTemplates)
	slices.Sort(names)
	return names
}

// BuiltinTemplate returns one bundled template text by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	if !isBuiltInTemplate(name) {
		return "", &TemplateNotFoundError{Name: name}
	}

	data, err := templateFS.ReadFile(path.Join(templateRoot, name+templateExt))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}

	return string(data), nil
}

// normalizeTemplateName normalizes template identifiers.
func normalizeTemplateName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, templateExt)
}
