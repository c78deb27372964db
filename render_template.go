// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"text/template"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateFS stores built-in AsciiDoc templates embedded into the package.
//
//go:embed templates/*.adoc.gotmpl
var templateFS embed.FS

const (
	// templateRoot is the embedded template directory.
	templateRoot = "templates"
	// templateExt is the file suffix of every template.
	templateExt = ".adoc.gotmpl"
)

// Template names, one per node type.
const (
	templateOpenAPI             = "openapi"
	templateInfo                = "info"
	templateContact             = "contact"
	templateLicense             = "license"
	templateServer              = "server"
	templateServerVariable      = "server_variable"
	templateExternalDocs        = "external_docs"
	templateExample             = "example"
	templateXML                 = "xml"
	templateDiscriminator       = "discriminator"
	templateSchema              = "schema"
	templateMediaType           = "media_type"
	templateEncoding            = "encoding"
	templateParameter           = "parameter"
	templateHeader              = "header"
	templateLink                = "link"
	templateResponse            = "response"
	templateRequestBody         = "request_body"
	templateSecurityScheme      = "security_scheme"
	templateOAuthFlows          = "oauth_flows"
	templateOAuthFlow           = "oauth_flow"
	templateSecurityRequirement = "security_requirement"
	templateCallback            = "callback"
	templateOperation           = "operation"
	templatePathItem            = "path_item"
	templatePaths               = "paths"
	templateComponents          = "components"
	templateTag                 = "tag"
)

// builtInTemplates lists every bundled template name.
var builtInTemplates = []string{
	templateOpenAPI, templateInfo, templateContact, templateLicense,
	templateServer, templateServerVariable, templateExternalDocs,
	templateExample, templateXML, templateDiscriminator, templateSchema,
	templateMediaType, templateEncoding, templateParameter, templateHeader,
	templateLink, templateResponse, templateRequestBody,
	templateSecurityScheme, templateOAuthFlows, templateOAuthFlow,
	templateSecurityRequirement, templateCallback, templateOperation,
	templatePathItem, templatePaths, templateComponents, templateTag,
}

// TemplateName returns the template name fixed for the node type.
func TemplateName(node any) (string, error) {
	switch node.(type) {
	case *Document:
		return templateOpenAPI, nil
	case *Info:
		return templateInfo, nil
	case *Contact:
		return templateContact, nil
	case *License:
		return templateLicense, nil
	case *Server:
		return templateServer, nil
	case *ServerVariable:
		return templateServerVariable, nil
	case *ExternalDocs:
		return templateExternalDocs, nil
	case *Example:
		return templateExample, nil
	case *XML:
		return templateXML, nil
	case *Discriminator:
		return templateDiscriminator, nil
	case *SchemaNode:
		return templateSchema, nil
	case *MediaType:
		return templateMediaType, nil
	case *Encoding:
		return templateEncoding, nil
	case *Parameter:
		return templateParameter, nil
	case *Header:
		return templateHeader, nil
	case *Link:
		return templateLink, nil
	case *Response:
		return templateResponse, nil
	case *RequestBody:
		return templateRequestBody, nil
	case *SecurityScheme:
		return templateSecurityScheme, nil
	case *OAuthFlows:
		return templateOAuthFlows, nil
	case *OAuthFlow:
		return templateOAuthFlow, nil
	case *SecurityRequirement:
		return templateSecurityRequirement, nil
	case *Callback:
		return templateCallback, nil
	case *Operation:
		return templateOperation, nil
	case *PathItem:
		return templatePathItem, nil
	case *Paths:
		return templatePaths, nil
	case *Components:
		return templateComponents, nil
	case *Tag:
		return templateTag, nil
	default:
		return "", fmt.Errorf("%w %T", ErrUnsupportedNode, node)
	}
}

// templateSource resolves template text: override directory first, bundled second.
type templateSource struct {
	overlay afero.Fs
	dir     string
	logger  log.Logger
}

// newTemplateSource opens the override directory when one is configured.
func newTemplateSource(opt RenderOptions, logger log.Logger) (templateSource, error) {
	source := templateSource{logger: logger}

	dir := strings.TrimSpace(opt.TemplateDir)
	if dir == "" {
		return source, nil
	}

	base := opt.TemplateFS
	if base == nil {
		base = afero.NewOsFs()
	}

	exists, err := afero.DirExists(base, dir)
	if err != nil {
		return templateSource{}, fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}

	if !exists {
		return templateSource{}, fmt.Errorf("%w: override directory %s does not exist", ErrReadTemplate, dir)
	}

	source.dir = dir
	source.overlay = afero.NewReadOnlyFs(afero.NewBasePathFs(base, dir))
	return source, nil
}

// read returns template text for name.
func (s templateSource) read(name string) (string, error) {
	file := name + templateExt

	if s.overlay != nil {
		data, err := afero.ReadFile(s.overlay, file)
		switch {
		case err == nil:
			_ = level.Debug(s.logger).Log("msg", "template override", "name", name, "dir", s.dir)
			return string(data), nil
		case !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("%w %q: %w", ErrReadTemplate, name, err)
		}
	}

	data, err := templateFS.ReadFile(path.Join(templateRoot, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &TemplateNotFoundError{Name: name, Dir: s.dir}
		}

		return "", fmt.Errorf("%w %q: %w", ErrReadTemplate, name, err)
	}

	return string(data), nil
}

// extraNames lists override templates that have no bundled counterpart.
func (s templateSource) extraNames() ([]string, error) {
	if s.overlay == nil {
		return nil, nil
	}

	files, err := afero.Glob(s.overlay, "*"+templateExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}

	out := make([]string, 0, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), templateExt)
		if isBuiltInTemplate(name) {
			continue
		}

		out = append(out, name)
	}

	return out, nil
}

// isBuiltInTemplate reports whether name is a bundled template.
func isBuiltInTemplate(name string) bool {
	return slices.Contains(builtInTemplates, name)
}

// parseTemplateSet parses bundled and override templates into one set, so
// templates can include each other by name.
func parseTemplateSet(source templateSource, funcs template.FuncMap) (*template.Template, error) {
	extra, err := source.extraNames()
	if err != nil {
		return nil, err
	}

	set := template.New("oasdoc").Funcs(funcs)
	for _, name := range append(append([]string(nil), builtInTemplates...), extra...) {
		text, err := source.read(name)
		if err != nil {
			return nil, err
		}

		if _, err := set.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
		}
	}

	return set, nil
}

// templateFuncs provides utility functions available inside AsciiDoc templates.
func templateFuncs(wrapWidth int) template.FuncMap {
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"text":     toText,
		"oneLine":  func(value any) string { return sanitizeText(toText(value)) },
		"orNone":   orNone,
		"yesNo":    yesNo,
		"isTrue":   isTrue,
		"escape":   escapeCell,
		"code":     func(value any) string { return code(toText(value)) },
		"field":    field,
		"joinText": joinText,
		"json":     mustJSONInline,
		"prettyJSON": func(value any) string {
			data, err := marshalExampleJSON(value)
			if err != nil {
				return mustJSONInline(value)
			}

			return strings.TrimRight(string(data), "\n")
		},
		"wrap": func(value any) string {
			return wrapDescription(toText(value), wrapWidth)
		},
		"title": func(value any) string {
			return titleCaser.String(toText(value))
		},
		"anchor":     anchorID,
		"opAnchor":   operationAnchor,
		"ref":        referenceLink,
		"attributes": schemaAttributes,
		"summary":    summarizeSchema,
		"properties": schemaProperties,
		"nested":     hasInlineStructure,
		"extensions": extensionList,
		"example":    exampleBlock,
	}
}

// exampleBlock renders a generated JSON example for schema, or "" when
// generation gives nothing useful. A bare reference yields "" since its
// placeholder says no more than the reference link.
func exampleBlock(schema *SchemaNode) string {
	if schema == nil || schema.Ref != nil {
		return ""
	}

	value, err := GenerateExample(schema, ExampleModeAll)
	if err != nil || value == nil {
		return ""
	}

	data, err := EncodeExample(value, ExampleFormatJSON)
	if err != nil {
		return ""
	}

	return strings.TrimRight(string(data), "\n")
}
