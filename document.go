// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import "strings"

// Document is the root OpenAPI object.
type Document struct {
	Version           string
	Info              *Info
	JSONSchemaDialect *string
	Servers           []*Server
	Paths             *Paths
	Webhooks          map[string]*PathItem
	Components        *Components
	Security          []*SecurityRequirement
	Tags              []*Tag
	ExternalDocs      *ExternalDocs
	Extensions        Extensions
}

// Title returns Info.Title or a fallback for documents without info.
func (d *Document) Title() string {
	if d == nil || d.Info == nil || strings.TrimSpace(d.Info.Title) == "" {
		return "API Reference"
	}

	return d.Info.Title
}

// Info is the Info Object.
type Info struct {
	Title          string
	Summary        *string
	Description    *string
	TermsOfService *string
	Version        string
	Contact        *Contact
	License        *License
	Extensions     Extensions
}

// Contact is the Contact Object.
type Contact struct {
	Name       *string
	URL        *string
	Email      *string
	Extensions Extensions
}

// License is the License Object.
type License struct {
	Name       string
	Identifier *string
	URL        *string
	Extensions Extensions
}

// Server is the Server Object.
type Server struct {
	URL         string
	Description *string
	Variables   map[string]*ServerVariable
	Extensions  Extensions
}

// ServerVariable is one substitution variable of a server URL.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description *string
	Extensions  Extensions
}

// ExternalDocs is the External Documentation Object.
type ExternalDocs struct {
	Description *string
	URL         string
	Extensions  Extensions
}

// Tag is the Tag Object.
type Tag struct {
	Name         string
	Description  *string
	ExternalDocs *ExternalDocs
	Extensions   Extensions
}

// document builds the root node.
func (b *builder) document(raw map[string]any) *Document {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Document", "", fields)

	version := ""
	if value := r.str("openapi"); value != nil {
		version = *value
	} else if !r.has("openapi") {
		b.warn("document has no openapi version field", "")
	}

	return &Document{
		Version:           version,
		Info:              buildOne(r, "info", b.info),
		JSONSchemaDialect: r.str("jsonSchemaDialect"),
		Servers:           buildList(r, "servers", b.server),
		Paths:             buildOne(r, "paths", b.paths),
		Webhooks:          buildMap(r, "webhooks", b.pathItem),
		Components:        buildOne(r, "components", b.components),
		Security:          b.securityRequirements(r, "security"),
		Tags:              buildList(r, "tags", b.tag),
		ExternalDocs:      buildOne(r, "externalDocs", b.externalDocs),
		Extensions:        extensions,
	}
}

func (b *builder) info(raw map[string]any, path string) *Info {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Info", path, fields)

	return &Info{
		Title:          r.requiredStr("title"),
		Summary:        r.str("summary"),
		Description:    r.str("description"),
		TermsOfService: r.str("termsOfService"),
		Version:        r.requiredStr("version"),
		Contact:        buildOne(r, "contact", b.contact),
		License:        buildOne(r, "license", b.license),
		Extensions:     extensions,
	}
}

func (b *builder) contact(raw map[string]any, path string) *Contact {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Contact", path, fields)

	return &Contact{
		Name:       r.str("name"),
		URL:        r.str("url"),
		Email:      r.str("email"),
		Extensions: extensions,
	}
}

func (b *builder) license(raw map[string]any, path string) *License {
	extensions, fields := splitExtensions(raw)
	r := b.reader("License", path, fields)

	return &License{
		Name:       r.requiredStr("name"),
		Identifier: r.str("identifier"),
		URL:        r.str("url"),
		Extensions: extensions,
	}
}

func (b *builder) server(raw map[string]any, path string) *Server {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Server", path, fields)

	return &Server{
		URL:         r.requiredStr("url"),
		Description: r.str("description"),
		Variables:   buildMap(r, "variables", b.serverVariable),
		Extensions:  extensions,
	}
}

// serverVariable builds one server variable; a present enum must not be empty.
func (b *builder) serverVariable(raw map[string]any, path string) *ServerVariable {
	extensions, fields := splitExtensions(raw)
	r := b.reader("ServerVariable", path, fields)

	enum := r.stringList("enum")
	if enum != nil && len(enum) == 0 {
		r.issue("enum", IssueConstraint, "must not be empty")
	}

	return &ServerVariable{
		Enum:        enum,
		Default:     r.requiredStr("default"),
		Description: r.str("description"),
		Extensions:  extensions,
	}
}

func (b *builder) externalDocs(raw map[string]any, path string) *ExternalDocs {
	extensions, fields := splitExtensions(raw)
	r := b.reader("ExternalDocs", path, fields)

	return &ExternalDocs{
		Description: r.str("description"),
		URL:         r.requiredStr("url"),
		Extensions:  extensions,
	}
}

func (b *builder) tag(raw map[string]any, path string) *Tag {
	extensions, fields := splitExtensions(raw)
	r := b.reader("Tag", path, fields)

	return &Tag{
		Name:         r.requiredStr("name"),
		Description:  r.str("description"),
		ExternalDocs: buildOne(r, "externalDocs", b.externalDocs),
		Extensions:   extensions,
	}
}
