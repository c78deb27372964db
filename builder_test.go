// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfoKeepsFieldsExactly(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	info := b.info(rawObject(t, `{
  "title": "Petstore",
  "summary": "Pets",
  "description": "All pets.",
  "termsOfService": "https://example.com/terms",
  "version": "1.0.0",
  "contact": {"name": "Team", "url": "https://example.com", "email": "team@example.com"},
  "license": {"name": "MIT", "identifier": "MIT"}
}`), "/info")
	require.NoError(t, b.validationError())

	want := &Info{
		Title:          "Petstore",
		Summary:        ptr("Pets"),
		Description:    ptr("All pets."),
		TermsOfService: ptr("https://example.com/terms"),
		Version:        "1.0.0",
		Contact: &Contact{
			Name:       ptr("Team"),
			URL:        ptr("https://example.com"),
			Email:      ptr("team@example.com"),
			Extensions: Extensions{},
		},
		License: &License{
			Name:       "MIT",
			Identifier: ptr("MIT"),
			Extensions: Extensions{},
		},
		Extensions: Extensions{},
	}

	if diff := cmp.Diff(want, info); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildServerVariableAndTag(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	server := b.server(rawObject(t, `{
  "url": "https://{host}/v1",
  "variables": {"host": {"default": "api.example.com", "enum": ["api.example.com", "eu.example.com"], "description": "Host"}}
}`), "/servers/0")
	tag := b.tag(rawObject(t, `{"name": "pets", "externalDocs": {"url": "https://example.com/pets"}}`), "/tags/0")
	require.NoError(t, b.validationError())

	assert.Equal(t, "https://{host}/v1", server.URL)
	require.Contains(t, server.Variables, "host")
	assert.Equal(t, "api.example.com", server.Variables["host"].Default)
	assert.Equal(t, []string{"api.example.com", "eu.example.com"}, server.Variables["host"].Enum)
	assert.Equal(t, "pets", tag.Name)
	require.NotNil(t, tag.ExternalDocs)
	assert.Equal(t, "https://example.com/pets", tag.ExternalDocs.URL)
}

func TestBuildNodesKeepFieldsExactly(t *testing.T) {
	t.Parallel()

	stringSchema := func() *SchemaNode {
		return &SchemaNode{Type: SchemaType{"string"}, Extensions: Extensions{}}
	}

	tests := []struct {
		name  string
		build func(b *builder, raw map[string]any) any
		input string
		want  any
	}{
		{
			name:  "parameter",
			build: func(b *builder, raw map[string]any) any { return b.parameter(raw, "/p") },
			input: `{
  "name": "limit", "in": "query", "description": "Max", "required": true,
  "deprecated": false, "allowEmptyValue": true, "style": "form", "explode": false,
  "allowReserved": true, "schema": {"type": "string"}, "example": 5,
  "examples": {"small": {"value": 1}}, "content": {"application/json": {}}, "x-n": 1
}`,
			want: &Parameter{
				Name:            "limit",
				In:              "query",
				Description:     ptr("Max"),
				Required:        ptr(true),
				Deprecated:      ptr(false),
				AllowEmptyValue: ptr(true),
				Style:           ptr("form"),
				Explode:         ptr(false),
				AllowReserved:   ptr(true),
				SchemaObject:    stringSchema(),
				Example:         &Value{Raw: json.Number("5")},
				Examples:        map[string]*Example{"small": {Value: &Value{Raw: json.Number("1")}, Extensions: Extensions{}}},
				Content:         map[string]*MediaType{"application/json": {Extensions: Extensions{}}},
				Extensions:      Extensions{"n": json.Number("1")},
			},
		},
		{
			name:  "header",
			build: func(b *builder, raw map[string]any) any { return b.header(raw, "/h") },
			input: `{
  "description": "Rate", "required": false, "deprecated": true, "allowEmptyValue": false,
  "style": "simple", "explode": true, "allowReserved": false, "schema": {"type": "string"},
  "example": "10", "examples": {"e": {"summary": "S"}}, "content": {"text/plain": {}}
}`,
			want: &Header{
				Description:     ptr("Rate"),
				Required:        ptr(false),
				Deprecated:      ptr(true),
				AllowEmptyValue: ptr(false),
				Style:           ptr("simple"),
				Explode:         ptr(true),
				AllowReserved:   ptr(false),
				SchemaObject:    stringSchema(),
				Example:         &Value{Raw: "10"},
				Examples:        map[string]*Example{"e": {Summary: ptr("S"), Extensions: Extensions{}}},
				Content:         map[string]*MediaType{"text/plain": {Extensions: Extensions{}}},
				Extensions:      Extensions{},
			},
		},
		{
			name:  "encoding",
			build: func(b *builder, raw map[string]any) any { return b.encoding(raw, "/e") },
			input: `{"contentType": "image/png", "headers": {"X-Rate": {"description": "Rate"}}, "style": "form", "explode": true, "allowReserved": false}`,
			want: &Encoding{
				ContentType:   ptr("image/png"),
				Headers:       map[string]*Header{"X-Rate": {Description: ptr("Rate"), Extensions: Extensions{}}},
				Style:         ptr("form"),
				Explode:       ptr(true),
				AllowReserved: ptr(false),
				Extensions:    Extensions{},
			},
		},
		{
			name:  "link",
			build: func(b *builder, raw map[string]any) any { return b.link(raw, "/l") },
			input: `{
  "operationRef": "#/paths/~1a/get", "operationId": "getA",
  "parameters": {"id": "$response.body#/id"}, "requestBody": {"k": "v"},
  "description": "Next", "server": {"url": "https://x"}
}`,
			want: &Link{
				OperationRef: ptr("#/paths/~1a/get"),
				OperationID:  ptr("getA"),
				Parameters:   map[string]any{"id": "$response.body#/id"},
				RequestBody:  &Value{Raw: map[string]any{"k": "v"}},
				Description:  ptr("Next"),
				Server:       &Server{URL: "https://x", Extensions: Extensions{}},
				Extensions:   Extensions{},
			},
		},
		{
			name:  "response",
			build: func(b *builder, raw map[string]any) any { return b.response(raw, "/r") },
			input: `{
  "description": "ok", "headers": {"X-A": {"required": true}},
  "content": {"text/plain": {"example": "hi"}}, "links": {"next": {"operationId": "n"}}
}`,
			want: &Response{
				Description: ptr("ok"),
				Headers:     map[string]*Header{"X-A": {Required: ptr(true), Extensions: Extensions{}}},
				Content:     map[string]*MediaType{"text/plain": {Example: &Value{Raw: "hi"}, Extensions: Extensions{}}},
				Links:       map[string]*Link{"next": {OperationID: ptr("n"), Extensions: Extensions{}}},
				Extensions:  Extensions{},
			},
		},
		{
			name:  "request body",
			build: func(b *builder, raw map[string]any) any { return b.requestBody(raw, "/b") },
			input: `{"description": "Body", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}, "required": true}`,
			want: &RequestBody{
				Description: ptr("Body"),
				Content: map[string]*MediaType{"application/json": {
					SchemaObject: &SchemaNode{Ref: ptr("#/components/schemas/Pet"), Extensions: Extensions{}},
					Extensions:   Extensions{},
				}},
				Required:   ptr(true),
				Extensions: Extensions{},
			},
		},
		{
			name:  "media type renames schema",
			build: func(b *builder, raw map[string]any) any { return b.mediaType(raw, "/m") },
			input: `{
  "schema": {"type": "string"}, "example": "a",
  "examples": {"e": {"summary": "S", "description": "D", "externalValue": "https://x/e.json"}},
  "encoding": {"file": {"contentType": "image/png"}}
}`,
			want: &MediaType{
				SchemaObject: stringSchema(),
				Example:      &Value{Raw: "a"},
				Examples: map[string]*Example{"e": {
					Summary:       ptr("S"),
					Description:   ptr("D"),
					ExternalValue: ptr("https://x/e.json"),
					Extensions:    Extensions{},
				}},
				Encoding:   map[string]*Encoding{"file": {ContentType: ptr("image/png"), Extensions: Extensions{}}},
				Extensions: Extensions{},
			},
		},
		{
			name:  "example",
			build: func(b *builder, raw map[string]any) any { return b.example(raw, "/x") },
			input: `{"summary": "S", "description": "D", "value": {"a": [1, true, null]}, "externalValue": "https://x/a.json"}`,
			want: &Example{
				Summary:       ptr("S"),
				Description:   ptr("D"),
				Value:         &Value{Raw: map[string]any{"a": []any{json.Number("1"), true, nil}}},
				ExternalValue: ptr("https://x/a.json"),
				Extensions:    Extensions{},
			},
		},
		{
			name:  "xml",
			build: func(b *builder, raw map[string]any) any { return b.xml(raw, "/s/xml") },
			input: `{"name": "pet", "namespace": "https://x/ns", "prefix": "p", "attribute": false, "wrapped": true}`,
			want: &XML{
				Name:       ptr("pet"),
				Namespace:  ptr("https://x/ns"),
				Prefix:     ptr("p"),
				Attribute:  ptr(false),
				Wrapped:    ptr(true),
				Extensions: Extensions{},
			},
		},
		{
			name:  "discriminator",
			build: func(b *builder, raw map[string]any) any { return b.discriminator(raw, "/s/discriminator") },
			input: `{"propertyName": "kind", "mapping": {"cat": "#/components/schemas/Cat"}}`,
			want: &Discriminator{
				PropertyName: ptr("kind"),
				Mapping:      map[string]string{"cat": "#/components/schemas/Cat"},
				Extensions:   Extensions{},
			},
		},
		{
			name:  "security scheme with flows",
			build: func(b *builder, raw map[string]any) any { return b.securityScheme(raw, "/k") },
			input: `{
  "type": "oauth2", "description": "Auth", "name": "X-Key", "in": "header",
  "scheme": "bearer", "bearerFormat": "JWT", "openIdConnectUrl": "https://x/.well-known",
  "flows": {
    "implicit": {"authorizationUrl": "https://x/auth", "scopes": {"read": "Read"}},
    "password": {"tokenUrl": "https://x/token", "refreshUrl": "https://x/refresh", "scopes": {}},
    "clientCredentials": {"tokenUrl": "https://x/token"},
    "authorizationCode": {"authorizationUrl": "https://x/auth", "tokenUrl": "https://x/token", "scopes": {"write": "Write"}},
    "x-flows": true
  }
}`,
			want: &SecurityScheme{
				Type:         "oauth2",
				Description:  ptr("Auth"),
				Name:         ptr("X-Key"),
				In:           ptr("header"),
				Scheme:       ptr("bearer"),
				BearerFormat: ptr("JWT"),
				Flows: &OAuthFlows{
					Implicit: &OAuthFlow{
						AuthorizationURL: ptr("https://x/auth"),
						Scopes:           map[string]string{"read": "Read"},
						Extensions:       Extensions{},
					},
					Password: &OAuthFlow{
						TokenURL:   ptr("https://x/token"),
						RefreshURL: ptr("https://x/refresh"),
						Scopes:     map[string]string{},
						Extensions: Extensions{},
					},
					ClientCredentials: &OAuthFlow{
						TokenURL:   ptr("https://x/token"),
						Extensions: Extensions{},
					},
					AuthorizationCode: &OAuthFlow{
						AuthorizationURL: ptr("https://x/auth"),
						TokenURL:         ptr("https://x/token"),
						Scopes:           map[string]string{"write": "Write"},
						Extensions:       Extensions{},
					},
					Extensions: Extensions{"flows": true},
				},
				OpenIDConnectURL: ptr("https://x/.well-known"),
				Extensions:       Extensions{},
			},
		},
		{
			name:  "server variable",
			build: func(b *builder, raw map[string]any) any { return b.serverVariable(raw, "/v") },
			input: `{"enum": ["eu", "us"], "default": "eu", "description": "Region"}`,
			want: &ServerVariable{
				Enum:        []string{"eu", "us"},
				Default:     "eu",
				Description: ptr("Region"),
				Extensions:  Extensions{},
			},
		},
		{
			name:  "components",
			build: func(b *builder, raw map[string]any) any { return b.components(raw, "/components") },
			input: `{
  "schemas": {"S": {"type": "string"}},
  "responses": {"R": {"description": "r"}},
  "parameters": {"P": {"name": "p", "in": "path"}},
  "examples": {"E": {"summary": "e"}},
  "requestBodies": {"B": {"required": false}},
  "headers": {"H": {"description": "h"}},
  "securitySchemes": {"K": {"type": "http", "scheme": "basic"}},
  "links": {"L": {"operationId": "o"}},
  "callbacks": {"C": {"{$url}": {"summary": "cb"}}},
  "pathItems": {"I": {"summary": "i"}}
}`,
			want: &Components{
				Schemas:         map[string]*SchemaNode{"S": stringSchema()},
				Responses:       map[string]*Response{"R": {Description: ptr("r"), Extensions: Extensions{}}},
				Parameters:      map[string]*Parameter{"P": {Name: "p", In: "path", Extensions: Extensions{}}},
				Examples:        map[string]*Example{"E": {Summary: ptr("e"), Extensions: Extensions{}}},
				RequestBodies:   map[string]*RequestBody{"B": {Required: ptr(false), Extensions: Extensions{}}},
				Headers:         map[string]*Header{"H": {Description: ptr("h"), Extensions: Extensions{}}},
				SecuritySchemes: map[string]*SecurityScheme{"K": {Type: "http", Scheme: ptr("basic"), Extensions: Extensions{}}},
				Links:           map[string]*Link{"L": {OperationID: ptr("o"), Extensions: Extensions{}}},
				Callbacks: map[string]*Callback{"C": {
					Expression: "{$url}",
					PathItem:   &PathItem{Summary: ptr("cb"), Extensions: Extensions{}},
				}},
				PathItems:  map[string]*PathItem{"I": {Summary: ptr("i"), Extensions: Extensions{}}},
				Extensions: Extensions{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newBuilder(nil)
			got := tt.build(b, rawObject(t, tt.input))
			require.NoError(t, b.validationError())

			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(Number{}, AdditionalProperties{})); diff != "" {
				t.Fatalf("node mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildIntegerKeywordsAcceptIntegralFloats(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	schema := b.schema(rawObject(t, `{"maxLength": 10.0, "minItems": 1e1, "minLength": 0, "maxProperties": 3}`), "/s")
	require.NoError(t, b.validationError())

	assert.Equal(t, "10.0", schema.MaxLength.String())
	assert.Equal(t, "1e1", schema.MinItems.String())
	assert.Equal(t, "0", schema.MinLength.String())
	assert.Equal(t, "3", schema.MaxProperties.String())
}

func TestBuildIntegerKeywordsRejectFractionsAndNegatives(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	schema := b.schema(rawObject(t, `{"maxLength": 10.5, "minItems": -2.0}`), "/s")

	var validationErr *ValidationError
	require.ErrorAs(t, b.validationError(), &validationErr)
	require.Len(t, validationErr.Issues, 2)
	assert.Nil(t, schema.MaxLength)
	assert.Nil(t, schema.MinItems)

	got := make(map[string]IssueKind, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		got[issue.Field] = issue.Kind
	}
	assert.Equal(t, map[string]IssueKind{"maxLength": IssueType, "minItems": IssueConstraint}, got)
}

func TestExtensionCapture(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	contact := b.contact(rawObject(t, `{"x-foo": 1, "name": "a", "normalField": "b"}`), "/info/contact")
	require.NoError(t, b.validationError())

	assert.Equal(t, Extensions{"foo": json.Number("1")}, contact.Extensions)
	assert.Equal(t, "a", *contact.Name)
	assert.True(t, contact.Extensions.Has("foo"))
	assert.Equal(t, []string{"foo"}, contact.Extensions.Names())
}

func TestExtensionCaptureEmptyMapWhenAbsent(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	tag := b.tag(rawObject(t, `{"name": "pets"}`), "/tags/0")

	require.NotNil(t, tag.Extensions)
	assert.Empty(t, tag.Extensions)
}

func TestBuildRecursiveSchema(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	schema := b.schema(rawObject(t, `{
  "type": "object",
  "properties": {
    "a": {"type": "string"},
    "b": {"type": "object", "properties": {"c": {"type": "integer"}}}
  }
}`), "/components/schemas/Root")
	require.NoError(t, b.validationError())

	require.Len(t, schema.Properties, 2)
	nested := schema.Properties["b"]
	require.NotNil(t, nested)
	require.Len(t, nested.Properties, 1)
	assert.Equal(t, SchemaType{"integer"}, nested.Properties["c"].Type)
	assert.Equal(t, []string{"a", "b"}, schema.PropertyNames())
}

func TestBuildSchemaCompositionKeepsOrder(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	schema := b.schema(rawObject(t, `{
  "oneOf": [{"$ref": "#/components/schemas/Cat"}, {"$ref": "#/components/schemas/Dog"}, {"type": "null"}],
  "not": {"type": "integer"},
  "discriminator": {"propertyName": "kind", "mapping": {"cat": "#/components/schemas/Cat"}}
}`), "/components/schemas/Pet")
	require.NoError(t, b.validationError())

	require.Len(t, schema.OneOf, 3)
	assert.Equal(t, "Cat", schema.OneOf[0].RefName())
	assert.Equal(t, "Dog", schema.OneOf[1].RefName())
	assert.Equal(t, SchemaType{"null"}, schema.OneOf[2].Type)
	assert.True(t, schema.HasComposition())
	require.NotNil(t, schema.Not)
	require.NotNil(t, schema.Discriminator)
	assert.Equal(t, map[string]string{"cat": "#/components/schemas/Cat"}, schema.Discriminator.Mapping)
}

func TestBuildAdditionalPropertiesTriState(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	unset := b.schema(rawObject(t, `{"type": "object"}`), "/a")
	closed := b.schema(rawObject(t, `{"type": "object", "additionalProperties": false}`), "/b")
	constrained := b.schema(rawObject(t, `{"type": "object", "additionalProperties": {"type": "string"}}`), "/c")
	require.NoError(t, b.validationError())

	assert.False(t, unset.AdditionalProperties.IsSet())
	assert.True(t, unset.AdditionalProperties.Allowed())

	assert.True(t, closed.AdditionalProperties.IsSet())
	assert.True(t, closed.AdditionalProperties.IsBool())
	assert.False(t, closed.AdditionalProperties.Allowed())
	assert.Nil(t, closed.AdditionalProperties.Schema())

	assert.True(t, constrained.AdditionalProperties.IsSet())
	assert.False(t, constrained.AdditionalProperties.IsBool())
	require.NotNil(t, constrained.AdditionalProperties.Schema())
	assert.Equal(t, SchemaType{"string"}, constrained.AdditionalProperties.Schema().Type)
}

func TestBuildSchemaExclusiveBoundForms(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	legacy := b.schema(rawObject(t, `{"maximum": 10, "exclusiveMaximum": true}`), "/a")
	numeric := b.schema(rawObject(t, `{"exclusiveMinimum": 0.5}`), "/b")
	require.NoError(t, b.validationError())

	require.NotNil(t, legacy.ExclusiveMaximum)
	require.NotNil(t, legacy.ExclusiveMaximum.Flag)
	assert.True(t, *legacy.ExclusiveMaximum.Flag)
	assert.Equal(t, "true", legacy.ExclusiveMaximum.String())

	require.NotNil(t, numeric.ExclusiveMinimum)
	require.NotNil(t, numeric.ExclusiveMinimum.Value)
	assert.Equal(t, "0.5", numeric.ExclusiveMinimum.String())
}

func TestBuildSchemaValueKeepsExplicitNull(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	schema := b.schema(rawObject(t, `{"default": null, "const": "x"}`), "/a")

	require.NotNil(t, schema.Default)
	assert.Nil(t, schema.Default.Raw)
	assert.Equal(t, "null", schema.Default.JSON())
	assert.Nil(t, schema.Example)
	require.NotNil(t, schema.Const)
	assert.Equal(t, "x", schema.Const.Raw)
}

func TestBuildPathsKeyedByTemplate(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	paths := b.paths(rawObject(t, `{
  "/pets": {"get": {"operationId": "listPets", "responses": {"200": {"description": "ok"}}}},
  "/pets/{id}": {"delete": {"operationId": "deletePet"}},
  "x-paths-note": "ignored"
}`), "/paths")
	require.NoError(t, b.validationError())

	assert.Equal(t, []string{"/pets", "/pets/{id}"}, paths.Templates())
	require.NotNil(t, paths.Items["/pets"].Get)
	assert.Equal(t, "listPets", *paths.Items["/pets"].Get.OperationID)
	assert.Nil(t, paths.Items["/pets"].Delete)
	require.NotNil(t, paths.Items["/pets/{id}"].Delete)
	assert.Equal(t, "deletePet", *paths.Items["/pets/{id}"].Delete.OperationID)
	assert.Equal(t, Extensions{"paths-note": "ignored"}, paths.Extensions)
}

func TestPathItemOperationsFixedOrder(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	item := b.pathItem(rawObject(t, `{"trace": {}, "post": {}, "get": {}, "patch": {}}`), "/paths/~1x")

	methods := make([]string, 0, 4)
	for _, operation := range item.Operations() {
		methods = append(methods, operation.UpperMethod())
	}

	assert.Equal(t, []string{"GET", "POST", "PATCH", "TRACE"}, methods)
}

func TestBuildSecurityRequirements(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		input  string
		scheme string
		scopes []string
	}{
		{name: "no scopes", input: `[{"apiKey": []}]`, scheme: "apiKey", scopes: []string{}},
		{name: "ordered scopes", input: `[{"oauth2": ["read", "write"]}]`, scheme: "oauth2", scopes: []string{"read", "write"}},
		{name: "several schemes keep last", input: `[{"b": ["x"], "a": []}]`, scheme: "b", scopes: []string{"x"}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := newBuilder(nil)
			r := b.reader("Document", "", rawObject(t, `{"security": `+tc.input+`}`))
			requirements := b.securityRequirements(r, "security")
			require.NoError(t, b.validationError())

			require.Len(t, requirements, 1)
			assert.Equal(t, tc.scheme, requirements[0].SchemeName)
			assert.Equal(t, tc.scopes, requirements[0].Scopes)
		})
	}
}

func TestBuildSecurityRequirementEmptyObjectIsAnonymous(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	requirement := b.securityRequirement(map[string]any{}, "/security/0")

	assert.True(t, requirement.IsAnonymous())
	assert.Empty(t, requirement.Scopes)
}

func TestBuildCallbackExpression(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	callback := b.callback(rawObject(t, `{
  "{$request.body#/callbackUrl}": {"post": {"operationId": "hook"}}
}`), "/paths/~1pets/post/callbacks/onCreated")
	reference := b.callback(rawObject(t, `{"$ref": "#/components/callbacks/Hook"}`), "/x")
	empty := b.callback(map[string]any{"plain": map[string]any{}}, "/y")
	require.NoError(t, b.validationError())

	assert.Equal(t, "{$request.body#/callbackUrl}", callback.Expression)
	require.NotNil(t, callback.PathItem)
	require.NotNil(t, callback.PathItem.Post)
	assert.Equal(t, "hook", *callback.PathItem.Post.OperationID)

	require.NotNil(t, reference.Ref)
	assert.Equal(t, "#/components/callbacks/Hook", *reference.Ref)
	assert.Nil(t, reference.PathItem)

	assert.True(t, empty.IsEmpty())
}

func TestBuildReferenceSkipsRequiredFields(t *testing.T) {
	t.Parallel()

	b := newBuilder(nil)
	parameter := b.parameter(rawObject(t, `{"$ref": "#/components/parameters/Limit"}`), "/p")
	scheme := b.securityScheme(rawObject(t, `{"$ref": "#/components/securitySchemes/Key"}`), "/s")
	require.NoError(t, b.validationError())

	assert.Equal(t, "#/components/parameters/Limit", *parameter.Ref)
	assert.Empty(t, parameter.Name)
	assert.Empty(t, scheme.Type)
}

func TestBuildMissingInfoTitle(t *testing.T) {
	t.Parallel()

	_, err := Build(rawObject(t, `{"openapi": "3.1.0", "info": {"version": "1"}}`), LoadOptions{})
	require.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Issues, 1)
	assert.True(t, validationErr.HasField("Info", "title"))
	assert.Equal(t, FieldIssue{
		Path:    "#/info",
		Node:    "Info",
		Field:   "title",
		Kind:    IssueMissing,
		Message: "required field is missing",
	}, validationErr.Issues[0])
	assert.Contains(t, err.Error(), "title")
}

func TestBuildCollectsEveryIssue(t *testing.T) {
	t.Parallel()

	_, err := Build(rawObject(t, `{
  "info": {"title": 1, "version": "1"},
  "servers": [{"url": "https://x", "variables": {"v": {"default": "a", "enum": []}}}],
  "paths": {
    "/pets": {"get": {"deprecated": "yes", "parameters": [{"name": "limit"}]}}
  },
  "components": {"schemas": {"Pet": {"type": [], "maxLength": -1}}}
}`), LoadOptions{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	got := make(map[string]IssueKind, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		got[issue.Path+" "+issue.Node+"."+issue.Field] = issue.Kind
	}

	want := map[string]IssueKind{
		"#/info Info.title":                            IssueType,
		"#/servers/0/variables/v ServerVariable.enum":  IssueConstraint,
		"#/paths/~1pets/get Operation.deprecated":      IssueType,
		"#/paths/~1pets/get/parameters/0 Parameter.in": IssueMissing,
		"#/components/schemas/Pet Schema.type":         IssueConstraint,
		"#/components/schemas/Pet Schema.maxLength":    IssueConstraint,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRequiresOASFields(t *testing.T) {
	t.Parallel()

	_, err := Build(rawObject(t, `{
  "info": {"title": "T", "version": "1", "license": {"identifier": "MIT"}},
  "servers": [{"description": "main", "variables": {"v": {"enum": ["a"]}}}],
  "externalDocs": {"description": "docs"},
  "paths": {"/a": {"parameters": [{"in": "query"}, {"name": "id"}]}}
}`), LoadOptions{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	got := make([]string, 0, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		assert.Equal(t, IssueMissing, issue.Kind)
		got = append(got, issue.Path+" "+issue.Node+"."+issue.Field)
	}

	assert.ElementsMatch(t, []string{
		"#/info/license License.name",
		"#/servers/0 Server.url",
		"#/servers/0/variables/v ServerVariable.default",
		"#/externalDocs ExternalDocs.url",
		"#/paths/~1a/parameters/0 Parameter.name",
		"#/paths/~1a/parameters/1 Parameter.in",
	}, got)
}

func TestBuildIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	doc, err := Build(rawObject(t, `{"openapi": "3.0.3", "info": {"title": "T", "version": "1", "unknown": true}, "whatever": 1}`), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "T", doc.Title())
	assert.Equal(t, "3.0.3", doc.Version)
}

func TestDocumentTitleFallback(t *testing.T) {
	t.Parallel()

	doc, err := Build(map[string]any{}, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "API Reference", doc.Title())
}

// ptr returns a pointer to value.
func ptr[T any](value T) *T {
	return &value
}

// rawObject decodes one JSON object into the canonical raw tree.
func rawObject(t *testing.T, text string) map[string]any {
	t.Helper()

	raw, err := decodeDocument([]byte(text), FormatJSON, "test")
	require.NoError(t, err)
	return raw
}
