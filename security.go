// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

// SecurityScheme is the Security Scheme Object. Type is required unless Ref is set.
type SecurityScheme struct {
	Ref              *string
	Type             string
	Description      *string
	Name             *string
	In               *string
	Scheme           *string
	BearerFormat     *string
	Flows            *OAuthFlows
	OpenIDConnectURL *string
	Extensions       Extensions
}

// OAuthFlows lists the configured OAuth 2 flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	Extensions        Extensions
}

// NamedFlow pairs an OAuth flow with its wire name.
type NamedFlow struct {
	Name string
	Flow *OAuthFlow
}

// Flows returns the configured flows in declaration order of the OAuth Flows Object.
func (f *OAuthFlows) Flows() []NamedFlow {
	if f == nil {
		return nil
	}

	candidates := []NamedFlow{
		{Name: "implicit", Flow: f.Implicit},
		{Name: "password", Flow: f.Password},
		{Name: "clientCredentials", Flow: f.ClientCredentials},
		{Name: "authorizationCode", Flow: f.AuthorizationCode},
	}

	out := make([]NamedFlow, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Flow != nil {
			out = append(out, candidate)
		}
	}

	return out
}

// Label returns a human-readable flow name.
func (f NamedFlow) Label() string {
	switch f.Name {
	case "clientCredentials":
		return "Client credentials"
	case "authorizationCode":
		return "Authorization code"
	case "implicit":
		return "Implicit"
	case "password":
		return "Password"
	default:
		return f.Name
	}
}

// OAuthFlow is one OAuth Flow Object.
type OAuthFlow struct {
	AuthorizationURL *string
	TokenURL         *string
	RefreshURL       *string
	Scopes           map[string]string
	Extensions       Extensions
}

// SecurityRequirement pairs one scheme name with its required scopes.
// An empty SchemeName is the optional-security requirement "{}".
type SecurityRequirement struct {
	SchemeName string
	Scopes     []string
}

// IsAnonymous reports whether the requirement is the empty object.
func (s *SecurityRequirement) IsAnonymous() bool {
	return s == nil || s.SchemeName == ""
}

func (b *builder) securityScheme(raw map[string]any, path string) *SecurityScheme {
	extensions, fields := splitExtensions(raw)
	r := b.reader("SecurityScheme", path, fields)

	return &SecurityScheme{
		Ref:              r.str(refKey),
		Type:             r.requiredUnlessRef("type"),
		Description:      r.str("description"),
		Name:             r.str("name"),
		In:               r.str("in"),
		Scheme:           r.str("scheme"),
		BearerFormat:     r.str("bearerFormat"),
		Flows:            buildOne(r, "flows", b.oauthFlows),
		OpenIDConnectURL: r.str("openIdConnectUrl"),
		Extensions:       extensions,
	}
}

func (b *builder) oauthFlows(raw map[string]any, path string) *OAuthFlows {
	extensions, fields := splitExtensions(raw)
	r := b.reader("OAuthFlows", path, fields)

	return &OAuthFlows{
		Implicit:          buildOne(r, "implicit", b.oauthFlow),
		Password:          buildOne(r, "password", b.oauthFlow),
		ClientCredentials: buildOne(r, "clientCredentials", b.oauthFlow),
		AuthorizationCode: buildOne(r, "authorizationCode", b.oauthFlow),
		Extensions:        extensions,
	}
}

func (b *builder) oauthFlow(raw map[string]any, path string) *OAuthFlow {
	extensions, fields := splitExtensions(raw)
	r := b.reader("OAuthFlow", path, fields)

	return &OAuthFlow{
		AuthorizationURL: r.str("authorizationUrl"),
		TokenURL:         r.str("tokenUrl"),
		RefreshURL:       r.str("refreshUrl"),
		Scopes:           r.stringMap("scopes"),
		Extensions:       extensions,
	}
}

// securityRequirement reshapes one requirement object and keeps a single
// scheme/scope pair.
func (b *builder) securityRequirement(raw map[string]any, path string) *SecurityRequirement {
	shaped, schemes := normalizeSecurityRequirement(raw)
	if schemes == 0 {
		return &SecurityRequirement{}
	}

	r := b.reader("SecurityRequirement", path, shaped)
	scheme := r.requiredStr(shapeScheme)
	if schemes > 1 {
		b.warn("security requirement names several schemes, keeping the last one", path,
			"schemes", schemes, "kept", scheme)
	}

	scopes := r.stringList(shapeScopes)
	if scopes == nil {
		scopes = []string{}
	}

	return &SecurityRequirement{
		SchemeName: scheme,
		Scopes:     scopes,
	}
}

// securityRequirements builds a security list of Document or Operation.
func (b *builder) securityRequirements(r fieldReader, key string) []*SecurityRequirement {
	return buildList(r, key, b.securityRequirement)
}
