// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

/*
Package oasdoc renders AsciiDoc reference documentation from OpenAPI 3.x
documents written in JSON or YAML.

A document is decoded into a canonical raw tree, built into typed nodes with
every structural problem collected into one ValidationError, and rendered
through one template per node type. Templates are bundled and can be
replaced one by one from an override directory.

Convert document bytes:

	data, err := os.ReadFile("openapi.yaml")
	if err != nil {
		return err
	}

	adoc, err := oasdoc.Convert(data, oasdoc.Options{
		Source:    "openapi.yaml",
		WrapWidth: 100,
	})
	if err != nil {
		return err
	}

	fmt.Print(adoc)

Load once and render parts of the model:

	doc, err := oasdoc.LoadFile("openapi.json", oasdoc.LoadOptions{})
	if err != nil {
		var verr *oasdoc.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(verr.Details())
		}

		return err
	}

	renderer, err := oasdoc.NewRenderer(oasdoc.RenderOptions{
		TemplateDir: "./templates",
	})
	if err != nil {
		return err
	}

	text, err := renderer.Render(doc.Components.Schemas["Pet"])
	if err != nil {
		return err
	}

	fmt.Print(text)

List and print bundled templates:

	for _, name := range oasdoc.BuiltinTemplateNames() {
		fmt.Println(name)
	}

	tpl, err := oasdoc.BuiltinTemplate("schema")
	if err != nil {
		return err
	}

	fmt.Println(len(tpl) > 0)

Generate an example payload from a schema:

	payload, err := oasdoc.SchemaExample(schema, oasdoc.ExampleModeRequired, oasdoc.ExampleFormatYAML)
	if err != nil {
		return err
	}

	fmt.Println(string(payload))
*/
package oasdoc
