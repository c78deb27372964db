// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "Mini", "version": "0.1.0"},
  "paths": {
    "/ping": {"get": {"operationId": "ping", "responses": {"204": {"description": "pong"}}}}
  }
}`

func TestRunConvertWritesAsciiDocToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", fixturePath()}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.HasPrefix(stdout.String(), "= Petstore\n") {
		t.Fatalf("stdout does not start with document title: %s", stdout.String())
	}

	if !strings.Contains(stdout.String(), "==== GET List pets") {
		t.Fatalf("stdout does not contain operation heading: %s", stdout.String())
	}

	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr output: %s", stderr.String())
	}
}

func TestRunConvertWritesOutputFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "api.adoc")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "--wrap", "60", fixturePath(), outputPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output file is set: %s", stdout.String())
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if !strings.Contains(string(data), "== Components") {
		t.Fatalf("output file misses components section: %s", string(data))
	}
}

func TestRunConvertFromStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert"}, strings.NewReader(minimalDocument), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "[[operation-ping]]\n==== GET") {
		t.Fatalf("expected ping operation in output: %s", stdout.String())
	}
}

func TestRunConvertYAMLFromStdinWithFormat(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader("openapi: 3.1.0\ninfo:\n  title: Yaml API\n  version: '1'\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert", "-F", "yaml"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.HasPrefix(stdout.String(), "= Yaml API\n") {
		t.Fatalf("unexpected output: %s", stdout.String())
	}
}

func TestRunConvertTemplateOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "info.adoc.gotmpl"), []byte("Overridden {{ .Title }}\n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "-d", dir, fixturePath()}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "Overridden Petstore") {
		t.Fatalf("override template was not used: %s", stdout.String())
	}
}

func TestRunConvertVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "-v", fixturePath()}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "level=debug") || !strings.Contains(stderr.String(), "document converted") {
		t.Fatalf("expected debug log lines, got: %s", stderr.String())
	}
}

func TestRunConvertMissingTemplateDir(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing")
	code := run([]string{"convert", "-d", missing, fixturePath()}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "load templates") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunValidateReportsValidDocument(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"validate", fixturePath()}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	want := fixturePath() + `: OpenAPI 3.1.0 document "Petstore" is valid (3 operations)` + "\n"
	if stdout.String() != want {
		t.Fatalf("validate output = %q, want %q", stdout.String(), want)
	}
}

func TestRunValidateListsEveryIssue(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`{"openapi": "3.1.0", "info": {"version": 1}, "tags": [{"description": "no name"}]}`)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"validate"}, stdin, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	for _, want := range []string{
		"#/info: Info.title: required field is missing",
		"#/info: Info.version: must be a string, got number",
		"#/tags/0: Tag.name: required field is missing",
	} {
		if !strings.Contains(stderr.String(), want) {
			t.Fatalf("stderr misses %q: %s", want, stderr.String())
		}
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty on failure: %s", stdout.String())
	}
}

func TestRunValidateParseError(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"validate", "--format", "json"}, strings.NewReader("{broken"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "parse document (stdin)") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunExampleJSON(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", "-s", "Pet", fixturePath()}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	for _, want := range []string{`"id": 0`, `"email": "<email>"`, `"weight": 0.0`} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("example output misses %q: %s", want, stdout.String())
		}
	}
}

func TestRunExampleRequiredYAML(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", "-s", "Pet", "-m", "required", "-o", "yaml", fixturePath()}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	got := stdout.String()
	for _, want := range []string{"id: 0", "# Pet name.", "name: <string>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("example output misses %q: %s", want, got)
		}
	}

	if strings.Contains(got, "owner") {
		t.Fatalf("required mode must skip optional properties: %s", got)
	}
}

func TestRunExampleUnknownSchema(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", "-s", "Nope", fixturePath()}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), `schema "Nope" not found`) {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunTemplatePrintsBuiltin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template", "schema"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), `template "schema"`) {
		t.Fatalf("schema template text expected, got: %s", stdout.String())
	}
}

func TestRunTemplateUnknownName(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template", "nope"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "template not found") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunTemplatesListsNames(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"templates"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	names := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(names) != 28 {
		t.Fatalf("templates count = %d, want 28: %v", len(names), names)
	}

	if names[0] != "callback" || names[len(names)-1] != "xml" {
		t.Fatalf("templates are not sorted: %v", names)
	}
}

func TestRunWithoutCommandFails(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run exit code = %d, want 2", code)
	}

	if stderr.Len() == 0 {
		t.Fatal("stderr should explain the missing command")
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, want 0", code)
	}

	if !strings.Contains(stdout.String(), "convert openapi.yaml") {
		t.Fatalf("help should include examples: %s", stdout.String())
	}
}

func TestRunMissingInputFile(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", filepath.Join(t.TempDir(), "missing.json")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "read document input") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunEmptyStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"validate"}, strings.NewReader("  \n"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "empty input") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "version:  "+Version) {
		t.Fatalf("unexpected version output: %s", stdout.String())
	}
}

// fixturePath returns the shared petstore fixture of the root package.
func fixturePath() string {
	return filepath.Join("..", "..", "testdata", "petstore.json")
}
