// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

// oasdoc generates AsciiDoc reference documentation from OpenAPI documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/oasdoc"
)

// stdinSource marks documents read from standard input.
const stdinSource = "(stdin)"

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/oasdoc"
	_buildTime string
)

// cliOptions describes oasdoc CLI flags and subcommands.
type cliOptions struct {
	Version   versionCommand   `command:"version" description:"Print version information"`
	Convert   convertCommand   `command:"convert" description:"Convert OpenAPI document to AsciiDoc"`
	Validate  validateCommand  `command:"validate" description:"Build OpenAPI document and report issues"`
	Example   exampleCommand   `command:"example" description:"Generate example payload for a component schema"`
	Template  templateCommand  `command:"template" description:"Print built-in AsciiDoc template"`
	Templates templatesCommand `command:"templates" description:"List built-in AsciiDoc template names"`
}

// inputFlags groups document decoding flags.
type inputFlags struct {
	Format  string `short:"F" long:"format" description:"Input document format" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug messages to stderr"`
}

// renderFlags groups AsciiDoc rendering flags.
type renderFlags struct {
	TemplateDir string `short:"d" long:"templates" description:"Directory with template overrides (<name>.adoc.gotmpl)"`
	WrapWidth   int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions" default:"100"`
}

// convertCommand converts a document to AsciiDoc.
type convertCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input document path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output AsciiDoc file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	InputFlags  inputFlags  `group:"Input"`
	RenderFlags renderFlags `group:"AsciiDoc Render"`
}

// Execute runs convert subcommand.
func (command *convertCommand) Execute(_ []string) error {
	return command.runner.runConvert(command.InputFlags, command.RenderFlags, command.Args.Input, command.Args.Output)
}

// validateCommand builds a document without rendering.
type validateCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input document path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	InputFlags inputFlags `group:"Input"`
}

// Execute runs validate subcommand.
func (command *validateCommand) Execute(_ []string) error {
	return command.runner.runValidate(command.InputFlags, command.Args.Input)
}

// exampleCommand generates an example payload for one component schema.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input document path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Schema     string     `short:"s" long:"schema" description:"Name of the schema under components.schemas" required:"yes"`
	Mode       string     `short:"m" long:"mode" description:"Properties included in the example" choice:"all" choice:"required" default:"all"`
	Encoding   string     `short:"o" long:"encoding" description:"Example output encoding" choice:"json" choice:"yaml" default:"json"`
	InputFlags inputFlags `group:"Input"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(
		command.InputFlags,
		command.Schema,
		oasdoc.ExampleMode(command.Mode),
		oasdoc.ExampleFormat(command.Encoding),
		command.Args.Input,
		command.Args.Output,
	)
}

// templateCommand exports one built-in template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Name   string `positional-arg-name:"name" description:"Template name (see templates command)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.Args.Name, command.Args.Output)
}

// templatesCommand lists built-in template names.
type templatesCommand struct {
	runner *cliRunner
}

// Execute runs templates subcommand.
func (command *templatesCommand) Execute(_ []string) error {
	return command.runner.runTemplates()
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "oasdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)

	var validationErr *oasdoc.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = io.WriteString(runner.stderr, validationErr.Details()+"\n")
	}

	return 1
}

// newLogger builds the stderr logfmt logger; debug lines need --verbose.
func (runner *cliRunner) newLogger(verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(runner.stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}

	return level.NewFilter(logger, level.AllowWarn())
}

// loadDocument reads and builds the input document.
func (runner *cliRunner) loadDocument(input inputFlags, logger log.Logger, inputPath string) (string, *oasdoc.Document, error) {
	data, source, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return "", nil, fmt.Errorf("read document input: %w", err)
	}

	doc, err := oasdoc.Load(data, oasdoc.LoadOptions{
		Format: oasdoc.InputFormat(input.Format),
		Source: source,
		Logger: logger,
	})
	if err != nil {
		return "", nil, fmt.Errorf("load document: %w", err)
	}

	return source, doc, nil
}

// runConvert renders AsciiDoc from the input document and writes result to stdout or file.
func (runner *cliRunner) runConvert(input inputFlags, render renderFlags, inputPath, outputPath string) error {
	logger := runner.newLogger(input.Verbose)

	source, doc, err := runner.loadDocument(input, logger, inputPath)
	if err != nil {
		return err
	}

	renderer, err := oasdoc.NewRenderer(oasdoc.RenderOptions{
		TemplateDir: render.TemplateDir,
		WrapWidth:   render.WrapWidth,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	rendered, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render asciidoc: %w", err)
	}

	_ = level.Debug(logger).Log("msg", "document converted", "source", source, "bytes", len(rendered))
	return runner.writeOutput(outputPath, "asciidoc", []byte(rendered))
}

// runValidate builds the input document and reports the outcome.
func (runner *cliRunner) runValidate(input inputFlags, inputPath string) error {
	logger := runner.newLogger(input.Verbose)

	source, doc, err := runner.loadDocument(input, logger, inputPath)
	if err != nil {
		return err
	}

	operations := 0
	if doc.Paths != nil {
		for _, item := range doc.Paths.Items {
			operations += len(item.Operations())
		}
	}

	_, err = fmt.Fprintf(runner.stdout, "%s: OpenAPI %s document %q is valid (%d operations)\n",
		source, orUnknown(doc.Version), doc.Title(), operations)
	if err != nil {
		return fmt.Errorf("write report to stdout: %w", err)
	}

	return nil
}

// runExample writes an example payload for one component schema.
func (runner *cliRunner) runExample(input inputFlags, schemaName string, mode oasdoc.ExampleMode, format oasdoc.ExampleFormat, inputPath, outputPath string) error {
	logger := runner.newLogger(input.Verbose)

	_, doc, err := runner.loadDocument(input, logger, inputPath)
	if err != nil {
		return err
	}

	schemaName = strings.TrimSpace(schemaName)
	var schema *oasdoc.SchemaNode
	if doc.Components != nil {
		schema = doc.Components.Schemas[schemaName]
	}

	if schema == nil {
		return fmt.Errorf("schema %q not found in components.schemas", schemaName)
	}

	payload, err := oasdoc.SchemaExample(schema, mode, format)
	if err != nil {
		return fmt.Errorf("generate example for %q: %w", schemaName, err)
	}

	return runner.writeOutput(outputPath, "example", payload)
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := oasdoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, "template", []byte(tpl))
}

// runTemplates lists built-in template names, one per line.
func (runner *cliRunner) runTemplates() error {
	names := oasdoc.BuiltinTemplateNames()
	if _, err := io.WriteString(runner.stdout, strings.Join(names, "\n")+"\n"); err != nil {
		return fmt.Errorf("write template names to stdout: %w", err)
	}

	return nil
}

// writeOutput writes data to outputPath or stdout when the path is empty.
func (runner *cliRunner) writeOutput(outputPath, kind string, data []byte) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// readDocumentInput reads a document from file path or stdin and returns source marker.
func (runner *cliRunner) readDocumentInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read document file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read document from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read document from stdin: empty input")
	}

	return data, stdinSource, nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// orUnknown substitutes an empty value.
func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(unknown)"
	}

	return value
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Convert.runner = runner
	options.Validate.runner = runner
	options.Example.runner = runner
	options.Template.runner = runner
	options.Templates.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"convert": strings.TrimSpace(fmt.Sprintf(`
Convert OpenAPI 3.x document (JSON or YAML) to AsciiDoc.
Reads document from file argument or stdin; writes AsciiDoc to file argument or stdout.
Templates found in --templates directory replace the bundled ones with the same name.

Examples:
> $ %s convert openapi.yaml > api.adoc
> $ cat openapi.json | %s convert -d templates/ -w 80 > api.adoc
`, programName, programName)),
		"validate": strings.TrimSpace(fmt.Sprintf(`
Build OpenAPI document without rendering and print every structural issue.

Examples:
> $ %s validate openapi.yaml
`, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate example payload from a schema declared in components.schemas.
References are not followed; they appear as "<Name>" placeholders.

Examples:
> $ %s example -s Pet openapi.yaml
> $ %s example -s Pet -m required -o yaml openapi.yaml pet.example.yaml
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in AsciiDoc template text.
Use it as a starting point for an override in a --templates directory.

Examples:
> $ %s template schema > templates/schema.adoc.gotmpl
> $ %s template operation templates/operation.adoc.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
	return err
}
