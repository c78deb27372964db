// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"strings"
	"unicode"

	"github.com/grafana/regexp"
	"github.com/mitchellh/go-wordwrap"
)

var (
	// blankRunPattern matches three or more consecutive newlines.
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
	// trailingSpacePattern matches horizontal whitespace before line ends.
	trailingSpacePattern = regexp.MustCompile(`(?m)[ \t]+$`)
)

// CollapseBlankLines replaces every run of three or more newlines with
// exactly two. Applying it twice gives the same text.
func CollapseBlankLines(text string) string {
	return blankRunPattern.ReplaceAllString(text, "\n\n")
}

// normalizeOutput applies final whitespace rules to rendered text.
func normalizeOutput(text string) string {
	text = normalizeLineEndings(text)
	text = trailingSpacePattern.ReplaceAllString(text, "")
	text = CollapseBlankLines(text)
	return ensureTrailingNewline(strings.TrimLeft(text, "\n"))
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ensureTrailingNewline ends text with exactly one newline.
func ensureTrailingNewline(text string) string {
	return strings.TrimRight(text, "\n") + "\n"
}

// orNone renders empty metadata values as explicit (none) marker.
func orNone(value any) string {
	text := strings.TrimSpace(toText(value))
	if text == "" {
		return "(none)"
	}

	return text
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// wrapDescription wraps plain paragraphs at width and keeps AsciiDoc
// structures such as lists, tables and delimited blocks as written.
func wrapDescription(text string, width int) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	paragraph := make([]string, 0, 4)
	delimiter := ""

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}

		out = append(out, wordwrap.WrapString(strings.Join(paragraph, " "), uint(width)))
		paragraph = paragraph[:0]
	}

	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if isBlockDelimiter(trimmed) {
			flushParagraph()
			out = append(out, line)
			switch delimiter {
			case "":
				delimiter = trimmed
			case trimmed:
				delimiter = ""
			}

			continue
		}

		if delimiter != "" {
			out = append(out, line)
			continue
		}

		if trimmed == "" {
			flushParagraph()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}

			continue
		}

		if isStructuredLine(line) {
			flushParagraph()
			out = append(out, line)
			continue
		}

		paragraph = append(paragraph, sanitizeText(trimmed))
	}

	flushParagraph()
	return strings.Join(out, "\n")
}

// isBlockDelimiter reports whether line opens or closes a delimited block.
func isBlockDelimiter(trimmed string) bool {
	if strings.HasPrefix(trimmed, "```") {
		return true
	}

	if len(trimmed) < 4 {
		return trimmed == "|==="
	}

	for _, marker := range []byte{'-', '.', '=', '_', '*', '+', '/'} {
		if strings.Trim(trimmed, string(marker)) == "" {
			return true
		}
	}

	return strings.HasPrefix(trimmed, "|===")
}

// isStructuredLine reports whether line must bypass paragraph wrapping.
func isStructuredLine(line string) bool {
	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"* ", "- ", ". ", "#", "=", "|", "[", "//", "NOTE:", "TIP:", "WARNING:", "IMPORTANT:", "CAUTION:"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return hasOrderedListPrefix(trimmed) || strings.HasSuffix(trimmed, "::")
}

// hasOrderedListPrefix reports whether line starts with an explicit number marker.
func hasOrderedListPrefix(line string) bool {
	index := 0
	for index < len(line) && line[index] >= '0' && line[index] <= '9' {
		index++
	}

	if index == 0 || index+1 >= len(line) {
		return false
	}

	return line[index] == '.' && line[index+1] == ' '
}

// escapeCell escapes the AsciiDoc table cell separator.
func escapeCell(value any) string {
	text := toText(value)
	return strings.ReplaceAll(text, "|", `\|`)
}

// anchorID converts parts into an AsciiDoc block ID such as "schema-pet-store".
func anchorID(parts ...string) string {
	var out strings.Builder

	lastDash := true
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			switch {
			case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
				out.WriteRune(r)
				lastDash = false
			case lastDash:
				continue
			default:
				out.WriteByte('-')
				lastDash = true
			}
		}

		if !lastDash {
			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
