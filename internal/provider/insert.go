package provider

import (
	"regexp"
	"strings"
)

// arrayOpenPattern locates the opening token of the returned array literal.
// The return statement must start its line so mentions inside comments or
// docblocks are not matched.
var arrayOpenPattern = regexp.MustCompile(`(?m)^[ \t]*return\s*(\[|array\s*\()`)

// arrayIndent is used for tuples inserted into an array literal.
const arrayIndent = "    "

// InsertAfterAnchor inserts line on its own line directly after the line
// holding anchor, reusing that line's indentation. It reports false when
// anchor does not occur in content.
func InsertAfterAnchor(content, anchor, line string) (string, bool) {
	idx := strings.Index(content, anchor)
	if idx < 0 {
		return content, false
	}

	lineStart := strings.LastIndexByte(content[:idx], '\n') + 1
	indent := leadingWhitespace(content[lineStart:idx])

	lineEnd := strings.IndexByte(content[idx:], '\n')
	if lineEnd < 0 {
		return content + lineEnding(content, len(content)) + indent + line, true
	}
	pos := idx + lineEnd + 1

	return content[:pos] + indent + line + lineEnding(content, idx) + content[pos:], true
}

// InsertIntoArray inserts line as the first element of the returned array
// literal. It reports false when no `return [` or `return array(` occurs.
func InsertIntoArray(content, line string) (string, bool) {
	loc := arrayOpenPattern.FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	pos := loc[1]
	eol := lineEnding(content, pos)

	rest := content[pos:]
	trimmed := strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(trimmed, "]") || strings.HasPrefix(trimmed, ")") {
		// Empty literal: close it on its own line.
		rest = eol + trimmed
	}

	return content[:pos] + eol + arrayIndent + line + rest, true
}

// lineEnding returns the line terminator of the line containing offset.
// A line without a terminator follows the first one used in content.
func lineEnding(content string, offset int) string {
	if end := strings.IndexByte(content[offset:], '\n'); end >= 0 {
		if end > 0 && content[offset+end-1] == '\r' {
			return "\r\n"
		}
		if end == 0 && offset > 0 && content[offset-1] == '\r' {
			return "\r\n"
		}
		return "\n"
	}
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
