package common

import (
	"regexp"
	"strings"
)

var (
	lineCommentRegex  = regexp.MustCompile(`(?m)^\s*--.*$`)
	blockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
	quotedRegex       = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`")
)

// SplitStatements splits a SQL script on semicolons that are not inside quoted
// strings or identifiers. Comments and empty statements are dropped.
func SplitStatements(script string) []string {
	script = blockCommentRegex.ReplaceAllString(script, "")
	script = lineCommentRegex.ReplaceAllString(script, "")

	quoted := make(map[int]bool)
	for _, match := range quotedRegex.FindAllStringIndex(script, -1) {
		for i := match[0]; i < match[1]; i++ {
			quoted[i] = true
		}
	}

	statements := make([]string, 0, strings.Count(script, ";")+1)
	var current strings.Builder

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i, char := range script {
		if char == ';' && !quoted[i] {
			flush()
			continue
		}
		current.WriteRune(char)
	}
	flush()

	return statements
}
