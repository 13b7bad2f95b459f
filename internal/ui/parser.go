package ui

import (
	"fmt"
	"strings"
)

// ParseCSS parses a primitive stylesheet: selectors .class, #id or tag, comma-separated lists, and blocks of "key: value;".
// No combinators, no @rules. Later rules override earlier for the same node.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	content = stripCSSComments(content)
	for strings.TrimSpace(content) != "" {
		rules, rest, err := parseOneBlock(content)
		if err != nil {
			return sheet, err
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	return sheet, nil
}

// MustParseCSS is ParseCSS for embedded stylesheets; it panics on error.
func MustParseCSS(content string) *Stylesheet {
	s, err := ParseCSS(content)
	if err != nil {
		panic(err)
	}
	return s
}

func stripCSSComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			if j+1 < len(s) {
				j += 2
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseOneBlock reads the next "selectors { ... }" and returns one rule per selector plus the rest of the input.
func parseOneBlock(s string) ([]Rule, string, error) {
	open := strings.Index(s, "{")
	if open == -1 {
		return nil, "", fmt.Errorf("css: expected '{' near %q", truncate(strings.TrimSpace(s), 24))
	}
	close := findMatchingBrace(s, open)
	if close == -1 {
		return nil, "", fmt.Errorf("css: unterminated block after %q", truncate(strings.TrimSpace(s[:open]), 24))
	}
	props := ParseDeclarations(s[open+1 : close])
	var rules []Rule
	for _, sel := range strings.Split(s[:open], ",") {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}
		// Each rule gets its own map so later edits to one selector don't leak.
		p := make(map[string]string, len(props))
		for k, v := range props {
			p[k] = v
		}
		rules = append(rules, Rule{Selector: sel, Props: p})
	}
	return rules, s[close+1:], nil
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ParseDeclarations parses "key: value; key: value" (a rule body or an inline style attribute).
func ParseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(part[:colon]))
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
