package ui

import (
	"fmt"
	stdhtml "html"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

// blockTags become nodes; every other tag is inline and only contributes its text to the enclosing block.
var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true,
	"p": true, "div": true, "ul": true, "ol": true, "li": true,
}

// ParseHTML converts a small HTML fragment into overlay nodes. Block elements become nodes typed by tag
// with their class attribute; inline text is collapsed into the enclosing block. The first link href
// inside a block is kept in Attrs["href"]. Unknown end tags are ignored.
func ParseHTML(content string) ([]*Node, error) {
	root := NewNode("fragment", "", "", "")
	stack := []*Node{root}
	var tag string // last start tag, for attribute tokens

	l := html.NewLexer(parse.NewInputString(content))
	for {
		tt, data := l.Next()
		switch tt {
		case html.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return nil, fmt.Errorf("parse panel html: %w", err)
			}
			for _, n := range stack {
				n.Text = collapse(n.Text)
			}
			if root.Text != "" {
				return append([]*Node{NewNode("p", "", "", root.Text)}, root.Children...), nil
			}
			return root.Children, nil
		case html.StartTagToken:
			tag = strings.ToLower(string(l.Text()))
			if blockTags[tag] {
				n := NewNode(tag, "", "", "")
				top := stack[len(stack)-1]
				top.Append(n)
				stack = append(stack, n)
			}
		case html.AttributeToken:
			name := strings.ToLower(string(l.Text()))
			val := stdhtml.UnescapeString(strings.Trim(string(l.AttrVal()), `"'`))
			top := stack[len(stack)-1]
			switch {
			case blockTags[tag] && name == "class":
				top.Class = val
			case blockTags[tag] && name == "id":
				top.ID = val
			case blockTags[tag] && name == "style":
				for k, v := range ParseDeclarations(val) {
					top.SetStyle(k, v)
				}
			case tag == "a" && name == "href":
				if top.Attrs == nil {
					top.Attrs = make(map[string]string)
				}
				if _, ok := top.Attrs["href"]; !ok {
					top.Attrs["href"] = val
				}
			}
		case html.EndTagToken:
			name := strings.ToLower(string(l.Text()))
			if !blockTags[name] {
				continue
			}
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Type == name {
					for _, n := range stack[i:] {
						n.Text = collapse(n.Text)
					}
					stack = stack[:i]
					break
				}
			}
		case html.TextToken:
			top := stack[len(stack)-1]
			top.Text += stdhtml.UnescapeString(string(data))
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
