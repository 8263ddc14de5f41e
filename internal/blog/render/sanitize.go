package render

import (
	"strings"

	"golang.org/x/net/html"
)

// droppedElements are removed together with their contents.
var droppedElements = map[string]bool{
	"script": true,
	"style":  true,
	"iframe": true,
	"object": true,
	"embed":  true,
}

// Sanitize strips active content from article HTML: dropped elements
// disappear with their children, event handler attributes and javascript:
// URLs are removed, everything else passes through re-serialized.
//
// Malformed input that the tokenizer cannot walk degrades to escaped text
// rather than leaking raw markup.
func Sanitize(input string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(input))

	var b strings.Builder
	depth := 0 // inside a dropped element when > 0
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			return b.String()
		}
		token := tokenizer.Token()

		switch tokenType {
		case html.StartTagToken:
			if droppedElements[token.Data] {
				depth++
				continue
			}
			if depth > 0 {
				continue
			}
			token.Attr = cleanAttributes(token.Attr)
			b.WriteString(token.String())
		case html.EndTagToken:
			if droppedElements[token.Data] {
				if depth > 0 {
					depth--
				}
				continue
			}
			if depth > 0 {
				continue
			}
			b.WriteString(token.String())
		case html.SelfClosingTagToken:
			if depth > 0 || droppedElements[token.Data] {
				continue
			}
			token.Attr = cleanAttributes(token.Attr)
			b.WriteString(token.String())
		case html.TextToken:
			if depth > 0 {
				continue
			}
			b.WriteString(html.EscapeString(token.Data))
		case html.CommentToken, html.DoctypeToken:
			// dropped
		}
	}
}

func cleanAttributes(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, attr := range attrs {
		name := strings.ToLower(attr.Key)
		if strings.HasPrefix(name, "on") {
			continue
		}
		if (name == "href" || name == "src") && hasJavascriptScheme(attr.Val) {
			continue
		}
		kept = append(kept, attr)
	}
	return kept
}

func hasJavascriptScheme(value string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	return strings.HasPrefix(trimmed, "javascript:")
}
