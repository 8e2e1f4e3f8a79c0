// Package render turns message content into display markup.
package render

import (
	"regexp"
	"strings"
)

// fencePattern matches a fenced block: three backticks, an optional word
// language tag, a newline, then everything up to the next three backticks.
var fencePattern = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")

// FenceMarker is the fence delimiter.
const FenceMarker = "```"

// DefaultLanguage labels a block that has no language tag.
const DefaultLanguage = "text"

// CodeBlock is one fenced block of a message.
type CodeBlock struct {
	Language string // tag after the opening fence, DefaultLanguage if absent
	Code     string // trimmed body, unescaped
}

// Segment is a run of message content: plain Text, or a Block when non-nil.
type Segment struct {
	Text  string
	Block *CodeBlock
}

// Split cuts content into plain and fenced segments in order.
func Split(content string) []Segment {
	matches := fencePattern.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return []Segment{{Text: content}}
	}

	var segs []Segment
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segs = append(segs, Segment{Text: content[last:m[0]]})
		}
		lang := DefaultLanguage
		if m[2] >= 0 {
			lang = content[m[2]:m[3]]
		}
		segs = append(segs, Segment{Block: &CodeBlock{
			Language: lang,
			Code:     strings.TrimSpace(content[m[4]:m[5]]),
		}})
		last = m[1]
	}
	if last < len(content) {
		segs = append(segs, Segment{Text: content[last:]})
	}
	return segs
}

// CodeBlocks returns the fenced blocks of content in order.
func CodeBlocks(content string) []CodeBlock {
	var blocks []CodeBlock
	for _, s := range Split(content) {
		if s.Block != nil {
			blocks = append(blocks, *s.Block)
		}
	}
	return blocks
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes exactly & < > " and '.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
