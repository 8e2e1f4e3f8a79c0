// Package response selects canned replies by keyword.
package response

import (
	"strings"

	"github.com/longkey1/ragechat/internal/ragechat"
)

// Engine maps user text to a reply. It keeps no state between calls.
type Engine struct {
	categories []Category
	fallback   []string
	rnd        ragechat.Rand
}

// NewEngine creates an engine over a validated pack.
// Keywords are lowercased once here so matching is case-insensitive.
func NewEngine(pack *Pack, rnd ragechat.Rand) *Engine {
	categories := make([]Category, len(pack.Categories))
	for i, c := range pack.Categories {
		keywords := make([]string, len(c.Keywords))
		for j, k := range c.Keywords {
			keywords[j] = strings.ToLower(k)
		}
		categories[i] = Category{Name: c.Name, Keywords: keywords, Replies: c.Replies}
	}
	return &Engine{
		categories: categories,
		fallback:   pack.Fallback,
		rnd:        rnd,
	}
}

// Reply returns the reply for text.
func (e *Engine) Reply(text string) string {
	if c := e.match(text); c != nil {
		return e.pick(c.Replies)
	}
	return e.pick(e.fallback)
}

// Classify returns the name of the category Reply would answer from,
// or CategoryFallback when nothing matches.
func (e *Engine) Classify(text string) string {
	if c := e.match(text); c != nil {
		return c.Name
	}
	return CategoryFallback
}

// match returns the first category with a keyword inside text. Later
// categories are never consulted once one matches.
func (e *Engine) match(text string) *Category {
	lower := strings.ToLower(text)
	for i := range e.categories {
		for _, k := range e.categories[i].Keywords {
			if strings.Contains(lower, k) {
				return &e.categories[i]
			}
		}
	}
	return nil
}

func (e *Engine) pick(replies []string) string {
	if len(replies) == 1 {
		return replies[0]
	}
	return replies[e.rnd.IntN(len(replies))]
}
