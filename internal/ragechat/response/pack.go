package response

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidPack is returned when a response pack fails validation.
var ErrInvalidPack = errors.New("invalid response pack")

// Category is one keyword bucket. Categories are checked in pack order and
// the first whose keyword occurs in the input wins.
type Category struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"` // matched as lowercase substrings
	Replies  []string `toml:"replies"`  // one reply is returned as-is, more are picked at random
}

// Pack holds every canned string the chat uses.
type Pack struct {
	Categories   []Category `toml:"category"`
	Fallback     []string   `toml:"fallback"`
	PanicPhrases []string   `toml:"panic_phrases"`
	QuickPrompts []string   `toml:"quick_prompts"`
}

// LoadPack loads a TOML response pack file and validates it
func LoadPack(filePath string) (*Pack, error) {
	var pack Pack
	if _, err := toml.DecodeFile(filePath, &pack); err != nil {
		return nil, fmt.Errorf("error decoding response pack: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}
	return &pack, nil
}

// Encode writes the pack as TOML.
func (p *Pack) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Validate checks that every category can match and answer, and that the
// fallback bucket and panic phrases are non-empty.
func (p *Pack) Validate() error {
	for i, c := range p.Categories {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if len(c.Keywords) == 0 {
			return fmt.Errorf("%w: category %s has no keywords", ErrInvalidPack, name)
		}
		for _, k := range c.Keywords {
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("%w: category %s has an empty keyword", ErrInvalidPack, name)
			}
		}
		if len(c.Replies) == 0 {
			return fmt.Errorf("%w: category %s has no replies", ErrInvalidPack, name)
		}
	}
	if len(p.Fallback) == 0 {
		return fmt.Errorf("%w: fallback bucket is empty", ErrInvalidPack)
	}
	if len(p.PanicPhrases) == 0 {
		return fmt.Errorf("%w: panic phrases are empty", ErrInvalidPack)
	}
	return nil
}
