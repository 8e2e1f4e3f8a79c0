// Package ragechat provides the core types shared by the chat components.
// This package defines the Message model, the sender and theme enums and the
// Rand source that every component draws its randomness from.
package ragechat

import (
	"fmt"
	"strings"
)

// Rand is the random source injected into the response engine, the typing
// simulator and the session controller.
//
// *math/rand/v2.Rand satisfies it, so tests can pass a seeded generator:
//
//	rnd := rand.New(rand.NewPCG(1, 2))
//	engine := response.NewEngine(response.DefaultPack(), rnd)
type Rand interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Int64N returns a value in [0, n). It panics if n <= 0.
	Int64N(n int64) int64

	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no preference is stored.
const DefaultTheme = ThemeLight

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme parses "light" or "dark" (case-insensitive, surrounding spaces ignored).
//
// Example:
//
//	theme, err := ParseTheme(" Dark ")
//	// theme = ThemeDark
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("invalid theme: %q (expected light or dark)", s)
	}
}
