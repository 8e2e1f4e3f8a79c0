// Package theme persists the light/dark preference under storage.ThemeKey.
package theme

import (
	"fmt"
	"log/slog"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/storage"
)

// Preference is the stored theme.
type Preference struct {
	kv      storage.Storage
	current ragechat.Theme
}

// Load reads the stored theme. An absent or unrecognized value yields
// ragechat.DefaultTheme.
func Load(kv storage.Storage) (*Preference, error) {
	raw, ok, err := kv.Get(storage.ThemeKey)
	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}

	current := ragechat.DefaultTheme
	if ok {
		if t, err := ragechat.ParseTheme(raw); err == nil {
			current = t
		} else {
			slog.Debug("ignoring stored theme", "value", raw)
		}
	}
	return &Preference{kv: kv, current: current}, nil
}

// Current returns the active theme.
func (p *Preference) Current() ragechat.Theme {
	return p.current
}

// Set makes t the active theme and stores it.
func (p *Preference) Set(t ragechat.Theme) error {
	p.current = t
	if err := p.kv.Set(storage.ThemeKey, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle flips between light and dark and stores the result.
func (p *Preference) Toggle() (ragechat.Theme, error) {
	next := p.current.Toggle()
	return next, p.Set(next)
}
