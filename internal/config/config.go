// Package config provides YAML-based configuration for the firetower
// terminal client: board theme (glyphs and colors) and default seating.
// Board size and the eternal flame layout are rules constants and are
// deliberately not configurable.
package config

import (
	"github.com/pkamenev/firetower/internal/core"
	"github.com/pkamenev/firetower/internal/engine"
)

// Config is the full client configuration.
type Config struct {
	Theme   Theme   `yaml:"theme"`
	Seating Seating `yaml:"seating"`
}

// Theme selects the glyphs and colors used to draw the board.
type Theme struct {
	TreeGlyph      string `yaml:"tree_glyph"`
	FireGlyph      string `yaml:"fire_glyph"`
	FirebreakGlyph string `yaml:"firebreak_glyph"`

	TreeColor      string `yaml:"tree_color"`
	FireColor      string `yaml:"fire_color"`
	FirebreakColor string `yaml:"firebreak_color"`
	TowerColor     string `yaml:"tower_color"`
	HomeColor      string `yaml:"home_color"`
}

// Seating holds the default table setup used when the play command gets
// no explicit players.
type Seating struct {
	// Count is the default number of players (2-4).
	Count int `yaml:"count"`
	// Names seeds player names in seat order; missing entries fall back
	// to positional placeholders.
	Names []string `yaml:"names"`
}

// colorNames maps configuration color names to screen colors.
var colorNames = map[string]core.Color{
	"default": core.ColorDefault,
	"red":     core.ColorRed,
	"green":   core.ColorGreen,
	"yellow":  core.ColorYellow,
	"blue":    core.ColorBlue,
	"magenta": core.ColorMagenta,
	"purple":  core.ColorMagenta,
	"cyan":    core.ColorCyan,
	"white":   core.ColorWhite,
	"orange":  core.ColorOrange,
	"brown":   core.ColorBrown,
	"gray":    core.ColorGray,
}

// ParseColor resolves a configured color name, falling back to the
// default color for unknown names.
func ParseColor(name string) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return core.ColorDefault
}

// TileGlyph returns the rune drawn for a tile status.
func (t Theme) TileGlyph(st engine.TileStatus) rune {
	glyph := func(s string, fallback rune) rune {
		for _, r := range s {
			return r
		}
		return fallback
	}
	switch st {
	case engine.Fire:
		return glyph(t.FireGlyph, '*')
	case engine.Firebreak:
		return glyph(t.FirebreakGlyph, 'o')
	case engine.Tree:
		return glyph(t.TreeGlyph, '^')
	default:
		return ' '
	}
}

// TileColor returns the color drawn for a tile status.
func (t Theme) TileColor(st engine.TileStatus) core.Color {
	switch st {
	case engine.Fire:
		return ParseColor(t.FireColor)
	case engine.Firebreak:
		return ParseColor(t.FirebreakColor)
	case engine.Tree:
		return ParseColor(t.TreeColor)
	default:
		return core.ColorDefault
	}
}
