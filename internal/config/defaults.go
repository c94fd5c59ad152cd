package config

import (
	_ "embed"
)

//go:embed defaults/firetower.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded
// defaults file: the classic glyphs and colors of the board game.
func Default() Config {
	return Config{
		Theme: Theme{
			TreeGlyph:      "^",
			FireGlyph:      "*",
			FirebreakGlyph: "o",
			TreeColor:      "green",
			FireColor:      "orange",
			FirebreakColor: "purple",
			TowerColor:     "brown",
			HomeColor:      "white",
		},
		Seating: Seating{
			Count: 4,
		},
	}
}
