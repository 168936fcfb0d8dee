// Package preset provides named parameter bundles for puzzle generation,
// with a built-in table and optional overrides from a TOML file.
package preset

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/sbj42/hamilton/internal/generator"
	"github.com/sbj42/hamilton/internal/solver"
)

// Preset names a set of generation parameters.
type Preset struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Diagonal   bool   `toml:"diagonal"`
	KeepEnds   bool   `toml:"keep_ends"`
	Pattern    string `toml:"pattern"`
	Difficulty string `toml:"difficulty"`
}

// Builtin returns the standard presets.
func Builtin() []Preset {
	return []Preset{
		{Title: "7x7 Easy", Width: 7, Height: 7, Pattern: "rot2", Difficulty: "easy"},
		{Title: "7x7 Ring", Width: 7, Height: 7, Pattern: "ring", Difficulty: "hard"},
		{Title: "7x7 Border", Width: 7, Height: 7, Pattern: "border", Difficulty: "hard"},
		{Title: "7x7 Hard", Width: 7, Height: 7, Pattern: "rot2", Difficulty: "hard"},
		{Title: "9x9 Easy", Width: 9, Height: 9, Pattern: "rot2", Difficulty: "easy"},
		{Title: "9x9 Hard", Width: 9, Height: 9, Pattern: "rot2", Difficulty: "hard"},
	}
}

// Load reads presets from a TOML file. The file holds a list of
// [[preset]] tables with the Preset fields.
func Load(filename string) ([]Preset, error) {
	var file struct {
		Preset []Preset `toml:"preset"`
	}
	if _, err := toml.DecodeFile(filename, &file); err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	return file.Preset, nil
}

// Find returns the preset with the given title.
func Find(presets []Preset, title string) (Preset, bool) {
	for _, p := range presets {
		if p.Title == title {
			return p, true
		}
	}
	return Preset{}, false
}

// Options converts the preset to generator options.
func (p Preset) Options() (*generator.Options, error) {
	o := generator.DefaultOptions()
	o.Width = p.Width
	o.Height = p.Height
	o.Diagonal = p.Diagonal
	o.KeepEnds = p.KeepEnds

	if p.Pattern != "" {
		pattern, err := generator.ParsePattern(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Title, err)
		}
		o.Pattern = pattern
	}
	if p.Difficulty != "" {
		difficulty, err := solver.ParseDifficulty(p.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Title, err)
		}
		o.Difficulty = difficulty
	}
	return o, nil
}
