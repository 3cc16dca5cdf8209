package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/batch"
	"github.com/gogpu/ink/internal/texcache"
)

// Default setting values.
const (
	// DefaultFillThreshold is the fill alpha at or below which solid fills
	// are skipped.
	DefaultFillThreshold = 0.001

	// DefaultLivePreviewAlpha is the alpha used to preview procedural fills
	// of the stroke being drawn.
	DefaultLivePreviewAlpha = 0.5

	// DefaultBrushThickness is used for the live buffer when no brush is
	// active.
	DefaultBrushThickness = 3
)

// Onion-skin falloff constants.
const (
	// onionFalloff scales the distance falloff of stepped ghost frames.
	onionFalloff = 0.66

	// onionPrevDivisor divides the alpha of the single previous ghost.
	onionPrevDivisor = 7

	// onionNextDivisor divides the alpha of the single next ghost.
	onionNextDivisor = 4
)

// Settings holds the tunable engine parameters.
//
// Settings can be loaded from a TOML or YAML file:
//
//	fill_threshold = 0.001
//	slot_chunk = 8
//	ghost_color = [0.1, 0.1, 0.9, 1.0]
//	live_preview_alpha = 0.5
//	texture_budget_mb = 64
type Settings struct {
	// FillThreshold is the fill alpha a solid fill must exceed to be drawn.
	FillThreshold float32 `toml:"fill_threshold" yaml:"fill_threshold"`

	// SlotChunk is the number of cache slots allocated per growth step.
	SlotChunk int `toml:"slot_chunk" yaml:"slot_chunk"`

	// GhostColor is the onion-skin tint of layers without a custom ghost
	// color, as RGBA components. Such layers keep their material colors,
	// so only the alpha set by the onion falloff reaches the strokes.
	GhostColor [4]float32 `toml:"ghost_color" yaml:"ghost_color"`

	// LivePreviewAlpha is the alpha of the simulated fill of a live
	// buffer with a procedural fill style.
	LivePreviewAlpha float32 `toml:"live_preview_alpha" yaml:"live_preview_alpha"`

	// TextureBudgetMB is the texture cache budget in megabytes.
	TextureBudgetMB int `toml:"texture_budget_mb" yaml:"texture_budget_mb"`
}

// DefaultSettings returns the default engine settings.
func DefaultSettings() Settings {
	return Settings{
		FillThreshold:    DefaultFillThreshold,
		SlotChunk:        batch.DefaultChunk,
		GhostColor:       [4]float32{0.1, 0.1, 0.1, 1},
		LivePreviewAlpha: DefaultLivePreviewAlpha,
		TextureBudgetMB:  texcache.DefaultMaxSizeMB,
	}
}

// LoadSettings reads settings from a file. Files ending in .yaml or .yml
// are YAML; anything else is TOML. Keys missing from the file and
// out-of-range values keep their defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("engine: load settings: %w", err)
	}
	parse := ParseSettings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseSettingsYAML
	}
	s, err := parse(data)
	if err != nil {
		return s, fmt.Errorf("engine: load settings %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes TOML settings on top of DefaultSettings.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	return s.normalize(), nil
}

// ParseSettingsYAML decodes YAML settings on top of DefaultSettings.
func ParseSettingsYAML(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	return s.normalize(), nil
}

// GhostRGBA returns the default ghost color.
func (s Settings) GhostRGBA() ink.RGBA {
	c := s.GhostColor
	return ink.RGBA4(c[0], c[1], c[2], c[3]).Clamp()
}

// normalize replaces out-of-range values with defaults.
func (s Settings) normalize() Settings {
	d := DefaultSettings()
	if s.FillThreshold < 0 || s.FillThreshold >= 1 {
		s.FillThreshold = d.FillThreshold
	}
	if s.SlotChunk <= 0 {
		s.SlotChunk = d.SlotChunk
	}
	if s.LivePreviewAlpha <= 0 || s.LivePreviewAlpha > 1 {
		s.LivePreviewAlpha = d.LivePreviewAlpha
	}
	if s.TextureBudgetMB <= 0 {
		s.TextureBudgetMB = d.TextureBudgetMB
	}
	return s
}
