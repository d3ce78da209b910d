// Package preset bundles every externally supplied option of the editor under a name.
package preset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gucio321/polarbez/pkg/points"
	"github.com/gucio321/polarbez/pkg/tessellate"
)

//go:embed presets.json
var presets []byte

// Default is the name of the preset used when none is given.
const Default = "default"

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalidPreset = errors.New("invalid preset")
	ErrUnknownFormat = errors.New("unknown config file format")
)

// Preset is a complete set of options.
type Preset struct {
	Name               string            `json:"name" toml:"name" yaml:"name"`
	Tessellation       tessellate.Config `json:"tessellation" toml:"tessellation" yaml:"tessellation"`
	MinPointCount      int               `json:"minPointCount" toml:"minPointCount" yaml:"minPointCount"`
	MaxPointCount      int               `json:"maxPointCount" toml:"maxPointCount" yaml:"maxPointCount"`
	KeepEndpointsFixed bool              `json:"keepEndpointsFixed" toml:"keepEndpointsFixed" yaml:"keepEndpointsFixed"`
	// Workspace names a plot.Workspace.
	Workspace string `json:"workspace" toml:"workspace" yaml:"workspace"`
}

// Validate checks every option.
func (p *Preset) Validate() error {
	if err := p.Tessellation.Validate(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidPreset, p.Name, err)
	}

	switch {
	case p.MinPointCount < points.DefaultMinCount:
		return fmt.Errorf("%w %q: minPointCount must be at least %d, got %d", ErrInvalidPreset, p.Name, points.DefaultMinCount, p.MinPointCount)
	case p.MaxPointCount < p.MinPointCount:
		return fmt.Errorf("%w %q: maxPointCount (%d) must be at least minPointCount (%d)", ErrInvalidPreset, p.Name, p.MaxPointCount, p.MinPointCount)
	}

	return nil
}

// Manager returns a points.Manager configured by p.
func (p *Preset) Manager() *points.Manager {
	return &points.Manager{
		MinCount:           p.MinPointCount,
		MaxCount:           p.MaxPointCount,
		KeepEndpointsFixed: p.KeepEndpointsFixed,
	}
}

func decodePresets() ([]Preset, error) {
	var result []Preset
	if err := json.Unmarshal(presets, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Get returns the built-in preset called name.
func Get(name string) (*Preset, error) {
	all, err := decodePresets()
	if err != nil {
		return nil, fmt.Errorf("cant decode presets: %w", err)
	}

	for _, p := range all {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names lists built-in presets.
func Names() []string {
	all, err := decodePresets()
	if err != nil {
		return nil
	}

	result := make([]string, 0, len(all))
	for _, p := range all {
		result = append(result, p.Name)
	}

	return result
}

// Load reads a preset from a .json, .toml, .yaml or .yml file. Options missing in
// the file keep the values of the default preset.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cant read config: %w", err)
	}

	return Decode(data, filepath.Ext(path))
}

// Decode parses data in the format given by its file extension (with or without dot)
// on top of the default preset and validates the result.
func Decode(data []byte, ext string) (*Preset, error) {
	result, err := Get(Default)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		err = json.Unmarshal(data, result)
	case "toml":
		err = toml.Unmarshal(data, result)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, result)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("cant parse config: %w", err)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}

// Encode writes p in the format given by ext.
func Encode(p *Preset, ext string) ([]byte, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return json.MarshalIndent(p, "", "\t")
	case "toml":
		return toml.Marshal(p)
	case "yaml", "yml":
		return yaml.Marshal(p)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}
