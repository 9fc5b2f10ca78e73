package libribbon

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/2x3systems/ribbon/ribbon"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// ConfigFile is the on-disk form of a ribbon.Config (YAML or TOML).
//
// The vertex structure is given by exactly one of Vertices, Rotation, or NumVertices with Degree.
// Arrows defaults to the number of arrows listed and MaxGenus defaults to the genus bound of the vertex structure.
type ConfigFile struct {
	Arrows      int     `yaml:"arrows" toml:"arrows"`
	Vertices    [][]int `yaml:"vertices" toml:"vertices"`
	Rotation    string  `yaml:"rotation" toml:"rotation"`
	NumVertices int     `yaml:"num_vertices" toml:"num_vertices"`
	Degree      int     `yaml:"degree" toml:"degree"`
	MaxGenus    *int    `yaml:"max_genus" toml:"max_genus"`
}

// LoadConfig reads and resolves a config file; the format is chosen by extension (.yaml, .yml, .toml).
func LoadConfig(pathname string) (ribbon.Config, error) {
	data, err := os.ReadFile(pathname)
	if err != nil {
		return ribbon.Config{}, err
	}
	cfg, err := ParseConfig(data, filepath.Ext(pathname))
	if err != nil {
		return ribbon.Config{}, errors.Wrapf(err, "config %q", pathname)
	}
	return cfg, nil
}

// ParseConfig decodes and resolves config data in the given format ("yaml", "yml" or "toml", with or without a leading dot).
func ParseConfig(data []byte, format string) (ribbon.Config, error) {
	var cf ConfigFile
	var err error

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		err = yaml.UnmarshalStrict(data, &cf)
	case "toml":
		err = toml.Unmarshal(data, &cf)
	default:
		return ribbon.Config{}, errors.Wrapf(ribbon.ErrBadConfig, "unknown config format %q", format)
	}
	if err != nil {
		return ribbon.Config{}, errors.Wrap(ribbon.ErrBadConfig, err.Error())
	}

	return cf.Resolve()
}

// Resolve turns a ConfigFile into a validated ribbon.Config.
func (cf *ConfigFile) Resolve() (ribbon.Config, error) {
	var cfg ribbon.Config

	forms := 0
	if len(cf.Vertices) > 0 {
		forms++
		cfg.Vertices = make(ribbon.Rotation, len(cf.Vertices))
		for vi, seq := range cf.Vertices {
			arrows := make([]ribbon.ArrowID, len(seq))
			for i, a := range seq {
				arrows[i] = ribbon.ArrowID(a)
			}
			cfg.Vertices[vi] = arrows
		}
	}
	if len(cf.Rotation) > 0 {
		forms++
		rot, err := ParseRotation(cf.Rotation)
		if err != nil {
			return ribbon.Config{}, err
		}
		cfg.Vertices = rot
	}
	if cf.NumVertices > 0 || cf.Degree > 0 {
		forms++
		if cf.NumVertices <= 0 || cf.Degree <= 0 {
			return ribbon.Config{}, errors.Wrap(ribbon.ErrBadConfig, "num_vertices and degree must both be positive")
		}
		cfg = ribbon.RegularConfig(cf.NumVertices, cf.Degree, 0)
	}
	switch {
	case forms == 0:
		return ribbon.Config{}, errors.Wrap(ribbon.ErrBadConfig, "no vertices given")
	case forms > 1:
		return ribbon.Config{}, errors.Wrap(ribbon.ErrBadConfig, "give only one of vertices, rotation, or num_vertices and degree")
	}

	cfg.Arrows = cf.Arrows
	if cfg.Arrows == 0 {
		cfg.Arrows = cfg.Vertices.NumArrows()
	}
	if cf.MaxGenus != nil {
		cfg.MaxGenus = *cf.MaxGenus
	} else {
		cfg.MaxGenus = cfg.GenusBound()
	}

	if err := cfg.Validate(); err != nil {
		return ribbon.Config{}, err
	}
	return cfg, nil
}
