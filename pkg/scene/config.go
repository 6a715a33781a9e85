package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"orrery/pkg/render"
)

// Config is an on-disk scene description. Zero fields fall back to the
// stock defaults.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Panorama string `yaml:"panorama"`
	Ship     string `yaml:"ship"`
	Seed     int64  `yaml:"seed"`

	Bodies []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes one orbiting body.
type BodyConfig struct {
	Name          string  `yaml:"name"`
	Material      string  `yaml:"material"`
	Scale         float64 `yaml:"scale"`
	OrbitRadius   float64 `yaml:"orbit_radius"`
	OrbitSpeed    float64 `yaml:"orbit_speed"`
	OrbitPhase    float64 `yaml:"orbit_phase"`
	RotationSpeed float64 `yaml:"rotation_speed"`
}

var materialModes = map[string]render.ShaderMode{
	"star":           render.ShaderStar,
	"broken-terrain": render.ShaderBrokenTerrain,
	"gas-giant":      render.ShaderGasGiant,
	"icy":            render.ShaderIcy,
	"volcanic":       render.ShaderVolcanic,
	"earth-like":     render.ShaderEarthLike,
	"alien":          render.ShaderAlien,
	"hull":           render.ShaderHull,
}

// ParseMaterial resolves a material name from a scene file.
func ParseMaterial(name string) (render.ShaderMode, error) {
	mode, ok := materialModes[name]
	if !ok {
		return 0, fmt.Errorf("unknown material %q", name)
	}
	return mode, nil
}

// LoadConfig reads and validates a YAML scene file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative dimensions %dx%d", c.Width, c.Height)
	}
	for i, b := range c.Bodies {
		if b.Material == "" {
			return fmt.Errorf("body %d (%s): material is required", i, b.Name)
		}
		if _, err := ParseMaterial(b.Material); err != nil {
			return fmt.Errorf("body %d (%s): %w", i, b.Name, err)
		}
		if b.Scale <= 0 {
			return fmt.Errorf("body %d (%s): scale must be positive", i, b.Name)
		}
		if b.OrbitRadius < 0 {
			return fmt.Errorf("body %d (%s): negative orbit radius", i, b.Name)
		}
	}
	return nil
}

// BuildBodies converts the configured bodies into scene bodies. An empty
// list yields the stock system.
func (c *Config) BuildBodies() []Body {
	if len(c.Bodies) == 0 {
		return DefaultBodies()
	}

	bodies := make([]Body, len(c.Bodies))
	for i, b := range c.Bodies {
		mode, _ := ParseMaterial(b.Material) // validated on load
		bodies[i] = Body{
			Name:          b.Name,
			OrbitRadius:   b.OrbitRadius,
			OrbitSpeed:    b.OrbitSpeed,
			OrbitPhase:    b.OrbitPhase,
			RotationSpeed: b.RotationSpeed,
			Scale:         b.Scale,
			Mode:          mode,
		}
	}
	return bodies
}
