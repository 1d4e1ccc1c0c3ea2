// Package config handles extrusion settings loading and management.
package config

// Config holds all settings for one extrusion run.
type Config struct {
	Projection     ProjectionConfig `yaml:"projection"`
	Render         RenderConfig     `yaml:"render"`
	Buildings      BuildingsConfig  `yaml:"buildings"`
	Administrative AreaConfig       `yaml:"administrative"`
	Polygon        AreaConfig       `yaml:"polygon"`
	Roads          RoadsConfig      `yaml:"roads"`
	Water          WaterConfig      `yaml:"water"`
	Terrain        TerrainConfig    `yaml:"terrain"`
	Logging        LoggingConfig    `yaml:"logging"`
}

// ProjectionConfig holds the local frame origin for GPS projection.
type ProjectionConfig struct {
	OriginLatitude  float64 `yaml:"origin_latitude"`
	OriginLongitude float64 `yaml:"origin_longitude"`
	Scale           float64 `yaml:"scale"` // World units per metre
}

// RenderConfig holds settings shared by every generator.
type RenderConfig struct {
	MapScale float64 `yaml:"map_scale"` // Multiplies road line width
	Strict   bool    `yaml:"strict"`    // Abort on the first feature without properties
	Steps    int     `yaml:"steps"`     // Extrusion subdivisions along the up axis
}

// BuildingsConfig holds building generation settings.
type BuildingsConfig struct {
	Merge    bool   `yaml:"merge"`
	Collider bool   `yaml:"collider"`
	Color    uint32 `yaml:"color"`
}

// AreaConfig holds settings for flat extruded areas (administrative and generic polygons).
type AreaConfig struct {
	Merge    bool    `yaml:"merge"`
	Border   bool    `yaml:"border"`
	Collider bool    `yaml:"collider"`
	Height   float64 `yaml:"height"`
	Color    uint32  `yaml:"color"`
}

// RoadsConfig holds road generation settings.
type RoadsConfig struct {
	Smooth            bool    `yaml:"smooth"` // Spline fat lines instead of straight polylines
	Width             float64 `yaml:"width"`
	Color             uint32  `yaml:"color"`
	Simplify          float64 `yaml:"simplify"` // Douglas-Peucker threshold in world units, 0 disables
	DivisionsPerPoint float64 `yaml:"divisions_per_point"`
	Tension           float64 `yaml:"tension"`
	WidthFactor       float64 `yaml:"width_factor"`
}

// WaterConfig holds water generation settings.
type WaterConfig struct {
	Merge bool `yaml:"merge"`
}

// TerrainConfig points at an optional terrain sample file.
type TerrainConfig struct {
	Path string `yaml:"path"` // .csv/.xyz point cloud or .yaml heightmap
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Projection: ProjectionConfig{
			OriginLatitude:  0,
			OriginLongitude: 0,
			Scale:           0.01,
		},
		Render: RenderConfig{
			MapScale: 1,
			Strict:   false,
			Steps:    1,
		},
		Buildings: BuildingsConfig{
			Merge:    true,
			Collider: false,
			Color:    0x7884B2,
		},
		Administrative: AreaConfig{
			Merge:  true,
			Border: false,
			Height: 2,
			Color:  0x2E3342,
		},
		Polygon: AreaConfig{
			Merge:  true,
			Height: 1,
			Color:  0x2E3342,
		},
		Roads: RoadsConfig{
			Smooth:            true,
			Width:             2,
			Color:             0x4287F5,
			Simplify:          0,
			DivisionsPerPoint: 24,
			Tension:           0.001,
			WidthFactor:       0.0001,
		},
		Water: WaterConfig{
			Merge: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
