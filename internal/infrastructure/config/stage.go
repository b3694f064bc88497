package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID             string      `yaml:"id"`
	Name           string      `yaml:"name"`
	Size           SizeConfig  `yaml:"size"`
	Mask           MaskConfig  `yaml:"mask"`
	Background     string      `yaml:"background"`
	PlayerSpawn    PointConfig `yaml:"playerSpawn"`
	PlayerSize     SizeFConfig `yaml:"playerSize"`
	Tower          RectConfig  `yaml:"tower"`
	ShieldSize     SizeFConfig `yaml:"shieldSize"`
	ProjectileSize SizeFConfig `yaml:"projectileSize"`
}

// SizeConfig is the scene size in whole pixels
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SizeFConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MaskConfig selects the solid mask source.
// Image, when set, is a PNG path relative to the config root; black pixels
// are solid. Otherwise Rows is a character grid where every cell covers
// CellSize x CellSize pixels and characters listed in Solid are solid.
type MaskConfig struct {
	Image    string   `yaml:"image"`
	CellSize int      `yaml:"cellSize"`
	Solid    string   `yaml:"solid"`
	Rows     []string `yaml:"rows"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}
