package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningFile is the tuning file name relative to the config root
const TuningFile = "tuning.yaml"

// GameConfig holds all loaded configurations for one session
type GameConfig struct {
	Tuning *TuningConfig
	Stage  *StageConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the on-disk root, empty for embedded configs
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.yaml on top of the defaults
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, TuningFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TuningFile, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TuningFile, err)
	}

	return cfg, nil
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// LoadAll loads tuning and the named stage and validates them together
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Tuning: tuning,
		Stage:  stageCfg,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
