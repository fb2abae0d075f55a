package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/changedetect"
	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig describes an enrichment project: where asset files live,
// where scan state is kept, and which field contract version to apply.
type ProjectConfig struct {
	Sources         []string `yaml:"sources"`
	StateFile       string   `yaml:"state_file"`
	ContractVersion string   `yaml:"contract_version,omitempty"`
}

const ConfigFileName = "ame.yaml"

// DefaultStateFile is used when the config file leaves state_file empty.
const DefaultStateFile = ".ame/state.json"

func Load(projectPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectPath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", enricher.ErrInvalidConfig, configPath, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ProjectConfig) applyDefaults() {
	if c.StateFile == "" {
		c.StateFile = DefaultStateFile
	}
	if c.ContractVersion == "" {
		c.ContractVersion = string(changedetect.Latest)
	}
}

func (c *ProjectConfig) validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("%w: at least one source directory is required", enricher.ErrInvalidConfig)
	}
	for i, src := range c.Sources {
		if src == "" {
			return fmt.Errorf("%w: sources[%d] is empty", enricher.ErrInvalidConfig, i)
		}
	}
	if c.ContractVersion != string(changedetect.V1) {
		return fmt.Errorf("%w: unsupported contract_version %q", enricher.ErrInvalidConfig, c.ContractVersion)
	}
	return nil
}
