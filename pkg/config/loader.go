package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adhocore/jsonc"
	"github.com/goccy/go-yaml"
	"github.com/roemer/gopin/pkg/common"
)

// The base name of the config file, probed with the valid extensions.
const defaultConfigBaseName = "gopin"

var validConfigExtensions = []string{".json", ".jsonc", ".yaml", ".yml"}

// Loads the configuration from the given path. With an empty path, the default
// locations are probed and the defaults are used when no file exists at all.
func Load(configPath string) (*GopinConfig, error) {
	if configPath == "" {
		foundPath, err := searchDefaultConfig()
		if err != nil {
			return nil, err
		}
		if foundPath == "" {
			// No config file anywhere, continue with the defaults
			return &GopinConfig{}, nil
		}
		configPath = foundPath
	}
	return loadConfigFromFile(configPath)
}

// SearchConfigFileFromPath probes the given base path with all valid config extensions.
func SearchConfigFileFromPath(basePath string) (string, error) {
	for _, extension := range validConfigExtensions {
		candidatePath := basePath + extension
		if exists, err := common.FileExists(candidatePath); err != nil {
			return "", err
		} else if exists {
			return candidatePath, nil
		}
	}
	return "", nil
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

func searchDefaultConfig() (string, error) {
	// Current folder
	searchPaths := []string{defaultConfigBaseName}
	// Folder of the executable
	if executablePath, err := os.Executable(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(filepath.Dir(executablePath), defaultConfigBaseName))
	}

	for _, searchPath := range searchPaths {
		if foundPath, err := SearchConfigFileFromPath(searchPath); err != nil {
			return "", err
		} else if foundPath != "" {
			return foundPath, nil
		}
	}
	return "", nil
}

func loadConfigFromFile(configPath string) (*GopinConfig, error) {
	contentBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed reading config '%s': %w", configPath, err)
	}

	config := &GopinConfig{}
	switch filepath.Ext(configPath) {
	case ".json", ".jsonc":
		// The config may contain comments, so convert it to plain json first
		j := jsonc.New()
		if err := json.Unmarshal(j.Strip(contentBytes), config); err != nil {
			return nil, fmt.Errorf("failed parsing config '%s': %w", configPath, err)
		}
	default:
		if err := yaml.Unmarshal(contentBytes, config); err != nil {
			return nil, fmt.Errorf("failed parsing config '%s': %w", configPath, err)
		}
	}
	return config, nil
}
