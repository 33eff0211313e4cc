package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYamlConfig(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("GOPIN_TEST_TOKEN", "token-from-env")
	configPath := writeConfigFile(t, "gopin.yaml", `versionsFile: pins.env
hostRules:
  - matchHost: api.github.com
    token: ${GOPIN_TEST_TOKEN}
`)

	config, err := Load(configPath)
	assert.NoError(err)
	assert.Equal("pins.env", config.VersionsFile)
	assert.Len(config.HostRules, 1)
	assert.Equal("api.github.com", config.HostRules[0].MatchHost)
	// The token is expanded from the environment on use
	assert.Equal("${GOPIN_TEST_TOKEN}", config.HostRules[0].Token)
	assert.Equal("token-from-env", config.HostRules[0].TokendExpanded())
}

func TestLoadJsoncConfig(t *testing.T) {
	assert := assert.New(t)

	configPath := writeConfigFile(t, "gopin.jsonc", `{
	// The versions file sits next to the build scripts
	"versionsFile": "build/versions.env",
	"hostRules": [
		{ "matchHost": "code.videolan.org", "token": "secret" },
	],
}`)

	config, err := Load(configPath)
	assert.NoError(err)
	assert.Equal("build/versions.env", config.VersionsFile)
	assert.Len(config.HostRules, 1)
	assert.Equal("secret", config.HostRules[0].Token)
}

func TestLoadMissingExplicitConfigFails(t *testing.T) {
	assert := assert.New(t)

	config, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(err)
	assert.Nil(config)
}

func TestSearchConfigFileFromPath(t *testing.T) {
	assert := assert.New(t)

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "gopin.yml")
	assert.NoError(os.WriteFile(configPath, []byte("versionsFile: versions.env\n"), os.ModePerm))

	foundPath, err := SearchConfigFileFromPath(filepath.Join(tempDir, "gopin"))
	assert.NoError(err)
	assert.Equal(configPath, foundPath)

	foundPath, err = SearchConfigFileFromPath(filepath.Join(tempDir, "other"))
	assert.NoError(err)
	assert.Empty(foundPath)
}
