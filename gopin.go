// Package gopin keeps the pinned versions of the media build's third-party
// libraries in sync with their upstream releases.
package gopin

import (
	"github.com/roemer/gopin/pkg/common"
	"github.com/roemer/gopin/pkg/config"
	"github.com/roemer/gopin/pkg/datasources"
	"github.com/roemer/gopin/pkg/engine"
	"github.com/roemer/gopin/pkg/registry"
)

// Get a datasource with the given settings.
func GetDatasource(datasourceType common.DatasourceType, settings *common.DatasourceSettings) (common.IDatasource, error) {
	return datasources.GetDatasource(datasourceType, settings)
}

// Load a given configuration.
func LoadConfig(configPath string) (*config.GopinConfig, error) {
	return config.Load(configPath)
}

// Dependencies returns the built-in list of tracked dependencies.
func Dependencies() []*common.Dependency {
	return registry.Dependencies()
}

// NewEngine creates an update engine with the given settings.
func NewEngine(settings *engine.Settings) *engine.Engine {
	return engine.New(settings)
}
