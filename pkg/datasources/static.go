package datasources

import (
	"fmt"

	"github.com/roemer/gopin/pkg/common"
)

// A datasource for dependencies that intentionally track a moving target
// like a maintained branch instead of tags.
type StaticDatasource struct {
	*datasourceBase
}

func NewStaticDatasource(settings *common.DatasourceSettings) common.IDatasource {
	newDatasource := &StaticDatasource{
		datasourceBase: newDatasourceBase(common.DATASOURCE_TYPE_STATIC, settings),
	}
	newDatasource.impl = newDatasource
	return newDatasource
}

func (ds *StaticDatasource) GetTags(dependency *common.Dependency) ([]string, error) {
	return nil, fmt.Errorf("the static datasource does not list tags")
}

// Returns the fixed pin verbatim, without selection or normalization.
func (ds *StaticDatasource) ResolveLatestVersion(dependency *common.Dependency) (string, error) {
	return dependency.StaticVersion, nil
}
