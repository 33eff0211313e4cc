package datasources

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/roemer/gopin/pkg/common"
	"github.com/roemer/gopin/pkg/versions"
)

type datasourceBase struct {
	datasourceType common.DatasourceType
	logger         *slog.Logger
	impl           common.IDatasource
	settings       *common.DatasourceSettings
}

func newDatasourceBase(datasourceType common.DatasourceType, settings *common.DatasourceSettings) *datasourceBase {
	return &datasourceBase{
		datasourceType: datasourceType,
		logger:         settings.Logger.With(slog.String("datasource", string(datasourceType))),
		settings:       settings,
	}
}

func GetDatasource(datasourceType common.DatasourceType, settings *common.DatasourceSettings) (common.IDatasource, error) {
	switch datasourceType {
	case common.DATASOURCE_TYPE_STATIC:
		return NewStaticDatasource(settings), nil
	case common.DATASOURCE_TYPE_GITHUB_TAGS:
		return NewGitHubTagsDatasource(settings), nil
	case common.DATASOURCE_TYPE_GITLAB_TAGS:
		return NewGitLabTagsDatasource(settings), nil
	case common.DATASOURCE_TYPE_BITBUCKET_TAGS:
		return NewBitBucketTagsDatasource(settings), nil
	}
	return nil, fmt.Errorf("no datasource defined for '%s'", datasourceType)
}

// Resolves the latest stable version by listing the tags from the remote,
// selecting the best stable one and converting it into its stored form.
func (ds *datasourceBase) ResolveLatestVersion(dependency *common.Dependency) (string, error) {
	ds.logger.Debug(fmt.Sprintf("Looking up tags for '%s'", dependency.Name))
	tags, err := ds.impl.GetTags(dependency)
	if err != nil {
		return "", err
	}
	ds.logger.Debug(fmt.Sprintf("Found %d tags", len(tags)))

	latestTag, err := versions.SelectLatestStableTag(tags, dependency.TagPattern)
	if err != nil {
		return "", err
	}
	if dependency.NormalizeVersion != nil {
		return dependency.NormalizeVersion(latestTag), nil
	}
	return latestTag, nil
}

func (ds *datasourceBase) getRegistryUrl(baseUrl string, customRegistryUrls []string) string {
	if len(customRegistryUrls) > 0 {
		baseUrl = customRegistryUrls[0]
		ds.logger.Debug(fmt.Sprintf("Using custom registry url: %s", baseUrl))
	}
	baseUrl = strings.TrimSuffix(baseUrl, "/")
	return baseUrl
}

func (ds *datasourceBase) getHostRuleForHost(host string) *common.HostRule {
	if ds.settings != nil {
		for _, hostRule := range ds.settings.HostRules {
			if strings.Contains(host, hostRule.MatchHost) {
				return hostRule
			}
		}
	}
	return nil
}
