package datasources

import (
	"github.com/roemer/gopin/pkg/common"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

type GitLabTagsDatasource struct {
	*datasourceBase
}

func NewGitLabTagsDatasource(settings *common.DatasourceSettings) common.IDatasource {
	newDatasource := &GitLabTagsDatasource{
		datasourceBase: newDatasourceBase(common.DATASOURCE_TYPE_GITLAB_TAGS, settings),
	}
	newDatasource.impl = newDatasource
	return newDatasource
}

func (ds *GitLabTagsDatasource) GetTags(dependency *common.Dependency) ([]string, error) {
	client, err := ds.createClient(dependency.RegistryUrls)
	if err != nil {
		return nil, err
	}

	gitLabTags, _, err := client.Tags.ListTags(dependency.Project, &gitlab.ListTagsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, err
	}

	tags := []string{}
	for _, gitLabTag := range gitLabTags {
		tags = append(tags, gitLabTag.Name)
	}
	return tags, nil
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

func (ds *GitLabTagsDatasource) createClient(registryUrls []string) (*gitlab.Client, error) {
	registryUrl := ds.getRegistryUrl("https://gitlab.com/api/v4", registryUrls)

	// Get a host rule if any was defined
	relevantHostRule := ds.getHostRuleForHost(registryUrl)
	token := ""
	if relevantHostRule != nil {
		token = relevantHostRule.TokendExpanded()
	}

	// Create the client
	return gitlab.NewClient(token,
		gitlab.WithBaseURL(registryUrl),
		gitlab.WithHTTPClient(common.NewRetryingClient()))
}
