package datasources

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v80/github"
	"github.com/roemer/gopin/pkg/common"
)

// The GitHub api returns the tags newest-first, so a few pages are enough
// to find the latest stable tag.
const githubTagsMaxPages = 2

type GitHubTagsDatasource struct {
	*datasourceBase
}

func NewGitHubTagsDatasource(settings *common.DatasourceSettings) common.IDatasource {
	newDatasource := &GitHubTagsDatasource{
		datasourceBase: newDatasourceBase(common.DATASOURCE_TYPE_GITHUB_TAGS, settings),
	}
	newDatasource.impl = newDatasource
	return newDatasource
}

func (ds *GitHubTagsDatasource) GetTags(dependency *common.Dependency) ([]string, error) {
	client, err := ds.createClient(dependency.RegistryUrls)
	if err != nil {
		return nil, err
	}

	parts := strings.SplitN(dependency.Repository, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid repository '%s', expected 'owner/repository'", dependency.Repository)
	}
	owner := parts[0]
	repository := parts[1]

	allTags := []*github.RepositoryTag{}
	listOptions := &github.ListOptions{PerPage: 100}
	for page := 0; page < githubTagsMaxPages; page++ {
		gitHubTags, resp, err := client.Repositories.ListTags(context.Background(), owner, repository, listOptions)
		if err != nil {
			return nil, err
		}
		allTags = append(allTags, gitHubTags...)
		if resp.NextPage == 0 {
			break
		}
		listOptions.Page = resp.NextPage
	}

	// Convert all entries to plain tag names
	tags := []string{}
	for _, entry := range allTags {
		tags = append(tags, entry.GetName())
	}
	return tags, nil
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

func (ds *GitHubTagsDatasource) createClient(registryUrls []string) (*github.Client, error) {
	client := github.NewClient(common.NewRetryingClient())

	// Allow overriding the api url (eg. for GitHub Enterprise)
	if len(registryUrls) > 0 {
		registryUrl := ds.getRegistryUrl("", registryUrls)
		var err error
		client, err = client.WithEnterpriseURLs(registryUrl, registryUrl)
		if err != nil {
			return nil, err
		}
	}

	// Get a host rule if any was defined
	relevantHostRule := ds.getHostRuleForHost("api.github.com")
	// Add the token to the client
	if relevantHostRule != nil {
		token := relevantHostRule.TokendExpanded()
		// But only if the token is set
		if len(token) > 0 {
			client = client.WithAuthToken(token)
		}
	}
	return client, nil
}
