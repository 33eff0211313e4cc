package datasources

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/roemer/gopin/pkg/common"
)

type BitBucketTagsDatasource struct {
	*datasourceBase
}

func NewBitBucketTagsDatasource(settings *common.DatasourceSettings) common.IDatasource {
	newDatasource := &BitBucketTagsDatasource{
		datasourceBase: newDatasourceBase(common.DATASOURCE_TYPE_BITBUCKET_TAGS, settings),
	}
	newDatasource.impl = newDatasource
	return newDatasource
}

// The shape of one page of the BitBucket tag listing.
type bitBucketTagsPage struct {
	Values []struct {
		Name string `json:"name"`
	} `json:"values"`
	Next string `json:"next"`
}

func (ds *BitBucketTagsDatasource) GetTags(dependency *common.Dependency) ([]string, error) {
	registryUrl := ds.getRegistryUrl("https://api.bitbucket.org/2.0", dependency.RegistryUrls)
	downloadUrl := fmt.Sprintf("%s/repositories/%s/refs/tags?pagelen=100", registryUrl, dependency.Repository)

	client := common.NewRetryingClient()
	relevantHostRule := ds.getHostRuleForHost(registryUrl)

	// The tags are listed oldest-first, so every page must be followed as the
	// newest tag sits on the last one
	tags := []string{}
	for downloadUrl != "" {
		// Prepare the request
		req, err := http.NewRequest(http.MethodGet, downloadUrl, nil)
		if err != nil {
			return nil, err
		}
		if relevantHostRule != nil {
			common.HttpUtil.AddBasicAuth(req, relevantHostRule.UsernameExpanded(), relevantHostRule.PasswordExpanded())
			common.HttpUtil.AddBearerToRequest(req, relevantHostRule.TokendExpanded())
		}
		// Perform the request
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("failed with statuscode %d", resp.StatusCode)
		}

		// Parse the page
		var page bitBucketTagsPage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		for _, value := range page.Values {
			tags = append(tags, value.Name)
		}

		// Follow the link to the next page, if any
		downloadUrl = page.Next
	}

	return tags, nil
}
