package common

// The default name of the versions file next to the build scripts.
const DefaultVersionsFile = "versions.env"

type DatasourceType string

const (
	DATASOURCE_TYPE_STATIC         DatasourceType = "static"
	DATASOURCE_TYPE_GITHUB_TAGS    DatasourceType = "github-tags"
	DATASOURCE_TYPE_GITLAB_TAGS    DatasourceType = "gitlab-tags"
	DATASOURCE_TYPE_BITBUCKET_TAGS DatasourceType = "bitbucket-tags"
)
