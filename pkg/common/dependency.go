package common

import (
	"fmt"
	"regexp"
	"strings"
)

// This type represents a tracked dependency of the media build.
type Dependency struct {
	// The name of the dependency.
	Name string
	// The datasource of the dependency.
	Datasource DatasourceType

	// The key in the versions file that holds the pinned version.
	VersionKey string
	// The key in the versions file that holds the download url of the artifact. Optional.
	UrlKey string
	// The key in the versions file that holds the sha256 of the artifact. Optional.
	Sha256Key string

	// The fixed version for the "static" datasource.
	StaticVersion string
	// The "owner/repository" for the "github-tags" and "bitbucket-tags" datasources.
	Repository string
	// The project path for the "gitlab-tags" datasource.
	Project string
	// The pattern that a tag must match to be considered. Used by the tag datasources.
	TagPattern *regexp.Regexp
	// A list of registry urls to use. Allows overwriting the default. Depends on the datasource.
	RegistryUrls []string

	// Converts a selected tag into the form that is stored in the versions file (eg. stripping a prefix).
	// Is applied exactly once, right after the tag was selected. Optional.
	NormalizeVersion func(version string) string
	// Builds the download url of the artifact for a version. Required when Sha256Key is set.
	DownloadUrl func(version string) string

	// The currently pinned version of the dependency, filled from the versions file before fetching.
	Version string
}

func (d *Dependency) String() string {
	parts := []string{}
	if d.Name != "" {
		parts = append(parts, fmt.Sprintf("name: %s", d.Name))
	}
	if d.Version != "" {
		parts = append(parts, fmt.Sprintf("version: %s", d.Version))
	}
	if d.Datasource != "" {
		parts = append(parts, fmt.Sprintf("datasource: %s", d.Datasource))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
