package common

// This is the interface that needs to be implemented by all datasources.
type IDatasource interface {
	// Gets all tags for the dependency from the remote.
	GetTags(dependency *Dependency) ([]string, error)
	// Resolves the latest stable version for the dependency, in its stored form.
	ResolveLatestVersion(dependency *Dependency) (string, error)
}
