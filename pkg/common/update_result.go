package common

// This type contains the outcome of a single dependency check within a run.
type UpdateResult struct {
	// The name of the checked dependency.
	Name string
	// The version that is currently pinned in the versions file.
	CurrentVersion string
	// The latest version found on the remote, in its stored form.
	LatestVersion string
	// The flag that indicates if the latest version is newer than the pinned one.
	Updated bool
	// The hex sha256 of the downloaded artifact, if the dependency declares one.
	Sha256 string
	// The resolved download url of the artifact, if the dependency declares one.
	DownloadUrl string
	// The error that failed the check for this dependency, if any.
	Err error
	// The error from the artifact download for the checksum. The version update itself is still valid.
	ChecksumErr error
}
