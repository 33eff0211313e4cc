// Package engine coordinates a full update run: it reads the current pins
// from the versions file, resolves the latest version of every dependency
// concurrently, checksums changed artifacts and writes the new pins back.
package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/roemer/gopin/pkg/common"
	"github.com/roemer/gopin/pkg/datasources"
	"github.com/roemer/gopin/pkg/registry"
	"github.com/roemer/gopin/pkg/versionfile"
	"github.com/roemer/gopin/pkg/versions"
	"github.com/samber/lo"
)

type Settings struct {
	// The logger to use for the engine.
	Logger *slog.Logger
	// The path to the versions file that holds the pins.
	VersionsFile string
	// Host rules that might apply when fetching from the registries.
	HostRules []*common.HostRule
	// The dependencies to process. Defaults to the built-in registry.
	Dependencies []*common.Dependency
}

type RunOptions struct {
	// Persist the discovered updates to the versions file. Without it the run is a dry run.
	Write bool
}

type RunResult struct {
	// One result per dependency, in registry order.
	Results []*common.UpdateResult
	// The results partitioned by their outcome.
	Updated   []*common.UpdateResult
	Failed    []*common.UpdateResult
	Unchanged []*common.UpdateResult
	// True when the versions file was rewritten.
	Written bool
}

type Engine struct {
	logger   *slog.Logger
	settings *Settings
}

func New(settings *Settings) *Engine {
	if settings == nil {
		settings = &Settings{}
	}
	if settings.Logger == nil {
		settings.Logger = slog.Default()
	}
	if settings.VersionsFile == "" {
		settings.VersionsFile = common.DefaultVersionsFile
	}
	if settings.Dependencies == nil {
		settings.Dependencies = registry.Dependencies()
	}
	return &Engine{logger: settings.Logger, settings: settings}
}

// Run performs one full update run. The returned error covers run-level
// failures only (eg. a missing versions file), per-dependency failures are
// collected in the result.
func (e *Engine) Run(options *RunOptions) (*RunResult, error) {
	if options == nil {
		options = &RunOptions{}
	}

	// Read the current pins
	file, err := versionfile.Parse(e.settings.VersionsFile)
	if err != nil {
		return nil, err
	}
	e.logger.Info(fmt.Sprintf("Checking %d dependencies against '%s'", len(e.settings.Dependencies), e.settings.VersionsFile))

	// Fan out one task per dependency and wait for the full set. A failing or
	// slow dependency never blocks the others, all errors stay in its slot.
	results := make([]*common.UpdateResult, len(e.settings.Dependencies))
	wg := sync.WaitGroup{}
	for i, dependency := range e.settings.Dependencies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = e.processDependency(dependency, file)
		}()
	}
	wg.Wait()

	runResult := &RunResult{
		Results:   results,
		Updated:   lo.Filter(results, func(r *common.UpdateResult, _ int) bool { return r.Err == nil && r.Updated }),
		Failed:    lo.Filter(results, func(r *common.UpdateResult, _ int) bool { return r.Err != nil }),
		Unchanged: lo.Filter(results, func(r *common.UpdateResult, _ int) bool { return r.Err == nil && !r.Updated }),
	}

	// Persist the updates in write mode
	if options.Write && len(runResult.Updated) > 0 {
		updates := map[string]string{}
		for i, dependency := range e.settings.Dependencies {
			result := results[i]
			if result.Err != nil || !result.Updated {
				continue
			}
			updates[dependency.VersionKey] = result.LatestVersion
			if result.ChecksumErr != nil {
				// Leave the url/sha pair untouched so the file stays self-consistent
				continue
			}
			if dependency.UrlKey != "" && result.DownloadUrl != "" {
				updates[dependency.UrlKey] = result.DownloadUrl
			}
			if dependency.Sha256Key != "" && result.Sha256 != "" {
				updates[dependency.Sha256Key] = result.Sha256
			}
		}
		replaced := file.Apply(updates, time.Now())
		if err := file.Save(); err != nil {
			return nil, err
		}
		runResult.Written = true
		e.logger.Info(fmt.Sprintf("Wrote %d values to '%s'", replaced, file.Path()))
	}

	e.logReport(runResult, options.Write)
	if err := e.writeOutputFile(runResult.Updated); err != nil {
		return nil, err
	}
	return runResult, nil
}

// Processes a single dependency: read the pin, resolve the latest version,
// compare and optionally checksum the new artifact. Never returns an error,
// all failures are stored in the result.
func (e *Engine) processDependency(dependency *common.Dependency, file *versionfile.File) *common.UpdateResult {
	logger := e.logger.With(slog.String("dependency", dependency.Name))
	result := &common.UpdateResult{Name: dependency.Name}

	currentVersion, ok := file.Get(dependency.VersionKey)
	if !ok {
		result.Err = fmt.Errorf("key '%s' not found in the versions file", dependency.VersionKey)
		return result
	}
	result.CurrentVersion = currentVersion

	// The descriptors are shared, so fill the current version into a copy
	dependencyCopy := *dependency
	dependencyCopy.Version = currentVersion

	ds, err := datasources.GetDatasource(dependency.Datasource, &common.DatasourceSettings{
		Logger:    e.logger,
		HostRules: e.settings.HostRules,
	})
	if err != nil {
		result.Err = err
		return result
	}
	latestVersion, err := ds.ResolveLatestVersion(&dependencyCopy)
	if err != nil {
		logger.Warn(fmt.Sprintf("Failed resolving the latest version: %s", err))
		result.Err = fmt.Errorf("failed resolving the latest version: %w", err)
		return result
	}
	result.LatestVersion = latestVersion

	if versions.Compare(latestVersion, currentVersion) <= 0 {
		logger.Info(fmt.Sprintf("No update found (current: %s)", currentVersion))
		return result
	}
	result.Updated = true
	logger.Info(fmt.Sprintf("Update found: %s -> %s", currentVersion, latestVersion))

	// Only artifacts of dependencies that actually changed are checksummed
	if dependency.Sha256Key != "" && dependency.DownloadUrl != nil {
		downloadUrl := dependency.DownloadUrl(latestVersion)
		result.DownloadUrl = downloadUrl
		logger.Debug(fmt.Sprintf("Calculating the checksum for '%s'", downloadUrl))
		digest, err := common.HttpUtil.DownloadToSha256(downloadUrl)
		if err != nil {
			// The version update is still valid, only the checksum is missing
			logger.Warn(fmt.Sprintf("Failed downloading the artifact for the checksum: %s", err))
			result.ChecksumErr = fmt.Errorf("failed downloading the artifact for the checksum: %w", err)
			return result
		}
		result.Sha256 = digest
	}
	return result
}
