package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/roemer/gopin/pkg/common"
)

// The environment variable that names the CI output file to append to.
const outputFileEnvVariable = "GITHUB_OUTPUT"

// The sentinel that is written into the summary when nothing changed.
const noUpdatesSentinel = "_No version updates available._"

func (e *Engine) logReport(runResult *RunResult, write bool) {
	e.logger.Info(fmt.Sprintf("Finished: %d updated, %d unchanged, %d failed",
		len(runResult.Updated), len(runResult.Unchanged), len(runResult.Failed)))

	for _, result := range runResult.Updated {
		e.logger.Info(fmt.Sprintf("Update for '%s': %s -> %s", result.Name, result.CurrentVersion, result.LatestVersion))
		if result.ChecksumErr != nil {
			e.logger.Warn(fmt.Sprintf("The checksum for '%s' is missing and was not written: %s", result.Name, result.ChecksumErr))
		}
	}
	for _, result := range runResult.Failed {
		e.logger.Error(fmt.Sprintf("Failed '%s': %s", result.Name, result.Err))
	}

	if write {
		if runResult.Written {
			e.logger.Info("The versions file was rewritten")
		} else {
			e.logger.Info("No updates, the versions file was left untouched")
		}
	} else if len(runResult.Updated) > 0 {
		e.logger.Info("Dry run, pass -write to persist the updates")
	}
}

// Appends the run outcome to the CI output file if one is configured via the
// environment. The summary is a markdown bullet list, ready for a PR body.
func (e *Engine) writeOutputFile(updated []*common.UpdateResult) error {
	outputFile := os.Getenv(outputFileEnvVariable)
	if outputFile == "" {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "updates_available=%t\n", len(updated) > 0)
	sb.WriteString("update_summary<<EOF\n")
	if len(updated) == 0 {
		sb.WriteString(noUpdatesSentinel + "\n")
	} else {
		for _, result := range updated {
			fmt.Fprintf(&sb, "- **%s**: %s → %s\n", result.Name, result.CurrentVersion, result.LatestVersion)
		}
	}
	sb.WriteString("EOF\n")

	f, err := os.OpenFile(outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed opening the output file '%s': %w", outputFile, err)
	}
	defer f.Close()
	if _, err := f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed appending to the output file '%s': %w", outputFile, err)
	}
	e.logger.Debug(fmt.Sprintf("Appended the summary to '%s'", outputFile))
	return nil
}
