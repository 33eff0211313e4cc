// Package versions implements the version ordering and stable-tag selection
// that is used to decide if an upstream release is newer than a pinned one.
// The tracked upstreams tag their releases in wildly different shapes
// (v1.2.3, n8.0, nasm-2.16.03, openssl-3.4.0), so the comparator works on
// numeric segments instead of on strict semver.
package versions

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrNoStableTags is returned when a tag source yielded tags but none of them
// matched the pattern and was stable.
var ErrNoStableTags = errors.New("no stable tags found")

// Literal prefixes that some upstreams put in front of their version tags.
var literalPrefixes = []string{"nasm-", "openssl-", "libvpx-"}

// A prerelease is a hyphen-separated suffix after the numeric part, optionally followed by digits.
var prereleaseRegex = regexp.MustCompile(`(?i)-(rc|alpha|beta|dev|pre|snapshot)\.?\d*$`)

// Compare compares two version strings and returns -1, 0 or 1.
// Known textual prefixes are stripped from both sides, so "v2.3.0" and "2.3.0"
// compare as equal. A missing segment counts as 0, so "1.0" equals "1.0.0".
// Non-numeric segments parse to 0, which is a known limitation of this
// comparator. An empty string sorts below everything else.
func Compare(a, b string) int {
	if a == "" || b == "" {
		return strings.Compare(a, b)
	}
	segmentsA := parseSegments(a)
	segmentsB := parseSegments(b)
	for i := range max(len(segmentsA), len(segmentsB)) {
		valueA, valueB := 0, 0
		if i < len(segmentsA) {
			valueA = segmentsA[i]
		}
		if i < len(segmentsB) {
			valueB = segmentsB[i]
		}
		if valueA != valueB {
			return cmp.Compare(valueA, valueB)
		}
	}
	return 0
}

// IsPrerelease checks if the given tag denotes a non-stable release like
// "v1.0.0-rc1", "n8.1-dev" or "openssl-3.4.0-alpha1".
func IsPrerelease(tag string) bool {
	if strings.Contains(tag, "+") {
		// Tags with build metadata are not considered plain stable releases
		return true
	}
	return prereleaseRegex.MatchString(tag)
}

// SelectLatestStableTag filters the given tags to those that match the pattern
// and are stable and returns the highest one according to Compare.
// Equal-comparing tags resolve to their input order as the sort is stable.
func SelectLatestStableTag(tags []string, pattern *regexp.Regexp) (string, error) {
	candidates := []string{}
	for _, tag := range tags {
		if pattern != nil && !pattern.MatchString(tag) {
			continue
		}
		if IsPrerelease(tag) {
			continue
		}
		candidates = append(candidates, tag)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w for pattern '%s'", ErrNoStableTags, pattern)
	}
	slices.SortStableFunc(candidates, func(a, b string) int {
		return Compare(b, a)
	})
	return candidates[0], nil
}

// Converts a version string into its numeric segments.
func parseSegments(version string) []int {
	for _, prefix := range literalPrefixes {
		version = strings.TrimPrefix(version, prefix)
	}
	// A leading "v" (or "n" for date-coded release tags) directly followed by a digit is not part of the version
	if len(version) > 1 && (version[0] == 'v' || version[0] == 'n') && version[1] >= '0' && version[1] <= '9' {
		version = version[1:]
	}
	version = strings.ReplaceAll(version, "-", ".")
	parts := strings.Split(version, ".")
	segments := make([]int, len(parts))
	for i, part := range parts {
		if value, err := strconv.Atoi(part); err == nil {
			segments[i] = value
		}
	}
	return segments
}
