package versions

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	// Prefix insensitivity
	assert.Equal(0, Compare("v2.3.0", "2.3.0"))
	assert.Equal(1, Compare("n8.0", "n7.1"))
	assert.Equal(0, Compare("nasm-2.16.03", "2.16.03"))
	assert.Equal(0, Compare("openssl-3.4.0", "3.4.0"))
	assert.Equal(-1, Compare("libvpx-1.14.1", "v1.15.0"))

	// Zero-padding equivalence
	assert.Equal(0, Compare("1.0", "1.0.0"))
	assert.Equal(-1, Compare("2.0", "2.0.0.1"))
	assert.Equal(1, Compare("2.0.0.1", "2.0"))

	// Separator normalization
	assert.Equal(0, Compare("1.5-2", "1.5.2"))

	// Non-numeric segments parse to 0
	assert.Equal(0, Compare("stable", "stable"))
	assert.Equal(-1, Compare("stable", "1.0"))

	// Empty strings sort lowest
	assert.Equal(0, Compare("", ""))
	assert.Equal(-1, Compare("", "0.0.1"))
	assert.Equal(1, Compare("0.0.1", ""))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	assert := assert.New(t)

	values := []string{"", "v1.0.0", "1.0", "1.0.0", "n8.0", "n7.1", "nasm-2.16.03", "openssl-3.4.0", "2.0.0.1", "stable", "3.100"}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(Compare(a, b), -Compare(b, a), "compare(%q, %q) must be the negation of compare(%q, %q)", a, b, b, a)
		}
	}
}

func TestCompareIsTransitive(t *testing.T) {
	assert := assert.New(t)

	values := []string{"v1.0.0", "1.0.1", "n2.0", "2.0.0.1", "3.100", "nasm-2.16.03", "v0.9"}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(Compare(a, c), 0, "%q <= %q and %q <= %q must imply %q <= %q", a, b, b, c, a, c)
				}
			}
		}
	}
}

func TestIsPrerelease(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsPrerelease("v1.0.0-alpha"))
	assert.True(IsPrerelease("v1.0.0-beta"))
	assert.True(IsPrerelease("v1.0.0-rc1"))
	assert.True(IsPrerelease("v1.0.1-dev"))
	assert.True(IsPrerelease("n8.1-dev"))
	assert.True(IsPrerelease("openssl-3.4.0-alpha1"))
	assert.True(IsPrerelease("1.2.3-RC2"))
	assert.True(IsPrerelease("2.0.0-pre"))
	assert.True(IsPrerelease("2.0.0-snapshot3"))
	assert.True(IsPrerelease("1.0.0+build5"))

	assert.False(IsPrerelease("v1.0.0"))
	assert.False(IsPrerelease("n8.0"))
	assert.False(IsPrerelease("openssl-3.4.0"))
	assert.False(IsPrerelease("nasm-2.16.03"))
	assert.False(IsPrerelease("stable"))
}

func TestSelectLatestStableTag(t *testing.T) {
	assert := assert.New(t)

	tags := []string{"v1.0.0-alpha", "v1.0.0-beta", "v1.0.0-rc1", "v1.0.0", "v1.0.1-dev"}
	pattern := regexp.MustCompile(`^v[0-9]+(\.[0-9]+)*$`)

	tag, err := SelectLatestStableTag(tags, pattern)
	assert.NoError(err)
	assert.Equal("v1.0.0", tag)
}

func TestSelectLatestStableTagIgnoresInputOrder(t *testing.T) {
	assert := assert.New(t)

	tags := []string{"v1.2.0", "v1.10.0", "v1.9.1", "v0.9.0"}
	pattern := regexp.MustCompile(`^v[0-9]+(\.[0-9]+)*$`)

	tag, err := SelectLatestStableTag(tags, pattern)
	assert.NoError(err)
	assert.Equal("v1.10.0", tag)
}

func TestSelectLatestStableTagFailsWithoutStableTags(t *testing.T) {
	assert := assert.New(t)

	tags := []string{"v1.0.0-alpha", "v1.0.0-rc1", "v2.0.0-dev"}
	pattern := regexp.MustCompile(`^v[0-9]+(\.[0-9]+)*`)

	tag, err := SelectLatestStableTag(tags, pattern)
	assert.ErrorIs(err, ErrNoStableTags)
	assert.Empty(tag)
}
