package registry

import (
	"testing"

	"github.com/roemer/gopin/pkg/common"
	"github.com/stretchr/testify/assert"
)

func TestDependenciesAreConsistent(t *testing.T) {
	assert := assert.New(t)

	seenNames := map[string]bool{}
	seenKeys := map[string]bool{}
	for _, dependency := range Dependencies() {
		assert.False(seenNames[dependency.Name], "duplicate name '%s'", dependency.Name)
		seenNames[dependency.Name] = true

		for _, key := range []string{dependency.VersionKey, dependency.UrlKey, dependency.Sha256Key} {
			if key == "" {
				continue
			}
			assert.False(seenKeys[key], "key '%s' is owned by more than one dependency", key)
			seenKeys[key] = true
		}

		// A checksum needs something to download
		if dependency.Sha256Key != "" {
			assert.NotNil(dependency.DownloadUrl, "dependency '%s'", dependency.Name)
			assert.NotEmpty(dependency.UrlKey, "dependency '%s'", dependency.Name)
		}

		switch dependency.Datasource {
		case common.DATASOURCE_TYPE_STATIC:
			assert.NotEmpty(dependency.StaticVersion, "dependency '%s'", dependency.Name)
		case common.DATASOURCE_TYPE_GITLAB_TAGS:
			assert.NotEmpty(dependency.Project, "dependency '%s'", dependency.Name)
			assert.NotNil(dependency.TagPattern, "dependency '%s'", dependency.Name)
		default:
			assert.NotEmpty(dependency.Repository, "dependency '%s'", dependency.Name)
			assert.NotNil(dependency.TagPattern, "dependency '%s'", dependency.Name)
		}
	}
}

func TestNormalizeVersionStripsPrefixes(t *testing.T) {
	assert := assert.New(t)

	byName := map[string]*common.Dependency{}
	for _, dependency := range Dependencies() {
		byName[dependency.Name] = dependency
	}

	assert.Equal("2.16.03", byName["nasm"].NormalizeVersion("nasm-2.16.03"))
	assert.Equal("3.4.0", byName["openssl"].NormalizeVersion("openssl-3.4.0"))
	assert.Equal("1.5.2", byName["opus"].NormalizeVersion("v1.5.2"))
	// ffmpeg tags are stored in their prefixed form
	assert.Nil(byName["ffmpeg"].NormalizeVersion)
}

func TestDownloadUrls(t *testing.T) {
	assert := assert.New(t)

	byName := map[string]*common.Dependency{}
	for _, dependency := range Dependencies() {
		byName[dependency.Name] = dependency
	}

	assert.Equal("https://downloads.xiph.org/releases/opus/opus-1.5.2.tar.gz", byName["opus"].DownloadUrl("1.5.2"))
	assert.Equal("https://downloads.xiph.org/releases/ogg/libogg-1.3.6.tar.gz", byName["ogg"].DownloadUrl("1.3.6"))
	assert.Equal("https://downloads.xiph.org/releases/vorbis/libvorbis-1.3.7.tar.gz", byName["vorbis"].DownloadUrl("1.3.7"))
	assert.Equal("https://zlib.net/zlib-1.3.1.tar.gz", byName["zlib"].DownloadUrl("1.3.1"))
}
