// Package registry defines the static list of third-party libraries that are
// linked into the transcoder binary, together with the upstream source each
// one is tracked on and the keys it owns in the versions file.
package registry

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/roemer/gopin/pkg/common"
)

var dependencies = []*common.Dependency{
	{
		Name:       "ffmpeg",
		Datasource: common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey: "FFMPEG_VERSION",
		Repository: "FFmpeg/FFmpeg",
		// The release tags are date-coded like "n8.0" and stored as-is
		TagPattern: regexp.MustCompile(`^n\d+\.\d+(\.\d+)?$`),
	},
	{
		Name:             "nasm",
		Datasource:       common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey:       "NASM_VERSION",
		Repository:       "netwide-assembler/nasm",
		TagPattern:       regexp.MustCompile(`^nasm-\d+\.\d+(\.\d+)?$`),
		NormalizeVersion: stripPrefix("nasm-"),
	},
	{
		Name:             "openssl",
		Datasource:       common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey:       "OPENSSL_VERSION",
		Repository:       "openssl/openssl",
		TagPattern:       regexp.MustCompile(`^openssl-3\.\d+\.\d+$`),
		NormalizeVersion: stripPrefix("openssl-"),
	},
	{
		// x264 tracks the maintained VideoLAN "stable" branch instead of tags
		Name:          "x264",
		Datasource:    common.DATASOURCE_TYPE_STATIC,
		VersionKey:    "X264_VERSION",
		StaticVersion: "stable",
	},
	{
		Name:       "x265",
		Datasource: common.DATASOURCE_TYPE_BITBUCKET_TAGS,
		VersionKey: "X265_VERSION",
		Repository: "multicoreware/x265_git",
		TagPattern: regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`),
	},
	{
		Name:         "dav1d",
		Datasource:   common.DATASOURCE_TYPE_GITLAB_TAGS,
		VersionKey:   "DAV1D_VERSION",
		Project:      "videolan/dav1d",
		TagPattern:   regexp.MustCompile(`^\d+\.\d+\.\d+$`),
		RegistryUrls: []string{"https://code.videolan.org/api/v4"},
	},
	{
		Name:       "svt-av1",
		Datasource: common.DATASOURCE_TYPE_GITLAB_TAGS,
		VersionKey: "SVTAV1_VERSION",
		Project:    "AOMediaCodec/SVT-AV1",
		TagPattern: regexp.MustCompile(`^v\d+\.\d+\.\d+$`),
	},
	{
		Name:             "opus",
		Datasource:       common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey:       "OPUS_VERSION",
		UrlKey:           "OPUS_URL",
		Sha256Key:        "OPUS_SHA256",
		Repository:       "xiph/opus",
		TagPattern:       regexp.MustCompile(`^v\d+\.\d+(\.\d+)?$`),
		NormalizeVersion: stripPrefix("v"),
		DownloadUrl:      xiphDownloadUrl("opus", "opus"),
	},
	{
		Name:             "ogg",
		Datasource:       common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey:       "OGG_VERSION",
		UrlKey:           "OGG_URL",
		Sha256Key:        "OGG_SHA256",
		Repository:       "xiph/ogg",
		TagPattern:       regexp.MustCompile(`^v\d+\.\d+(\.\d+)?$`),
		NormalizeVersion: stripPrefix("v"),
		DownloadUrl:      xiphDownloadUrl("ogg", "libogg"),
	},
	{
		Name:             "vorbis",
		Datasource:       common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey:       "VORBIS_VERSION",
		UrlKey:           "VORBIS_URL",
		Sha256Key:        "VORBIS_SHA256",
		Repository:       "xiph/vorbis",
		TagPattern:       regexp.MustCompile(`^v\d+\.\d+(\.\d+)?$`),
		NormalizeVersion: stripPrefix("v"),
		DownloadUrl:      xiphDownloadUrl("vorbis", "libvorbis"),
	},
	{
		Name:       "libvpx",
		Datasource: common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey: "LIBVPX_VERSION",
		Repository: "webmproject/libvpx",
		TagPattern: regexp.MustCompile(`^v\d+\.\d+\.\d+$`),
	},
	{
		Name:             "fdk-aac",
		Datasource:       common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey:       "FDKAAC_VERSION",
		Repository:       "mstorsjo/fdk-aac",
		TagPattern:       regexp.MustCompile(`^v\d+\.\d+(\.\d+)?$`),
		NormalizeVersion: stripPrefix("v"),
	},
	{
		// lame releases on SourceForge without a tag listing api, so the pin is fixed
		Name:          "lame",
		Datasource:    common.DATASOURCE_TYPE_STATIC,
		VersionKey:    "LAME_VERSION",
		StaticVersion: "3.100",
	},
	{
		Name:             "zlib",
		Datasource:       common.DATASOURCE_TYPE_GITHUB_TAGS,
		VersionKey:       "ZLIB_VERSION",
		UrlKey:           "ZLIB_URL",
		Sha256Key:        "ZLIB_SHA256",
		Repository:       "madler/zlib",
		TagPattern:       regexp.MustCompile(`^v\d+\.\d+\.\d+$`),
		NormalizeVersion: stripPrefix("v"),
		DownloadUrl: func(version string) string {
			return fmt.Sprintf("https://zlib.net/zlib-%s.tar.gz", version)
		},
	},
}

func init() {
	for _, dependency := range dependencies {
		validate(dependency)
	}
}

// Dependencies returns the tracked dependencies in their report order.
func Dependencies() []*common.Dependency {
	return slices.Clone(dependencies)
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

func stripPrefix(prefix string) func(version string) string {
	return func(version string) string {
		return strings.TrimPrefix(version, prefix)
	}
}

func xiphDownloadUrl(library, filePrefix string) func(version string) string {
	return func(version string) string {
		return fmt.Sprintf("https://downloads.xiph.org/releases/%s/%s-%s.tar.gz", library, filePrefix, version)
	}
}

// Guards the registry against inconsistent entries. A failure here is a
// programmer error in the list above, so it panics at startup.
func validate(dependency *common.Dependency) {
	if dependency.Name == "" || dependency.VersionKey == "" {
		panic(fmt.Sprintf("dependency '%s' needs a name and a version key", dependency.Name))
	}
	if dependency.Sha256Key != "" && dependency.DownloadUrl == nil {
		panic(fmt.Sprintf("dependency '%s' defines a sha256 key but no download url", dependency.Name))
	}
	if dependency.Datasource != common.DATASOURCE_TYPE_STATIC && dependency.TagPattern == nil {
		panic(fmt.Sprintf("dependency '%s' needs a tag pattern", dependency.Name))
	}
	if dependency.Datasource == common.DATASOURCE_TYPE_STATIC && dependency.StaticVersion == "" {
		panic(fmt.Sprintf("dependency '%s' needs a static version", dependency.Name))
	}
}
