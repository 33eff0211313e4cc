package config

import (
	"github.com/roemer/gopin/pkg/common"
)

// This type represents the gopin config object.
type GopinConfig struct {
	// The path to the versions file that holds the pins.
	VersionsFile string `json:"versionsFile" yaml:"versionsFile"`
	// A list of rules that can apply to hosts.
	HostRules []*common.HostRule `json:"hostRules" yaml:"hostRules"`
}
