package gopin

// The version of gopin.
var Version = "0.1.0"
