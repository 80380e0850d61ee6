// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine in Go.
//
// Version: 0.2.0
//
// The package offers AC-3 constraint propagation, backtracking search
// with pluggable heuristics, and min-conflicts local repair, designed
// for production use with immutable problem values that are safe to
// share across concurrent solver instances.
package csp

// Version represents the current version of the GoCSP engine.
const Version = "0.2.0"

// VersionInfo provides detailed version information.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: "1.25+",
	}
}
