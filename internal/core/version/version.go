// Package version reports build metadata stamped with -ldflags, falling back to the vcs info Go records
package version

import "runtime/debug"

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Set at build time:
//
//	-ldflags "-X reviewtrust/internal/core/version.version=v0.3.0 -X reviewtrust/internal/core/version.commit=abcd123"
var (
	version = "dev"
	commit  = ""
	date    = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Info returns build metadata for service
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	if bi.Commit != "" && bi.Date != "" {
		return bi
	}
	if info, ok := readBuildInfo(); ok && info != nil {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "":
				bi.Commit = s.Value
				if len(bi.Commit) > 7 {
					bi.Commit = bi.Commit[:7]
				}
			case s.Key == "vcs.time" && bi.Date == "":
				bi.Date = s.Value
			}
		}
	}
	if bi.Commit == "" {
		bi.Commit = "none"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	return bi
}
