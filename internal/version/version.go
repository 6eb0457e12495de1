package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Set at build time with -ldflags "-X portfolio-site/internal/version.Version=...".
var (
	Version   string = "dev"
	GitCommit string = "unknown"
	BuildTime string = "unknown"
)

var fillOnce sync.Once

// fill falls back to the VCS stamp Go embeds in the binary when ldflags were
// not used.
func fill() {
	fillOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}

		if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}

		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if GitCommit == "unknown" {
					GitCommit = setting.Value
				}
			case "vcs.time":
				if BuildTime == "unknown" {
					BuildTime = setting.Value
				}
			}
		}
	})
}

func GetVersion() string {
	fill()
	return Version
}

func GetGitCommit() string {
	fill()
	return GitCommit
}

func GetBuildTime() string {
	fill()
	return BuildTime
}

func GetFullVersion() string {
	fill()
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}
