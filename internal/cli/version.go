package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/blang/semver"

	"github.com/wnielson/go-mediaprobe/internal/mediainfo"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s, %s\n", mediainfo.AppName, mediainfo.FormatVersion(appVersion))
}

// NormalizeVersion strips a leading "v" and completes short versions such
// as "1.2" to "1.2.0".
func NormalizeVersion(value string) string {
	if v, err := semver.ParseTolerant(value); err == nil {
		return v.String()
	}
	return strings.TrimPrefix(value, "v")
}
