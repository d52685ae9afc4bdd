package mediainfo

import "github.com/blang/semver"

const (
	AppName = "go-mediaprobe"
	AppURL  = "https://github.com/wnielson/go-mediaprobe"
)

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

// FormatVersion prints a release version as "v1.2.3". Anything that does
// not parse as semver, such as "dev", is returned unchanged.
func FormatVersion(version string) string {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return version
	}
	return "v" + v.String()
}
