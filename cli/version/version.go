// Package version reports the populate build version.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion = "<unknown>"
	versionTitle   = "populate"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalizeTag returns dot separated version segments of a git tag:
// "v1.2" becomes "1.2.0". Tags that are not versions are returned as is.
func normalizeTag(tag string) string {
	normalizedVersion, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}
	segments := make([]string, 0, len(normalizedVersion.Segments()))
	for _, num := range normalizedVersion.Segments() {
		segments = append(segments, strconv.Itoa(num))
	}
	return strings.Join(segments, ".")
}

// GetVersion return string with populate version info.
func GetVersion(showShort bool, needCommit bool) string {
	version := unknownVersion
	if gitTag != "" {
		version = normalizeTag(gitTag)
		if versionLabel != "" {
			version = fmt.Sprintf("%s/%s", version, versionLabel)
		}
	}

	switch {
	case needCommit:
		return fmt.Sprintf("%s.%s", version, gitCommit)
	case showShort:
		return version
	}
	return fmt.Sprintf("%s version %s, %s/%s. commit: %s",
		versionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit)
}
