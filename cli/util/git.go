package util

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"
	"unicode"

	"github.com/hashicorp/go-version"
)

var gitVersionRe = regexp.MustCompile(`^\d+(\.\d+)*`)

// isGitAddUpdateTreeWide checks if `git add -u` without a pathspec stages the
// whole tree for the git version passed using gitOutput input parameter.
// Older versions limit it to the current directory.
func isGitAddUpdateTreeWide(gitOutput string) bool {
	versionStr := strings.TrimLeftFunc(gitOutput, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	// Strip platform suffixes like ".windows.1" or " (Apple Git-143)".
	versionStr = gitVersionRe.FindString(versionStr)
	gitVersion, err := version.NewVersion(versionStr)
	if err != nil {
		return false
	}
	treeWideStartGitVersion, err := version.NewVersion("2.0")
	if err != nil {
		return false
	}
	return gitVersion.GreaterThanOrEqual(treeWideStartGitVersion)
}

// IsGitAddUpdateTreeWide checks if `git add -u` stages the whole tree with
// the current git version.
func IsGitAddUpdateTreeWide() bool {
	cmd := exec.Command("git", "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	err := cmd.Run()
	if err != nil {
		return false
	}
	return isGitAddUpdateTreeWide(out.String())
}
