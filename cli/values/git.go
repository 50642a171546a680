package values

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tarantool/populate/cli/util"
)

// GitMetadata supplies author identity and the remote repository URL.
type GitMetadata interface {
	// AuthorName returns git user.name.
	AuthorName() (string, error)
	// AuthorEmail returns git user.email.
	AuthorEmail() (string, error)
	// RemoteURL returns remote.origin.url.
	RemoteURL() (string, error)
}

// gitCliMetadata reads metadata with git config command.
type gitCliMetadata struct {
	workDir string
}

// NewGitCliMetadata creates git metadata source for the repository in workDir.
func NewGitCliMetadata(workDir string) GitMetadata {
	return gitCliMetadata{workDir: workDir}
}

func (g gitCliMetadata) config(args ...string) (string, error) {
	out, err := util.ExecuteCommandGetOutput("git", g.workDir, append([]string{"config"}, args...)...)
	if err != nil {
		return "", fmt.Errorf("git config %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (g gitCliMetadata) AuthorName() (string, error) {
	return g.config("user.name")
}

func (g gitCliMetadata) AuthorEmail() (string, error) {
	return g.config("user.email")
}

func (g gitCliMetadata) RemoteURL() (string, error) {
	return g.config("--get", "remote.origin.url")
}

// Remote is a hosted repository location.
type Remote struct {
	Host string
	User string
	Repo string
}

// remoteURLRe matches scp-like (git@host:user/repo.git) and URL
// (https://host/user/repo) remotes.
var remoteURLRe = regexp.MustCompile(`^(?:[a-z][a-z0-9+.-]*://)?(?:[^@/\s]+@)?` +
	`(?P<host>[^:/@\s]+)(?::\d+)?[:/](?P<user>[^/\s]+)/(?P<repo>[^/\s]+?)(?:\.git)?/?$`)

// ParseRemoteURL extracts the hosting user and repository name from url.
func ParseRemoteURL(url string) (Remote, error) {
	url = strings.TrimSpace(url)
	if !remoteURLRe.MatchString(url) {
		return Remote{}, util.NewConfigError("Failed to find a hosting user and/or repository "+
			"name in the remote URL %q. Check \"git config --get remote.origin.url\".", url)
	}
	matches := util.FindNamedMatches(remoteURLRe, url)
	return Remote{
		Host: matches["host"],
		User: matches["user"],
		Repo: matches["repo"],
	}, nil
}
