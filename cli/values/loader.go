// Package values collects template values from the project settings file,
// git metadata and dependency lists.
package values

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/tarantool/populate/cli/templates"
)

// Loader assembles template values. Values are computed once per run.
type Loader struct {
	// SettingsPath is a path to populate.ini or populate.yaml.
	SettingsPath string
	// TemplateDir is a directory with requirements files.
	TemplateDir string
	// Git provides author identity and the remote URL.
	Git GitMetadata
	// Now returns current time. Used for copyright years.
	Now func() time.Time
}

// Load returns template values in a fixed order: git metadata, dependency
// lists, settings and derived values.
func (loader Loader) Load() (*templates.Values, error) {
	values := templates.NewValues()

	authorEmail, err := loader.Git.AuthorEmail()
	if err != nil {
		return nil, err
	}
	authorName, err := loader.Git.AuthorName()
	if err != nil {
		return nil, err
	}
	remoteURL, err := loader.Git.RemoteURL()
	if err != nil {
		return nil, err
	}
	remote, err := ParseRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if loader.Now != nil {
		now = loader.Now
	}

	values.Set("author_email", templates.Scalar(authorEmail))
	values.Set("author_name", templates.Scalar(authorName))
	values.Set("copyright_years", templates.Scalar(strconv.Itoa(now().Year())))
	values.Set("github_user", templates.Scalar(remote.User))
	values.Set("repo_name", templates.Scalar(remote.Repo))
	values.Set("repo_host", templates.Scalar(remote.Host))

	for _, list := range [...]struct{ key, fileName string }{
		{"install_requires", RequirementsFile},
		{"tests_require", TestRequirementsFile},
	} {
		requirements, err := ReadRequirements(filepath.Join(loader.TemplateDir, list.fileName))
		if err != nil {
			return nil, err
		}
		values.Set(list.key, templates.Sequence(requirements))
	}

	settings, err := LoadSettings(loader.SettingsPath)
	if err != nil {
		return nil, err
	}
	for _, kv := range settings.Required() {
		values.Set(kv[0], templates.Scalar(kv[1]))
	}
	for _, key := range settings.ExtraKeys() {
		if _, found := values.Get(key); found {
			log.Warnf("Settings key %q overrides a computed value.", key)
		}
		values.Set(key, templates.Scalar(fmt.Sprint(settings.Extra[key])))
	}

	// The package directory should not have dashes in it, but dashes are
	// common in package names.
	values.Set("package_dir_name",
		templates.Scalar(strings.ReplaceAll(settings.PackageName, "-", "_")))

	return values, nil
}
