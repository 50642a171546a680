package values

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/populate/cli/util"
)

func TestLoadSettingsIni(t *testing.T) {
	settings, err := LoadSettings("testdata/populate.ini")
	require.NoError(t, err)
	assert.Equal(t, "my-widgets", settings.PackageName)
	assert.Equal(t, "0.1.0", settings.PackageVersion)
	assert.Equal(t, "Widgets for everyone.", settings.ShortDescription)
	assert.Equal(t, []string{"license"}, settings.ExtraKeys())
	assert.Equal(t, "MIT", settings.Extra["license"])
}

func TestLoadSettingsYaml(t *testing.T) {
	settings, err := LoadSettings("testdata/populate.yaml")
	require.NoError(t, err)
	assert.Equal(t, "my-widgets", settings.PackageName)
	// Scalars are kept as written.
	assert.Equal(t, "1.0", settings.PackageVersion)
	assert.Empty(t, settings.ExtraKeys())
}

func TestLoadSettingsEmptyKeys(t *testing.T) {
	_, err := LoadSettings("testdata/populate_empty.ini")
	require.EqualError(t, err, `Please specify values in "populate_empty.ini" for the `+
		"following: package_name, short_description")

	var configError *util.ConfigError
	require.ErrorAs(t, err, &configError)
	assert.Equal(t, []string{"package_name", "short_description"}, configError.Keys)
}

func TestLoadSettingsNoSection(t *testing.T) {
	_, err := LoadSettings("testdata/populate_no_section.ini")
	var configError *util.ConfigError
	require.ErrorAs(t, err, &configError)
	assert.Contains(t, err.Error(), "[global]")
}

func TestLoadSettingsUnsupportedFormat(t *testing.T) {
	_, err := LoadSettings("testdata/requirements.txt")
	var configError *util.ConfigError
	require.ErrorAs(t, err, &configError)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "populate.ini"))
	require.Error(t, err)
}

func TestFindSettingsFile(t *testing.T) {
	path, err := FindSettingsFile("testdata")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "populate.ini"), path)

	_, err = FindSettingsFile(t.TempDir())
	var configError *util.ConfigError
	require.ErrorAs(t, err, &configError)
}
