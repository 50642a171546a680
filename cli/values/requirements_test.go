package values

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequirements(t *testing.T) {
	requirements, err := ReadRequirements("testdata/requirements.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"requests>=2.0", "click"}, requirements)

	requirements, err = ReadRequirements("testdata/requirements_test.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"pytest", "pytest-cov"}, requirements)
}

func TestReadRequirementsMissingFile(t *testing.T) {
	_, err := ReadRequirements(filepath.Join(t.TempDir(), "requirements.txt"))
	require.Error(t, err)
}
