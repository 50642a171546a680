package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteRaw(t *testing.T) {
	text, count := Substitute("name: {{ package_name }}!", "package_name", "widgets", Raw)
	assert.Equal(t, "name: widgets!", text)
	assert.Equal(t, 1, count)
}

func TestSubstituteAllOccurrences(t *testing.T) {
	const src = "{{ name }} and {{ name }}\n  {{ name }}"
	text, count := Substitute(src, "name", "x", Raw)
	assert.Equal(t, "x and x\n  x", text)
	assert.Equal(t, 3, count)
}

func TestSubstituteIsIdempotent(t *testing.T) {
	const src = "a {{ k }} b {{ k|capitalize }} c\n    {{ k|pystring }}\n"
	values := NewValues()
	values.Set("k", Scalar("some value"))

	engine := NewDefaultEngine()
	once := engine.RenderText(src, values)
	twice := engine.RenderText(once, values)
	assert.Equal(t, once, twice)
	assert.Empty(t, FindAnyTokens(once))
}

func TestSubstituteNoMatch(t *testing.T) {
	const src = "{{ other }} {{ name|unknown }} {{name}}"
	text, count := Substitute(src, "name", "x", Raw)
	assert.Equal(t, src, text)
	assert.Zero(t, count)
}

func TestSubstituteReplacementIsNotRescanned(t *testing.T) {
	text, count := Substitute("[{{ k }}]", "k", "{{ k }}", Raw)
	assert.Equal(t, "[{{ k }}]", text)
	assert.Equal(t, 1, count)
}

func TestSubstituteKeysAreExact(t *testing.T) {
	const src = "{{ package_name }} {{ name }} {{ Name }}"
	text, _ := Substitute(src, "name", "x", Raw)
	assert.Equal(t, "{{ package_name }} x {{ Name }}", text)
}

func TestRenderTextScalarAndSequence(t *testing.T) {
	const src = `setup(
    name='{{ package_name }}',
    description=(
        {{ short_description|pystring }}
    ),
    install_requires=(
        {{ install_requires|pytuple }}
    ),
    tests_require=(
        {{ tests_require|pytuple }}
    ),
    # {{ package_name|capitalize }} by {{ author_name }}
)
`
	values := NewValues()
	values.Set("package_name", Scalar("my widgets"))
	values.Set("short_description", Scalar("Widgets for everyone"))
	values.Set("install_requires", Sequence{"requests>=2", "click"})
	values.Set("tests_require", Sequence{})

	const expected = `setup(
    name='my widgets',
    description=(
        'Widgets for everyone'
    ),
    install_requires=(
        'requests>=2',
        'click',
    ),
    tests_require=(),
    # My Widgets by {{ author_name }}
)
`
	assert.Equal(t, expected, NewDefaultEngine().RenderText(src, values))
}

func TestRenderTextValueKindSelectsFilters(t *testing.T) {
	values := NewValues()
	values.Set("deps", Sequence{"a"})
	values.Set("name", Scalar("n"))

	const src = "{{ deps }} {{ deps|capitalize }} {{ name|pytuple }}"
	assert.Equal(t, src, NewDefaultEngine().RenderText(src, values))
}

func TestRenderTextOrderIndependent(t *testing.T) {
	const src = "{{ a }}-{{ b|capitalize }}\n  {{ c|pytuple }}\n"

	first := NewValues()
	first.Set("a", Scalar("1"))
	first.Set("b", Scalar("two"))
	first.Set("c", Sequence{"x"})

	second := NewValues()
	second.Set("c", Sequence{"x"})
	second.Set("b", Scalar("two"))
	second.Set("a", Scalar("1"))

	engine := NewDefaultEngine()
	assert.Equal(t, engine.RenderText(src, first), engine.RenderText(src, second))
}

func TestTemplateFileRender(t *testing.T) {
	workDir := t.TempDir()
	const fileMode = os.FileMode(0o640)

	srcFileName := filepath.Join(workDir, "setup.py.template")
	require.NoError(t, os.WriteFile(srcFileName, []byte("name = '{{ package_name }}'\n"),
		fileMode))

	values := NewValues()
	values.Set("package_name", Scalar("widgets"))

	engine := NewDefaultEngine()
	require.NoError(t, engine.RenderFile(srcFileName, srcFileName, values))

	stat, err := os.Stat(srcFileName)
	require.NoError(t, err)
	assert.Equal(t, fileMode, stat.Mode().Perm())

	buf, err := os.ReadFile(srcFileName)
	require.NoError(t, err)
	assert.Equal(t, "name = 'widgets'\n", string(buf))
}

func TestTemplateFileRenderMissingFile(t *testing.T) {
	engine := NewDefaultEngine()
	missing := filepath.Join(t.TempDir(), "missing.template")
	require.Error(t, engine.RenderFile(missing, missing, NewValues()))
}
