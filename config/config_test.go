package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

		"github.com/t14raptor/go-scope/config"
	"github.com/t14raptor/go-scope/parser"
	"github.com/t14raptor/go-scope/resolver"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.True(t, c.DefaultGlobals)
	assert.True(t, c.Suggestions)
	assert.False(t, c.Strict)
	assert.Equal(t, "text", c.Format)
	assert.NoError(t, c.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jscope.toml", `
strict = true
globals = ["jQuery", "$"]
default-globals = false
format = "json"
verbosity = 2
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, c.Strict)
	assert.Equal(t, []string{"jQuery", "$"}, c.Globals)
	assert.False(t, c.DefaultGlobals)
	assert.True(t, c.Suggestions, "unset keys keep their defaults")
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 2, c.Verbosity)
	assert.True(t, filepath.IsAbs(c.Path))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jscope.yaml", `
strict: true
globals:
  - describe
  - it
suggestions: false
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, c.Strict)
	assert.Equal(t, []string{"describe", "it"}, c.Globals)
	assert.False(t, c.Suggestions)
	assert.True(t, c.DefaultGlobals)
	assert.Equal(t, "text", c.Format)
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jscope.yml", "")
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, c.DefaultGlobals)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, file, content string
	}{
		{"unknown toml key", "a.toml", "stict = true\n"},
		{"unknown yaml key", "b.yaml", "stict: true\n"},
		{"bad toml", "c.toml", "strict = \n"},
		{"bad format", "d.toml", "format = \"xml\"\n"},
		{"negative verbosity", "e.yaml", "verbosity: -1\n"},
		{"bad global", "f.yaml", "globals: [\"a.b\"]\n"},
		{"unsupported extension", "g.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, dir, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "jscope.toml", "strict = true\n")
	nested := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	c, err := config.FindAndLoad(nested)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, c.Strict)
	assert.Equal(t, filepath.Join(root, "jscope.toml"), c.Path)
}

func TestFindAndLoadPrefersNearest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "jscope.toml", "strict = true\n")
	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeFile(t, nested, "jscope.yaml", "strict: false\n")

	c, err := config.FindAndLoad(nested)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.False(t, c.Strict)
}

func TestOptions(t *testing.T) {
	c := config.Default()
	c.Strict = true
	c.DefaultGlobals = false
	c.Globals = []string{"app"}

	p, err := parser.ParseFile("x = app; app.start();")
	require.NoError(t, err)
	res, err := resolver.Resolve(p, c.Options()...)
	require.Error(t, err)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], resolver.ErrUnresolvedReference)
}
