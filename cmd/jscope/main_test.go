package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-scope/report"
)

type fixture struct {
	dir    string
	config string
}

func newFixture(t *testing.T, config string) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir()}
	f.config = f.write(t, "jscope.toml", config)
	return f
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", f.config))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolveClean(t *testing.T) {
	f := newFixture(t, "")
	file := f.write(t, "ok.js", "function add(a, b) { return a + b; }\nconsole.log(add(1, 2));\n")

	out, _, err := f.run(t, "", "resolve", file)
	require.NoError(t, err)
	assert.Contains(t, out, "ok.js: 2 scopes, 3 bindings")
	assert.NotContains(t, out, "unresolved-reference")
}

func TestResolveReportsErrors(t *testing.T) {
	f := newFixture(t, "")
	file := f.write(t, "bad.js", "let total = 0;\ntotl += 1;\n")

	out, _, err := f.run(t, "", "resolve", file)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "bad.js:2:1: unresolved-reference: totl is not defined")
	assert.Contains(t, out, "did you mean total?")
}

func TestResolveStrictFlag(t *testing.T) {
	f := newFixture(t, "")
	file := f.write(t, "sloppy.js", "counter = 1;\n")

	_, _, err := f.run(t, "", "resolve", file)
	assert.NoError(t, err, "sloppy writes create implicit globals")

	out, _, err := f.run(t, "", "resolve", "--strict", file)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "assignment to undeclared variable counter in strict mode")
}

func TestResolveConfigGlobals(t *testing.T) {
	f := newFixture(t, "globals = [\"jQuery\"]\n")
	file := f.write(t, "app.js", "jQuery(function () { return $; });\n")

	out, _, err := f.run(t, "", "resolve", file)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "$ is not defined")
	assert.NotContains(t, out, "jQuery is not defined")

	_, _, err = f.run(t, "", "resolve", "-g", "$", file)
	assert.NoError(t, err)
}

func TestResolveJSON(t *testing.T) {
	f := newFixture(t, "format = \"yaml\"\n")
	a := f.write(t, "a.js", "var x = 1;\n")
	b := f.write(t, "b.js", "x;\n")

	out, _, err := f.run(t, "", "resolve", "--format", "json", "--no-default-globals", a, b)
	require.ErrorIs(t, err, errReported)

	var docs []report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, a, docs[0].File)
	assert.Empty(t, docs[0].Diagnostics)
	assert.Equal(t, b, docs[1].File)
	require.Len(t, docs[1].Diagnostics, 1)
	assert.Equal(t, report.DiagnosticUnresolved, docs[1].Diagnostics[0].Kind)
}

func TestResolveStdin(t *testing.T) {
	f := newFixture(t, "")
	out, _, err := f.run(t, "const answer = 42;\nexport default answer;\n", "resolve", "-")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "-:2:1: syntax-error")
}

func TestResolveMissingFile(t *testing.T) {
	f := newFixture(t, "")
	_, _, err := f.run(t, "", "resolve", filepath.Join(f.dir, "missing.js"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errReported)
	assert.Contains(t, err.Error(), "cannot read")
}

func TestResolveBadFormat(t *testing.T) {
	f := newFixture(t, "")
	file := f.write(t, "ok.js", "1;\n")
	_, _, err := f.run(t, "", "resolve", "--format", "xml", file)
	assert.Error(t, err)
}

func TestScopes(t *testing.T) {
	f := newFixture(t, "")
	file := f.write(t, "loop.js", "for (let i = 0; i < 2; i++) {}\n")

	out, stderr, err := f.run(t, "", "scopes", file)
	require.NoError(t, err)
	assert.Equal(t, "global #1 @1:1\n  block #2 (for head) @1:1\n    - let i [block] refs=3 per-iteration\n", out)
	assert.Empty(t, stderr)
}
