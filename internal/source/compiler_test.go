// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ozgen/mockenv-builder/internal/environment"
)

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func compile(t *testing.T, srcDir string) (string, error) {
	t.Helper()
	out, err := NewCompiler(testLog()).Compile(srcDir)
	if out != "" {
		t.Cleanup(func() { _ = os.RemoveAll(out) })
	}
	return out, err
}

func TestCompile_TranscodesYAMLToJSON(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "settings.yaml", "kind: settings\nuuid: abc\nname: Demo\nport: 3000\n")

	out, err := compile(t, src)
	require.NoError(t, err)

	record := readJSON(t, filepath.Join(out, "settings.json"))
	require.Equal(t, "abc", record["uuid"])
	require.Equal(t, "Demo", record["name"])
	require.Equal(t, float64(3000), record["port"])
}

func TestCompile_StripsKindTag(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "settings.yaml", "kind: settings\nuuid: abc\n")

	out, err := compile(t, src)
	require.NoError(t, err)

	record := readJSON(t, filepath.Join(out, "settings.json"))
	_, hasKind := record["kind"]
	require.False(t, hasKind, "kind tag must not survive compilation")
}

func TestCompile_MirrorsTreeLayout(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "settings.yml", "uuid: a\n")
	writeSource(t, src, "features/users/folder.yaml", "kind: folder\nuuid: b\nname: Users\n")
	writeSource(t, src, "features/users/get-users.yaml", "kind: route\nuuid: c\nmethod: get\n")
	writeSource(t, src, "data/users.yaml", "kind: databucket\nuuid: d\nvalue: '[]'\n")

	out, err := compile(t, src)
	require.NoError(t, err)

	for _, rel := range []string{
		"settings.json",
		"features/users/folder.json",
		"features/users/get-users.json",
		"data/users.json",
	} {
		require.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}
}

func TestCompile_JSONSourcePassesThrough(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "settings.json", `{"kind": "settings", "uuid": "abc", "port": 3000}`)

	out, err := compile(t, src)
	require.NoError(t, err)

	record := readJSON(t, filepath.Join(out, "settings.json"))
	require.Equal(t, "abc", record["uuid"])
}

func TestCompile_KindMismatchFails(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "features/users/get-users.yaml", "kind: databucket\nuuid: a\n")

	_, err := compile(t, src)
	require.ErrorIs(t, err, environment.ErrCompilationFailed)
	require.Contains(t, err.Error(), "databucket")
	require.Contains(t, err.Error(), "route")
}

func TestCompile_ParseErrorFails(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "settings.yaml", "uuid: [unclosed\n")

	_, err := compile(t, src)
	require.ErrorIs(t, err, environment.ErrCompilationFailed)
}

func TestCompile_CollectsAllDiagnostics(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "features/users/one.yaml", "kind: folder\nuuid: a\n")
	writeSource(t, src, "features/users/two.yaml", "kind: settings\nuuid: b\n")

	_, err := compile(t, src)
	require.ErrorIs(t, err, environment.ErrCompilationFailed)
	require.Contains(t, err.Error(), "one.yaml")
	require.Contains(t, err.Error(), "two.yaml")
}

func TestCompile_NestedFeatureDirRejected(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "features/users/nested/deep.yaml", "kind: route\nuuid: a\n")

	_, err := compile(t, src)
	require.ErrorIs(t, err, environment.ErrCompilationFailed)
	require.Contains(t, err.Error(), "nested")
}

func TestCompile_IgnoresForeignFiles(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "settings.yaml", "uuid: a\n")
	writeSource(t, src, "features/users/README.md", "# notes\n")
	writeSource(t, src, "features/users/get.yaml", "kind: route\nuuid: b\n")

	out, err := compile(t, src)
	require.NoError(t, err)

	require.NoFileExists(t, filepath.Join(out, "features/users/README.json"))
	require.FileExists(t, filepath.Join(out, "features/users/get.json"))
}
