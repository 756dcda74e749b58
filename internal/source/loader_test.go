// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozgen/mockenv-builder/internal/environment"
)

func TestRecordLoader_DecodesTypedRecord(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "route.json")
	require.NoError(t, os.WriteFile(p, []byte(
		`{"uuid": "x", "method": "get", "endpoint": "users"}`), 0o600))

	var rt environment.Route
	require.NoError(t, NewRecordLoader(testLog()).Load(p, &rt))
	require.Equal(t, "x", rt.UUID)
	require.Equal(t, "get", rt.Method)
}

func TestRecordLoader_MissingFile(t *testing.T) {
	var rt environment.Route
	err := NewRecordLoader(testLog()).Load("/no/such/record.json", &rt)
	require.Error(t, err)
}

func TestRecordLoader_DecodeFailureIsLoaderFailure(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"uuid": [1]}`), 0o600))

	var rt environment.Route
	err := NewRecordLoader(testLog()).Load(p, &rt)
	require.ErrorIs(t, err, environment.ErrLoaderFailure)
	require.Contains(t, err.Error(), "bad.json")
}

func TestRecordLoader_CachesPerPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "route.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"uuid": "first"}`), 0o600))

	loader := NewRecordLoader(testLog())

	var one environment.Route
	require.NoError(t, loader.Load(p, &one))

	// rewrite the file; the cached bytes must win for this run
	require.NoError(t, os.WriteFile(p, []byte(`{"uuid": "second"}`), 0o600))

	var two environment.Route
	require.NoError(t, loader.Load(p, &two))
	require.Equal(t, one.UUID, two.UUID)

	// a fresh loader (a fresh run) sees the new content
	var three environment.Route
	require.NoError(t, NewRecordLoader(testLog()).Load(p, &three))
	require.Equal(t, "second", three.UUID)
}
