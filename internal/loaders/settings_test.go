// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package loaders

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozgen/mockenv-builder/internal/environment"
)

func TestSettingsLoader_MissingFile(t *testing.T) {
	root := t.TempDir()

	_, err := NewSettingsLoader(newLoader(), testLog()).Load(root)
	require.ErrorIs(t, err, environment.ErrMissingRequiredFile)
}

func TestSettingsLoader_MissingUUID(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, "settings.json", `{"name": "env", "port": 3000}`)

	_, err := NewSettingsLoader(newLoader(), testLog()).Load(root)
	require.ErrorIs(t, err, environment.ErrMissingIdentifier)
}

func TestSettingsLoader_ReturnsRecordAsAuthored(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, "settings.json", `{
	  "uuid": "1e7b5a1c-67b9-4a5e-8f3a-0d2b6c9e4f10",
	  "name": "demo",
	  "port": 3001,
	  "cors": true,
	  "headers": [{"key": "Content-Type", "value": "application/json"}]
	}`)

	s, err := NewSettingsLoader(newLoader(), testLog()).Load(root)
	require.NoError(t, err)

	require.Equal(t, "1e7b5a1c-67b9-4a5e-8f3a-0d2b6c9e4f10", s.UUID)
	require.Equal(t, "demo", s.Name)
	require.Equal(t, 3001, s.Port)
	require.True(t, s.Cors)
	require.Equal(t, []environment.HeaderPair{
		{Key: "Content-Type", Value: "application/json"},
	}, s.Headers)

	// optional fields stay absent, no defaulting
	require.Empty(t, s.Hostname)
	require.Empty(t, s.EndpointPrefix)
	require.Zero(t, s.Latency)
}

func TestSettingsLoader_MalformedRecord(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, "settings.json", `{"uuid": [1,2]}`)

	_, err := NewSettingsLoader(newLoader(), testLog()).Load(root)
	require.ErrorIs(t, err, environment.ErrLoaderFailure)
}
