// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"path/filepath"
	"strings"
)

// Source tree convention:
//
//	<root>/settings.yaml|yml|json
//	<root>/features/<folder-name>/folder.yaml? + <route>.yaml...
//	<root>/data/<bucket>.yaml...
//
// The intermediate tree mirrors the layout with every record as .json.
const (
	FeaturesDir = "features"
	DataDir     = "data"

	settingsBase = "settings"
	folderBase   = "folder"

	// intermediate-tree file names
	SettingsFile = settingsBase + ".json"
	FolderFile   = folderBase + ".json"
)

// Record kinds as authored in the optional `kind` field of a source file.
const (
	KindSettings   = "settings"
	KindFolder     = "folder"
	KindRoute      = "route"
	KindDatabucket = "databucket"
)

var sourceExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

func IsSourceFile(name string) bool {
	return sourceExts[strings.ToLower(filepath.Ext(name))]
}

func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
