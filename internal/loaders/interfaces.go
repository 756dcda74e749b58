// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package loaders

import "github.com/ozgen/mockenv-builder/internal/environment"

type ISettingsLoader interface {
	Load(root string) (*environment.Settings, error)
}

type IFeatureLoader interface {
	Load(root string) (*FeatureResult, error)
}

type IDataBucketLoader interface {
	Load(root string) ([]environment.DataBucket, error)
}
