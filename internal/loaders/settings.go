// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ozgen/mockenv-builder/internal/environment"
	"github.com/ozgen/mockenv-builder/internal/source"
	"github.com/ozgen/mockenv-builder/utils"
)

type SettingsLoader struct {
	loader source.IRecordLoader
	log    *logrus.Logger
}

func NewSettingsLoader(loader source.IRecordLoader, log *logrus.Logger) ISettingsLoader {
	return &SettingsLoader{loader: loader, log: log}
}

// Load reads the single settings record from the intermediate tree root.
// The record is returned as authored; optional fields are not defaulted.
func (l *SettingsLoader) Load(root string) (*environment.Settings, error) {
	p := filepath.Join(root, source.SettingsFile)
	if !utils.FileExists(p) {
		return nil, fmt.Errorf("%s: %w", p, environment.ErrMissingRequiredFile)
	}

	var s environment.Settings
	if err := l.loader.Load(p, &s); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.UUID) == "" {
		return nil, fmt.Errorf("settings: %w", environment.ErrMissingIdentifier)
	}

	l.log.WithField("name", s.Name).Debug("settings loaded")
	return &s, nil
}
