// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/ozgen/mockenv-builder/utils"
)

const (
	DefaultBaseDir    = "./mockenv"
	DefaultSourceName = "src"
	DefaultOutputName = "environment.json"
)

type Config struct {
	BaseDir    string
	SourceDir  string
	OutputPath string
	LogLevel   string

	// KeepIntermediate leaves the compiled tree on disk for inspection.
	KeepIntermediate bool
}

var Envs = initConfig()

func initConfig() Config {
	_ = godotenv.Load()

	base := utils.GetEnv("BASE_DIR", DefaultBaseDir)

	return Config{
		BaseDir:          base,
		SourceDir:        utils.GetEnv("SOURCE_DIR", filepath.Join(base, DefaultSourceName)),
		OutputPath:       utils.GetEnv("OUTPUT_FILE", filepath.Join(base, DefaultOutputName)),
		LogLevel:         utils.GetEnv("LOG_LEVEL", "info"),
		KeepIntermediate: utils.GetEnvAsBool("KEEP_INTERMEDIATE", false),
	}
}
