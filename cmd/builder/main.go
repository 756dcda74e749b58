// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ozgen/mockenv-builder/config"
	"github.com/ozgen/mockenv-builder/internal/openapi"
	"github.com/ozgen/mockenv-builder/internal/pipeline"
	"github.com/ozgen/mockenv-builder/logger"
)

var version = "0.1.0"

var (
	flagBaseDir string
	flagSource  string
	flagOutput  string
	flagKeep    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mockenv-builder",
	Short: "Build a mock-server environment file from modular sources",
	Long: `mockenv-builder aggregates a directory tree of YAML/JSON definition
files (settings, folders, routes, data buckets) into a single environment
JSON document for a mock-server runtime.

When the source directory does not exist, a minimal example tree is written
there first, so a bare run always produces a working environment.

Examples:
  mockenv-builder                          # build ./mockenv/src -> ./mockenv/environment.json
  mockenv-builder build --base-dir ./api   # build ./api/src -> ./api/environment.json
  mockenv-builder build -s ./defs -o env.json
  mockenv-builder import swagger.json      # convert a spec into source files`,
	Version:       version,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile, validate and aggregate the source tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

var importCmd = &cobra.Command{
	Use:   "import <spec.json>",
	Short: "Convert an OpenAPI/Swagger spec into a source tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.GetLogger()
		sourceDir, _ := resolvePaths()
		return openapi.NewImporter(log).ImportToSource(args[0], sourceDir)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBaseDir, "base-dir", "b", "",
		"base directory holding src/ and the output file (default ./mockenv, env BASE_DIR)")
	rootCmd.PersistentFlags().StringVarP(&flagSource, "source", "s", "",
		"source tree directory (default <base>/src, env SOURCE_DIR)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "",
		"output environment file (default <base>/environment.json, env OUTPUT_FILE)")
	rootCmd.PersistentFlags().BoolVar(&flagKeep, "keep-intermediate", false,
		"keep the compiled intermediate tree for inspection")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(importCmd)
}

// resolvePaths applies flag overrides on top of the env-derived defaults.
// A bare --base-dir moves both derived paths with it.
func resolvePaths() (sourceDir, outputPath string) {
	cfg := config.Envs

	sourceDir = cfg.SourceDir
	outputPath = cfg.OutputPath

	if flagBaseDir != "" {
		sourceDir = filepath.Join(flagBaseDir, config.DefaultSourceName)
		outputPath = filepath.Join(flagBaseDir, config.DefaultOutputName)
	}
	if flagSource != "" {
		sourceDir = flagSource
	}
	if flagOutput != "" {
		outputPath = flagOutput
	}
	return sourceDir, outputPath
}

func runBuild() error {
	log := logger.GetLogger()
	sourceDir, outputPath := resolvePaths()

	err := pipeline.New(log).Run(pipeline.Options{
		SourceDir:        sourceDir,
		OutputPath:       outputPath,
		KeepIntermediate: flagKeep || config.Envs.KeepIntermediate,
	})
	if err != nil {
		log.WithError(err).Error("build failed")
		return err
	}
	return nil
}
