// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ozgen/mockenv-builder/internal/environment"
	"github.com/ozgen/mockenv-builder/utils"
)

// Compiler transcodes an authored YAML/JSON source tree into an
// intermediate tree of plain JSON records under a fresh temp directory.
// Unlike the loading stages it does not fail fast: it collects every
// diagnostic and reports them in one CompilationFailed error, the way a
// compiler would.
type Compiler struct {
	log *logrus.Logger
}

func NewCompiler(log *logrus.Logger) ICompiler {
	return &Compiler{log: log}
}

func (c *Compiler) Compile(srcDir string) (string, error) {
	outDir, err := os.MkdirTemp("", "mockenv-build-*")
	if err != nil {
		return "", fmt.Errorf("create intermediate dir: %w", err)
	}

	var diags []string

	compileOne := func(relDir, name, expectedKind string) {
		src := filepath.Join(srcDir, relDir, name)
		dst := filepath.Join(outDir, relDir, baseName(name)+".json")
		if err := c.compileFile(src, dst, expectedKind); err != nil {
			diags = append(diags, err.Error())
		}
	}

	// root-level settings file
	for _, name := range []string{"settings.yaml", "settings.yml", "settings.json"} {
		if utils.FileExists(filepath.Join(srcDir, name)) {
			compileOne("", name, KindSettings)
			break
		}
	}

	// features/<folder>/<record>...
	featuresDir := filepath.Join(srcDir, FeaturesDir)
	if utils.DirExists(featuresDir) {
		folders, err := utils.ListDirSorted(featuresDir)
		if err != nil {
			return outDir, fmt.Errorf("list %s: %w", featuresDir, err)
		}
		for _, folder := range folders {
			if !folder.IsDir() {
				continue
			}
			relDir := filepath.Join(FeaturesDir, folder.Name())
			files, err := utils.ListDirSorted(filepath.Join(srcDir, relDir))
			if err != nil {
				return outDir, fmt.Errorf("list %s: %w", relDir, err)
			}
			for _, f := range files {
				if f.IsDir() {
					// one folder level only, a deliberate design constraint
					diags = append(diags, fmt.Sprintf(
						"%s: nested feature directories are not supported",
						filepath.Join(relDir, f.Name())))
					continue
				}
				if !IsSourceFile(f.Name()) {
					continue
				}
				kind := KindRoute
				if baseName(f.Name()) == folderBase {
					kind = KindFolder
				}
				compileOne(relDir, f.Name(), kind)
			}
		}
	}

	// data/<bucket>...
	dataDir := filepath.Join(srcDir, DataDir)
	if utils.DirExists(dataDir) {
		files, err := utils.ListDirSorted(dataDir)
		if err != nil {
			return outDir, fmt.Errorf("list %s: %w", dataDir, err)
		}
		for _, f := range files {
			if f.IsDir() || !IsSourceFile(f.Name()) {
				continue
			}
			compileOne(DataDir, f.Name(), KindDatabucket)
		}
	}

	if len(diags) > 0 {
		c.log.WithField("count", len(diags)).Error("source compilation failed")
		return outDir, fmt.Errorf("%w:\n%s",
			environment.ErrCompilationFailed, strings.Join(diags, "\n"))
	}

	return outDir, nil
}

// compileFile parses one source record, checks its optional `kind` tag
// against the location-derived expectation, strips the tag and writes the
// record as JSON.
func (c *Compiler) compileFile(src, dst, expectedKind string) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %v", src, err)
	}

	record := map[string]any{}
	if strings.EqualFold(filepath.Ext(src), ".json") {
		if err := json.Unmarshal(b, &record); err != nil {
			return fmt.Errorf("parse %s: %v", src, err)
		}
	} else {
		if err := yaml.Unmarshal(b, &record); err != nil {
			return fmt.Errorf("parse %s: %v", src, err)
		}
	}

	if kind, ok := record["kind"]; ok {
		if ks, _ := kind.(string); ks != expectedKind {
			return fmt.Errorf("%s: kind %q, expected %q for this location",
				src, kind, expectedKind)
		}
		delete(record, "kind")
	}

	if err := utils.EnsureDir(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("mkdir for %s: %v", dst, err)
	}
	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %v", src, err)
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %v", dst, err)
	}

	c.log.WithFields(logrus.Fields{"src": src, "dst": dst}).Debug("compiled record")
	return nil
}
