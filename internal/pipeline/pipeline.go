// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ozgen/mockenv-builder/internal/assembler"
	"github.com/ozgen/mockenv-builder/internal/environment"
	"github.com/ozgen/mockenv-builder/internal/loaders"
	"github.com/ozgen/mockenv-builder/internal/source"
	"github.com/ozgen/mockenv-builder/utils"
)

type Options struct {
	SourceDir  string
	OutputPath string

	// KeepIntermediate leaves the compiled tree on disk for inspection.
	KeepIntermediate bool
}

// Pipeline runs one build: compile the source tree, load settings,
// features and data buckets, validate, assemble and write the document.
// Everything is sequential; a run either completes or fails at the first
// violation.
type Pipeline struct {
	compiler source.ICompiler
	log      *logrus.Logger
}

func New(log *logrus.Logger) *Pipeline {
	return &Pipeline{
		compiler: source.NewCompiler(log),
		log:      log,
	}
}

func (p *Pipeline) Run(opts Options) error {
	if !utils.DirExists(opts.SourceDir) {
		p.log.WithField("dir", opts.SourceDir).
			Warn("source tree not found, writing example sources")
		if err := WriteExampleTree(opts.SourceDir); err != nil {
			return fmt.Errorf("write example tree: %w", err)
		}
	}

	intermediate, err := p.compiler.Compile(opts.SourceDir)
	if intermediate != "" {
		defer p.cleanup(intermediate, opts.KeepIntermediate)
	}
	if err != nil {
		return err
	}

	// the record cache is scoped to this run
	loader := source.NewRecordLoader(p.log)

	settings, err := loaders.NewSettingsLoader(loader, p.log).Load(intermediate)
	if err != nil {
		return err
	}
	feats, err := loaders.NewFeatureLoader(loader, p.log).Load(intermediate)
	if err != nil {
		return err
	}
	buckets, err := loaders.NewDataBucketLoader(loader, p.log).Load(intermediate)
	if err != nil {
		return err
	}

	if err := environment.Validate(settings, "settings"); err != nil {
		return err
	}
	if err := environment.Validate(feats.Folders, "folders"); err != nil {
		return err
	}
	if err := environment.Validate(feats.Routes, "routes"); err != nil {
		return err
	}
	if err := environment.Validate(buckets, "data"); err != nil {
		return err
	}

	doc := assembler.New(p.log).Assemble(settings, feats.Folders, feats.Routes, buckets)

	if err := environment.ValidateUnique(doc); err != nil {
		return err
	}

	if err := p.writeDocument(doc, opts.OutputPath); err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"output":  opts.OutputPath,
		"folders": len(doc.Folders),
		"routes":  len(doc.Routes),
		"data":    len(doc.Data),
	}).Info("environment built")
	return nil
}

func (p *Pipeline) writeDocument(doc *environment.Document, path string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	b = append(b, '\n')

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// cleanup removes the per-run intermediate tree. A cleanup failure after a
// successful write leaves a complete output behind, so it only warns.
func (p *Pipeline) cleanup(dir string, keep bool) {
	if keep {
		p.log.WithField("dir", dir).Info("keeping intermediate tree")
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		p.log.WithError(err).WithField("dir", dir).
			Warn("failed to remove intermediate tree")
	}
}
