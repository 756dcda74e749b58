// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package loaders

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/ozgen/mockenv-builder/internal/environment"
	"github.com/ozgen/mockenv-builder/internal/source"
	"github.com/ozgen/mockenv-builder/utils"
)

// FeatureResult carries the outcome of one features-directory walk.
type FeatureResult struct {
	Folders []environment.Folder
	Routes  []environment.Route
}

type FeatureLoader struct {
	loader source.IRecordLoader
	log    *logrus.Logger
}

func NewFeatureLoader(loader source.IRecordLoader, log *logrus.Logger) IFeatureLoader {
	return &FeatureLoader{loader: loader, log: log}
}

// Load walks the features directory of the intermediate tree. Each
// immediate subdirectory becomes one Folder; each record inside (except the
// folder record itself) becomes one Route. An absent features directory is
// a valid empty state, not an error. Entries are processed in lexicographic
// order so the output is deterministic.
func (l *FeatureLoader) Load(root string) (*FeatureResult, error) {
	res := &FeatureResult{
		Folders: []environment.Folder{},
		Routes:  []environment.Route{},
	}

	dir := filepath.Join(root, source.FeaturesDir)
	if !utils.DirExists(dir) {
		l.log.Debug("no features directory, skipping")
		return res, nil
	}

	entries, err := utils.ListDirSorted(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folder, err := l.loadFolder(filepath.Join(dir, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}

		routes, err := l.loadRoutes(filepath.Join(dir, entry.Name()), entry.Name(), folder)
		if err != nil {
			return nil, err
		}

		res.Routes = append(res.Routes, routes...)
		res.Folders = append(res.Folders, *folder)
	}

	l.log.WithFields(logrus.Fields{
		"folders": len(res.Folders),
		"routes":  len(res.Routes),
	}).Debug("feature tree loaded")
	return res, nil
}

// loadFolder returns the folder record authored in dirName, or a
// synthesized one when no folder file exists. Children always start empty;
// any children authored on disk are discarded.
func (l *FeatureLoader) loadFolder(dir, dirName string) (*environment.Folder, error) {
	folder := environment.Folder{}

	p := filepath.Join(dir, source.FolderFile)
	if utils.FileExists(p) {
		if err := l.loader.Load(p, &folder); err != nil {
			return nil, err
		}
		if strings.TrimSpace(folder.UUID) == "" {
			return nil, fmt.Errorf("folder %s: %w", dirName, environment.ErrMissingIdentifier)
		}
	} else {
		folder.UUID = environment.NewIdentifier()
		folder.Name = titleFromDirName(dirName)
	}

	folder.Children = []environment.ChildRef{}
	return &folder, nil
}

func (l *FeatureLoader) loadRoutes(dir, dirName string, folder *environment.Folder) ([]environment.Route, error) {
	files, err := utils.ListDirSorted(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var routes []environment.Route
	for _, f := range files {
		if f.IsDir() || f.Name() == source.FolderFile ||
			!strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		var rt environment.Route
		if err := l.loader.Load(filepath.Join(dir, f.Name()), &rt); err != nil {
			return nil, err
		}
		if strings.TrimSpace(rt.UUID) == "" {
			return nil, fmt.Errorf("route %s/%s: %w",
				dirName, f.Name(), environment.ErrMissingIdentifier)
		}
		for i := range rt.Responses {
			if strings.TrimSpace(rt.Responses[i].UUID) == "" {
				return nil, fmt.Errorf("route %s/%s response %d: %w",
					dirName, f.Name(), i, environment.ErrMissingIdentifier)
			}
		}

		folder.Children = append(folder.Children, environment.ChildRef{
			Type: environment.ChildRoute,
			UUID: rt.UUID,
		})
		routes = append(routes, rt)
	}

	return routes, nil
}

// titleFromDirName turns a kebab-case directory name into a display name,
// e.g. "user-profile-settings" -> "User Profile Settings".
func titleFromDirName(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
