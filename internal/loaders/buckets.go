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

type DataBucketLoader struct {
	loader source.IRecordLoader
	log    *logrus.Logger
}

func NewDataBucketLoader(loader source.IRecordLoader, log *logrus.Logger) IDataBucketLoader {
	return &DataBucketLoader{loader: loader, log: log}
}

// Load reads every bucket record in the data directory of the intermediate
// tree, in lexicographic order. An absent data directory is a valid empty
// state.
func (l *DataBucketLoader) Load(root string) ([]environment.DataBucket, error) {
	buckets := []environment.DataBucket{}

	dir := filepath.Join(root, source.DataDir)
	if !utils.DirExists(dir) {
		l.log.Debug("no data directory, skipping")
		return buckets, nil
	}

	files, err := utils.ListDirSorted(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		var b environment.DataBucket
		if err := l.loader.Load(filepath.Join(dir, f.Name()), &b); err != nil {
			return nil, err
		}
		if strings.TrimSpace(b.UUID) == "" {
			return nil, fmt.Errorf("data bucket %s: %w", f.Name(), environment.ErrMissingIdentifier)
		}
		buckets = append(buckets, b)
	}

	l.log.WithField("buckets", len(buckets)).Debug("data buckets loaded")
	return buckets, nil
}
