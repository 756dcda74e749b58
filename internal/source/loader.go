// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ozgen/mockenv-builder/internal/environment"
)

// RecordLoader decodes intermediate JSON records into typed entities.
// Raw bytes are cached per path so loading the same file twice yields the
// same record without a second read. The cache lives for one pipeline run;
// a new run gets a new loader.
type RecordLoader struct {
	cache map[string][]byte
	log   *logrus.Logger
}

func NewRecordLoader(log *logrus.Logger) IRecordLoader {
	return &RecordLoader{cache: map[string][]byte{}, log: log}
}

func (l *RecordLoader) Load(path string, out any) error {
	b, ok := l.cache[path]
	if !ok {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read record %s: %w", path, err)
		}
		l.cache[path] = b
	}

	if err := json.Unmarshal(b, out); err != nil {
		l.log.WithError(err).WithField("path", path).Error("record decode failed")
		return fmt.Errorf("decode %s: %v: %w", path, err, environment.ErrLoaderFailure)
	}
	return nil
}
