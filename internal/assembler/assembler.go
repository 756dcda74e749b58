// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package assembler

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/ozgen/mockenv-builder/internal/environment"
)

// Assembler merges the loaded pieces into the final document. Inputs are
// assumed validated; assembly has no failure path. Route records are
// copied, not mutated; settings, folders and buckets are reused as given.
type Assembler struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Assembler {
	return &Assembler{log: log}
}

func (a *Assembler) Assemble(
	settings *environment.Settings,
	folders []environment.Folder,
	routes []environment.Route,
	data []environment.DataBucket,
) *environment.Document {
	doc := &environment.Document{
		Settings:     *settings,
		Folders:      folders,
		Routes:       make([]environment.Route, 0, len(routes)),
		Data:         data,
		RootChildren: make([]environment.ChildRef, 0, len(folders)),
	}
	if doc.Folders == nil {
		doc.Folders = []environment.Folder{}
	}
	if doc.Data == nil {
		doc.Data = []environment.DataBucket{}
	}

	// one root reference per folder, discovery order preserved
	for i := range folders {
		doc.RootChildren = append(doc.RootChildren, environment.ChildRef{
			Type: environment.ChildFolder,
			UUID: folders[i].UUID,
		})
	}

	for _, rt := range routes {
		rt.Responses = normalizeResponses(rt.Responses)
		doc.Routes = append(doc.Routes, rt)
	}

	a.log.WithFields(logrus.Fields{
		"folders": len(doc.Folders),
		"routes":  len(doc.Routes),
		"data":    len(doc.Data),
	}).Debug("document assembled")
	return doc
}

// normalizeResponses flattens structured inline bodies to compact JSON
// text. Text bodies pass through untouched, so the normalization is
// idempotent.
func normalizeResponses(in []environment.ResponseSpec) []environment.ResponseSpec {
	out := make([]environment.ResponseSpec, len(in))
	copy(out, in)

	for i := range out {
		if out[i].BodyType != environment.BodyInline {
			continue
		}
		switch out[i].Body.(type) {
		case nil, string:
			// already text (or absent), leave as is
		default:
			if b, err := json.Marshal(out[i].Body); err == nil {
				out[i].Body = string(b)
			}
		}
	}
	return out
}
