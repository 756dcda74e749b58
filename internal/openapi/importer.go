// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package openapi

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ozgen/mockenv-builder/internal/environment"
	"github.com/ozgen/mockenv-builder/internal/source"
	"github.com/ozgen/mockenv-builder/utils"
)

// Authored-record shapes written by the importer. These mirror the source
// file convention, not the final document; the builder compiles them like
// any hand-written source.
type headerDoc struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type tlsDoc struct {
	Enabled bool `yaml:"enabled"`
}

type settingsDoc struct {
	Kind    string      `yaml:"kind"`
	UUID    string      `yaml:"uuid"`
	Name    string      `yaml:"name"`
	Port    int         `yaml:"port"`
	Latency int         `yaml:"latency"`
	Cors    bool        `yaml:"cors"`
	Headers []headerDoc `yaml:"headers"`
	TLS     tlsDoc      `yaml:"tlsOptions"`
}

type folderDoc struct {
	Kind string `yaml:"kind"`
	UUID string `yaml:"uuid"`
	Name string `yaml:"name"`
}

type responseDoc struct {
	UUID          string      `yaml:"uuid"`
	StatusCode    int         `yaml:"statusCode"`
	Label         string      `yaml:"label,omitempty"`
	RulesOperator string      `yaml:"rulesOperator"`
	BodyType      string      `yaml:"bodyType"`
	Body          string      `yaml:"body"`
	Default       bool        `yaml:"default"`
	Headers       []headerDoc `yaml:"headers"`
}

type routeDoc struct {
	Kind          string        `yaml:"kind"`
	UUID          string        `yaml:"uuid"`
	Type          string        `yaml:"type"`
	Documentation string        `yaml:"documentation,omitempty"`
	Method        string        `yaml:"method"`
	Endpoint      string        `yaml:"endpoint"`
	Responses     []responseDoc `yaml:"responses"`
}

// Importer converts an OpenAPI 3.x or Swagger 2.0 spec into an authored
// source tree: one folder per tag (first path segment when untagged), one
// route file per operation, response bodies taken from the spec's examples
// or generated from the response schema.
type Importer struct {
	log *logrus.Logger
}

func NewImporter(log *logrus.Logger) *Importer {
	return &Importer{log: log}
}

func (im *Importer) ImportToSource(specPath, destDir string) error {
	doc, err := loadSpec(specPath, im.log)
	if err != nil {
		return err
	}

	if err := im.writeSettings(doc, destDir); err != nil {
		return err
	}

	if doc.Paths == nil {
		im.log.Warn("spec has no paths, nothing to import")
		return nil
	}

	pathMap := doc.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	seenFolders := map[string]bool{}
	seenFiles := map[string]bool{}
	routeCount := 0

	for _, apiPath := range paths {
		item := pathMap[apiPath]
		if item == nil {
			continue
		}

		ops := item.Operations()
		methods := make([]string, 0, len(ops))
		for m := range ops {
			methods = append(methods, m)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op := ops[method]
			folderName := folderFor(op, apiPath)
			folderDir := filepath.Join(destDir, source.FeaturesDir, slug(folderName))

			if !seenFolders[folderDir] {
				if err := im.writeFolder(folderDir, folderName); err != nil {
					return err
				}
				seenFolders[folderDir] = true
			}

			if err := im.writeRoute(folderDir, method, apiPath, op, seenFiles); err != nil {
				return err
			}
			routeCount++
		}
	}

	im.log.WithFields(logrus.Fields{
		"folders": len(seenFolders),
		"routes":  routeCount,
		"dest":    destDir,
	}).Info("spec imported")
	return nil
}

// writeSettings seeds a settings file from the spec title. An existing
// settings file is kept; importing into a tree must not clobber it.
func (im *Importer) writeSettings(doc *openapi3.T, destDir string) error {
	for _, name := range []string{"settings.yaml", "settings.yml", "settings.json"} {
		if utils.FileExists(filepath.Join(destDir, name)) {
			im.log.Debug("settings file present, keeping it")
			return nil
		}
	}

	name := "Imported API"
	if doc.Info != nil && strings.TrimSpace(doc.Info.Title) != "" {
		name = doc.Info.Title
	}

	s := settingsDoc{
		Kind:    source.KindSettings,
		UUID:    environment.NewIdentifier(),
		Name:    name,
		Port:    3000,
		Cors:    true,
		Headers: []headerDoc{{Key: "Content-Type", Value: "application/json"}},
	}
	return im.writeYAML(filepath.Join(destDir, "settings.yaml"), s)
}

func (im *Importer) writeFolder(folderDir, displayName string) error {
	p := filepath.Join(folderDir, "folder.yaml")
	if utils.FileExists(p) {
		return nil
	}
	f := folderDoc{
		Kind: source.KindFolder,
		UUID: environment.NewIdentifier(),
		Name: displayName,
	}
	return im.writeYAML(p, f)
}

func (im *Importer) writeRoute(
	folderDir, method, apiPath string,
	op *openapi3.Operation,
	seenFiles map[string]bool,
) error {
	code, respRef := bestResponse(op.Responses)

	var resp *openapi3.Response
	label := "Success"
	if respRef != nil && respRef.Value != nil {
		resp = respRef.Value
		if resp.Description != nil && strings.TrimSpace(*resp.Description) != "" {
			label = *resp.Description
		}
	}

	rt := routeDoc{
		Kind:          source.KindRoute,
		UUID:          environment.NewIdentifier(),
		Type:          string(environment.RouteHTTP),
		Documentation: op.Summary,
		Method:        strings.ToLower(method),
		Endpoint:      toEndpoint(apiPath),
		Responses: []responseDoc{{
			UUID:          environment.NewIdentifier(),
			StatusCode:    code,
			Label:         label,
			RulesOperator: string(environment.OperatorOr),
			BodyType:      string(environment.BodyInline),
			Body:          string(sampleBody(resp)),
			Default:       true,
			Headers:       []headerDoc{{Key: "Content-Type", Value: "application/json"}},
		}},
	}

	name := fmt.Sprintf("%s-%s", strings.ToLower(method), slug(apiPath))
	p := filepath.Join(folderDir, name+".yaml")
	for n := 2; seenFiles[p]; n++ {
		p = filepath.Join(folderDir, fmt.Sprintf("%s-%d.yaml", name, n))
	}
	seenFiles[p] = true

	return im.writeYAML(p, rt)
}

func (im *Importer) writeYAML(path string, v any) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	im.log.WithField("path", path).Debug("wrote source record")
	return nil
}

// folderFor groups an operation under its first tag, falling back to the
// first concrete path segment.
func folderFor(op *openapi3.Operation, apiPath string) string {
	if op != nil && len(op.Tags) > 0 && strings.TrimSpace(op.Tags[0]) != "" {
		return op.Tags[0]
	}
	for _, seg := range strings.Split(strings.Trim(apiPath, "/"), "/") {
		if seg != "" && !strings.HasPrefix(seg, "{") {
			return seg
		}
	}
	return "general"
}

// toEndpoint rewrites an OpenAPI path template to the runtime's route
// syntax: no leading slash, {param} -> :param.
func toEndpoint(apiPath string) string {
	parts := strings.Split(strings.TrimPrefix(apiPath, "/"), "/")
	for i, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			parts[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(p, "{"), "}")
		}
	}
	return strings.Join(parts, "/")
}

var slugClean = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	s = slugClean.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}
