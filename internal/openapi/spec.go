// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

type versionProbe struct {
	Swagger string `json:"swagger"`
	OpenAPI string `json:"openapi"`
}

// loadSpec reads a JSON OpenAPI 3.x or Swagger 2.0 document and returns it
// as OAS3, converting and resolving refs as needed. Spec-level validation
// problems are logged, not fatal; we only need paths and responses.
func loadSpec(path string, log *logrus.Logger) (*openapi3.T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}

	var probe versionProbe
	_ = json.Unmarshal(b, &probe)

	abs, _ := filepath.Abs(path)
	loc := &url.URL{Scheme: "file", Path: abs}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	// Swagger 2.0
	if probe.Swagger == "2.0" {
		var doc2 openapi2.T
		if err := json.Unmarshal(b, &doc2); err != nil {
			return nil, fmt.Errorf("parse swagger2 json: %w", err)
		}

		doc3, err := openapi2conv.ToV3WithLoader(&doc2, loader, loc)
		if err != nil {
			log.WithError(err).Warn("failed to convert swagger to v3")
			return nil, fmt.Errorf("convert swagger2 -> oas3: %w", err)
		}

		if err := loader.ResolveRefsIn(doc3, loc); err != nil {
			log.WithError(err).Warn("failed to resolve spec refs")
			return nil, fmt.Errorf("resolve refs: %w", err)
		}

		if err := doc3.Validate(context.Background()); err != nil {
			log.WithError(err).Warn("openapi spec validation failed")
		}
		return doc3, nil
	}

	// OpenAPI 3.x
	var doc3 openapi3.T
	if err := json.Unmarshal(b, &doc3); err != nil {
		return nil, fmt.Errorf("parse openapi3 json: %w", err)
	}
	if err := loader.ResolveRefsIn(&doc3, loc); err != nil {
		log.WithError(err).Warn("failed to resolve spec refs")
		return nil, fmt.Errorf("resolve refs: %w", err)
	}
	if err := doc3.Validate(context.Background()); err != nil {
		log.WithError(err).Warn("openapi spec validation failed")
	}

	return &doc3, nil
}
