// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ozgen/mockenv-builder/internal/environment"
	"github.com/ozgen/mockenv-builder/internal/source"
	"github.com/ozgen/mockenv-builder/utils"
)

const exampleSettings = `kind: settings
uuid: %s
name: Demo API
port: 3000
latency: 0
cors: true
headers:
  - key: Content-Type
    value: application/json
tlsOptions:
  enabled: false
`

const exampleFolder = `kind: folder
uuid: %s
name: Demo Users
`

const exampleGetRoute = `kind: route
uuid: %s
type: http
documentation: List users
method: get
endpoint: users
responses:
  - uuid: %s
    statusCode: 200
    label: Success
    rulesOperator: OR
    bodyType: DATABUCKET
    databucketID: usrs
    default: true
    headers:
      - key: Content-Type
        value: application/json
`

const examplePostRoute = `kind: route
uuid: %s
type: http
documentation: Create a user
method: post
endpoint: users
responses:
  - uuid: %s
    statusCode: 201
    label: Created
    rulesOperator: OR
    bodyType: INLINE
    body: '{"id": "{{faker ''string.uuid''}}", "name": "{{body ''name''}}"}'
    default: true
    headers:
      - key: Content-Type
        value: application/json
`

const exampleBucket = `kind: databucket
uuid: %s
id: usrs
name: Users
documentation: Seed users returned by GET /users
value: '[{"id": 1, "name": "Ada"}, {"id": 2, "name": "Linus"}]'
`

// WriteExampleTree seeds dir with a minimal working source tree: one
// settings file, one folder holding a GET and a POST route, one data
// bucket. A build against a missing source directory never fails for lack
// of input; it builds this instead.
func WriteExampleTree(dir string) error {
	featureDir := filepath.Join(dir, source.FeaturesDir, "demo-users")
	dataDir := filepath.Join(dir, source.DataDir)

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, "settings.yaml"),
			fmt.Sprintf(exampleSettings, environment.NewIdentifier())},
		{filepath.Join(featureDir, "folder.yaml"),
			fmt.Sprintf(exampleFolder, environment.NewIdentifier())},
		{filepath.Join(featureDir, "get-users.yaml"),
			fmt.Sprintf(exampleGetRoute, environment.NewIdentifier(), environment.NewIdentifier())},
		{filepath.Join(featureDir, "create-user.yaml"),
			fmt.Sprintf(examplePostRoute, environment.NewIdentifier(), environment.NewIdentifier())},
		{filepath.Join(dataDir, "users.yaml"),
			fmt.Sprintf(exampleBucket, environment.NewIdentifier())},
	}

	for _, f := range files {
		if err := utils.EnsureDir(filepath.Dir(f.path)); err != nil {
			return fmt.Errorf("mkdir for %s: %w", f.path, err)
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.path, err)
		}
	}
	return nil
}
