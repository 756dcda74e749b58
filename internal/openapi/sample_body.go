// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package openapi

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

// bestResponse picks the response an imported route should serve: 200-class
// first, then default, then anything.
func bestResponse(resps *openapi3.Responses) (int, *openapi3.ResponseRef) {
	if resps == nil {
		return 200, nil
	}

	// Prefer 200/201/202/204 if present
	for _, code := range []int{200, 201, 202, 204} {
		if r := resps.Value(strconv.Itoa(code)); r != nil {
			return code, r
		}
	}

	// Then any 2xx (lowest first)
	var twos []int
	for k := range resps.Map() {
		if n, err := strconv.Atoi(k); err == nil && n >= 200 && n < 300 {
			twos = append(twos, n)
		}
	}
	sort.Ints(twos)
	for _, n := range twos {
		if r := resps.Value(strconv.Itoa(n)); r != nil {
			return n, r
		}
	}

	// Then default
	if r := resps.Value("default"); r != nil {
		return 200, r
	}

	// Otherwise: return any, deterministically
	var codes []string
	for k := range resps.Map() {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	for _, k := range codes {
		if r := resps.Value(k); r != nil {
			n, err := strconv.Atoi(k)
			if err != nil {
				n = 200
			}
			return n, r
		}
	}
	return 200, nil
}

// sampleBody produces a JSON body for a response: a declared example if one
// exists, a value generated from the response schema otherwise.
func sampleBody(resp *openapi3.Response) []byte {
	if b, ok := extractExample(resp); ok {
		return b
	}
	if b, ok := generateFromSchema(resp); ok {
		return b
	}
	b, _ := json.Marshal(map[string]any{"ok": true})
	return b
}

func extractExample(resp *openapi3.Response) ([]byte, bool) {
	if resp == nil || resp.Content == nil {
		return nil, false
	}

	// Try common JSON-like content types
	for _, ct := range []string{"application/json", "application/problem+json", "*/*"} {
		mt := resp.Content.Get(ct)
		if mt == nil {
			continue
		}

		// MediaType.Example
		if mt.Example != nil {
			if b, err := json.Marshal(mt.Example); err == nil {
				return b, true
			}
		}

		if len(mt.Examples) > 0 {
			for _, exRef := range mt.Examples {
				if exRef == nil || exRef.Value == nil {
					continue
				}
				if exRef.Value.Value != nil {
					if b, err := json.Marshal(exRef.Value.Value); err == nil {
						return b, true
					}
				}
			}
		}
	}

	return nil, false
}

func generateFromSchema(resp *openapi3.Response) ([]byte, bool) {
	if resp == nil || resp.Content == nil {
		return nil, false
	}

	for _, ct := range []string{"application/json", "application/problem+json", "*/*"} {
		mt := resp.Content.Get(ct)
		if mt == nil || mt.Schema == nil {
			continue
		}

		val := genFromSchemaRef(mt.Schema, 0)
		b, err := json.Marshal(val)
		return b, err == nil
	}

	return nil, false
}

func genFromSchemaRef(ref *openapi3.SchemaRef, depth int) any {
	if depth > 6 || ref == nil || ref.Value == nil {
		return map[string]any{}
	}

	s := ref.Value

	// enum wins
	if len(s.Enum) > 0 {
		return s.Enum[0]
	}

	// ARRAY
	if s.Type != nil && s.Type.Is("array") {
		if s.Items == nil {
			return []any{}
		}
		return []any{genFromSchemaRef(s.Items, depth+1)}
	}

	// OBJECT
	if (s.Type != nil && s.Type.Is("object")) || len(s.Properties) > 0 || s.AdditionalProperties.Schema != nil {
		return genObject(s, depth)
	}

	// PRIMITIVES
	if s.Type != nil && s.Type.Is("string") {
		if s.Format == "date-time" {
			return "2026-01-28T00:00:00Z"
		}
		return "string"
	}
	if s.Type != nil && s.Type.Is("integer") {
		return 0
	}
	if s.Type != nil && s.Type.Is("number") {
		return 0.0
	}
	if s.Type != nil && s.Type.Is("boolean") {
		return true
	}

	// fallback
	return map[string]any{"ok": true}
}

func genObject(s *openapi3.Schema, depth int) any {
	out := map[string]any{}

	// additionalProperties: schema form
	if s.AdditionalProperties.Schema != nil {
		out["key"] = genFromSchemaRef(s.AdditionalProperties.Schema, depth+1)
		return out
	}

	if s.AdditionalProperties.Has != nil && *s.AdditionalProperties.Has {
		out["key"] = "value"
	}

	// properties
	for name, prop := range s.Properties {
		out[name] = genFromSchemaRef(prop, depth+1)
	}

	return out
}
