// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package environment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Canonical identifier shape: 8-4-4-4-12 lowercase hex groups. Mixed case
// is accepted on input, generated values are always lowercase.
var identifierPattern = regexp.MustCompile(
	`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
)

func NewIdentifier() string {
	return uuid.NewString()
}

func ValidIdentifier(v string) bool {
	return identifierPattern.MatchString(v)
}

func checkIdentifier(id, path string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", path, ErrMissingIdentifier)
	}
	if !identifierPattern.MatchString(id) {
		return fmt.Errorf("%s: %q: %w", path, id, ErrInvalidIdentifierFormat)
	}
	return nil
}

// Validate walks a loaded entity (or list of entities) and checks every
// identifier it must carry. The walk descends only the known containment
// fields (responses, children, callbacks), never arbitrary graphs, so
// recursion is bounded by the schema shape. path labels the entity in error
// messages. Success is a nil error.
func Validate(v any, path string) error {
	switch t := v.(type) {
	case *Settings:
		if err := checkIdentifier(t.UUID, path); err != nil {
			return err
		}
		for i := range t.Callbacks {
			p := fmt.Sprintf("%s.callbacks[%d]", path, i)
			if err := checkIdentifier(t.Callbacks[i].UUID, p); err != nil {
				return err
			}
		}
		return nil

	case []Folder:
		for i := range t {
			if err := Validate(&t[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil

	case *Folder:
		if err := checkIdentifier(t.UUID, path); err != nil {
			return err
		}
		for i := range t.Children {
			p := fmt.Sprintf("%s.children[%d]", path, i)
			if err := checkIdentifier(t.Children[i].UUID, p); err != nil {
				return err
			}
		}
		return nil

	case []Route:
		for i := range t {
			if err := Validate(&t[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil

	case *Route:
		if err := checkIdentifier(t.UUID, path); err != nil {
			return err
		}
		for i := range t.Responses {
			p := fmt.Sprintf("%s.responses[%d]", path, i)
			if err := checkIdentifier(t.Responses[i].UUID, p); err != nil {
				return err
			}
		}
		return nil

	case []DataBucket:
		for i := range t {
			p := fmt.Sprintf("%s[%d]", path, i)
			if err := checkIdentifier(t[i].UUID, p); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("%s: unsupported entity %T", path, v)
	}
}

// ValidateUnique checks document-wide identifier uniqueness. The reference
// tool family skips this check; two records sharing a uuid produce a
// document the runtime mishandles silently, so we reject it here.
// Comparison is case-insensitive since mixed-case input is accepted.
func ValidateUnique(doc *Document) error {
	seen := map[string]string{}

	add := func(id, path string) error {
		key := strings.ToLower(id)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s share %q: %w", prev, path, id, ErrDuplicateIdentifier)
		}
		seen[key] = path
		return nil
	}

	if err := add(doc.UUID, "settings"); err != nil {
		return err
	}
	for i := range doc.Callbacks {
		if err := add(doc.Callbacks[i].UUID, fmt.Sprintf("callbacks[%d]", i)); err != nil {
			return err
		}
	}
	for i := range doc.Folders {
		if err := add(doc.Folders[i].UUID, fmt.Sprintf("folders[%d]", i)); err != nil {
			return err
		}
	}
	for i := range doc.Routes {
		rt := &doc.Routes[i]
		if err := add(rt.UUID, fmt.Sprintf("routes[%d]", i)); err != nil {
			return err
		}
		for j := range rt.Responses {
			p := fmt.Sprintf("routes[%d].responses[%d]", i, j)
			if err := add(rt.Responses[j].UUID, p); err != nil {
				return err
			}
		}
	}
	for i := range doc.Data {
		if err := add(doc.Data[i].UUID, fmt.Sprintf("data[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}
