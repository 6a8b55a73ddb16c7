// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

package configtree

// Tree is a JSON-shaped configuration document: a mapping from string keys
// to values, where a value is a scalar (string, number, boolean, nil), a
// []any sequence, or a nested mapping. Trees are produced either by
// unmarshaling JSON or by literal construction, so they are always acyclic.
type Tree = map[string]any

// EnsureMap walks path from root and returns the mapping at the final
// segment, creating empty mappings along the way. A non-mapping value found
// at an intermediate or final segment is replaced by an empty mapping.
func EnsureMap(root Tree, path ...string) Tree {
	current := root
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = Tree{}
			current[key] = next
		}
		current = next
	}
	return current
}

// Lookup returns the value at path and whether every segment resolved.
// All segments but the last must resolve to mappings.
func Lookup(root Tree, path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	current := root
	for _, key := range path[:len(path)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	value, ok := current[path[len(path)-1]]
	return value, ok
}

// LookupString returns the string value at path, or "" when the path does
// not resolve or holds a non-string value.
func LookupString(root Tree, path ...string) string {
	value, ok := Lookup(root, path...)
	if !ok {
		return ""
	}

	s, _ := value.(string)
	return s
}
