// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

package configtree

// mergePolicy decides how a conflict on a scalar or sequence value is
// resolved during a structural merge.
type mergePolicy int

const (
	// preserveExisting keeps any value already defined on the target,
	// including nil and false. Only key absence counts as undefined.
	preserveExisting mergePolicy = iota
	// forceOverwrite always takes the source value.
	forceOverwrite
)

// PreserveMerge merges source into target, setting a scalar or sequence
// value only where target has no value at that key. Nested mappings are
// merged recursively. The target is mutated in place and returned; source is
// never modified.
func PreserveMerge(target, source Tree) Tree {
	return merge(target, source, preserveExisting)
}

// ForceMerge merges source into target with the same traversal as
// [PreserveMerge], but scalar and sequence values from source always
// overwrite the target's. The target is mutated in place and returned.
func ForceMerge(target, source Tree) Tree {
	return merge(target, source, forceOverwrite)
}

func merge(target, source Tree, policy mergePolicy) Tree {
	if target == nil {
		target = Tree{}
	}

	for key, value := range source {
		switch src := value.(type) {
		case map[string]any:
			// A non-mapping value on the target is discarded in favor of
			// an empty mapping before descending.
			existing, ok := target[key].(map[string]any)
			if !ok {
				existing = Tree{}
			}
			target[key] = merge(existing, src, policy)
		default:
			// Scalars and sequences are atomic merge units.
			if _, defined := target[key]; defined && policy == preserveExisting {
				continue
			}
			target[key] = value
		}
	}

	return target
}
