// Package configtree implements the structural merge engine used to prepare
// the gateway configuration document.
//
// A document is a Tree: a JSON-shaped mapping from string keys to scalars,
// opaque sequences, or nested mappings. Two merge strategies are provided:
//
//   - [PreserveMerge] fills in values only where the target has none,
//     protecting user customizations;
//   - [ForceMerge] always overwrites, enforcing required settings.
//
// Both strategies share one traversal and differ only in how a conflict on a
// scalar or sequence value is resolved. Sequences are always treated as
// atomic values and are never merged element-wise.
package configtree
