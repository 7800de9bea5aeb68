// Package naming computes truncated file and directory names.
//
// A file name is decomposed into a raw stem plus up to two extensions
// (Split). Files that share a raw stem in one directory share a single
// stem budget (StemBudget), so that after truncation every sibling keeps
// the same stem and still fits the length limit with its own extensions.
//
// All lengths are byte lengths. Truncation never splits a UTF-8 code point:
// the cut point walks back until the kept prefix is valid text.
//
// Key functions:
//   - Split / NameParts.Join: extension decomposition and reassembly
//   - StemBudget: worst-case budget for a sibling group
//   - TruncateStem / TruncateDirName: UTF-8 safe truncation with optional
//     word-boundary snapping
package naming
