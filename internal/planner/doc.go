// Package planner turns a stream of filesystem entries into rename plans.
//
// Planning runs in two independent passes. The file pass buckets files by
// (parent directory, raw stem) into sibling groups, computes one stem
// budget per group, truncates the shared stem once, and rebuilds every
// member's name with its own extensions. The directory pass truncates each
// directory name on its own and orders the results deepest first, so that
// applying them in order never invalidates a path that is still queued.
//
// Key responsibilities:
//   - Group files into sibling groups (GroupFiles)
//   - Plan file renames with a shared stem per group (PlanFiles)
//   - Plan directory renames deepest first (PlanDirectories)
//   - Classify every entry as unchanged, renamed or skipped
package planner
