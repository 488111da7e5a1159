// Package types defines the public data model of verkit: the decoded version
// resource, its fixed and string parts, typed errors, and the diagnostics
// recorded for parts of a resource that were absent or unreadable.
//
// Design goals:
//   - Never panic on malformed input.
//   - One hard failure (the resource cannot be walked at all); everything
//     narrower resolves to "not present" and keeps the rest usable.
//   - Typed errors with stable categories (os/malformed/not-found).
//
// This package has no dependencies beyond the standard library.
package types
