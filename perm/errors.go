// SPDX-License-Identifier: MIT
// Package: archgraph/perm
//
// errors.go — sentinel errors for permutation parsing and reconstruction.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context (offending element, raw token) via %w.
//   - No panics at runtime.

package perm

import "errors"

// ErrBadCycleForm indicates a malformed cycle-form string (unbalanced
// parentheses, empty cycle, non-numeric element).
var ErrBadCycleForm = errors.New("perm: malformed cycle form")

// ErrOutOfDomain indicates a cycle element outside 1..degree.
var ErrOutOfDomain = errors.New("perm: element outside domain")

// ErrDuplicateElement indicates an element appearing twice across the cycles
// of one permutation (cycles must be disjoint).
var ErrDuplicateElement = errors.New("perm: duplicate element in cycles")

// ErrNotPermutation indicates a one-line array that is not a bijection of
// its index space.
var ErrNotPermutation = errors.New("perm: image is not a permutation")

// ErrAmbiguousMapping indicates two reconstruction fragments assigning
// different images to the same domain element.
var ErrAmbiguousMapping = errors.New("perm: ambiguous mapping")

// ErrNotInjective indicates two reconstruction fragments assigning the same
// image to different domain elements.
var ErrNotInjective = errors.New("perm: image assigned twice")

// ErrBadFragment indicates an unparseable chain or cycle fragment handed to
// the reconstruction tool.
var ErrBadFragment = errors.New("perm: malformed fragment")
