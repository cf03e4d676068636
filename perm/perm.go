// SPDX-License-Identifier: MIT
// Package: archgraph/perm
//
// perm.go — one-line images, cycle-form rendering and parsing.
//
// Contract:
//   - Image is 0-based internally; cycle form is 1-based externally.
//   - Cycles(img) emits cycles in ascending order of their smallest element,
//     each cycle starting at its smallest element. Fixed points are omitted,
//     so the identity renders as "".
//   - ParseCycles is the exact inverse over valid inputs: elements in
//     1..degree, cycles disjoint, length ≥ 2.
//
// Complexity: all functions are O(n) in the permutation degree (plus output
// size for rendering).

package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// Cycle-form syntax tokens.
const (
	cycleOpen  = '('
	cycleClose = ')'
	cycleSep   = ','
)

// Image is a one-line permutation over 0..len-1: Image[i] is the image of i.
type Image []int

// Identity returns the identity Image of the given degree.
func Identity(degree int) Image {
	img := make(Image, degree)
	for i := range img {
		img[i] = i
	}
	return img
}

// IsIdentity reports whether every element is a fixed point.
func IsIdentity(img Image) bool {
	for i, v := range img {
		if v != i {
			return false
		}
	}
	return true
}

// Validate checks that img is a bijection of 0..len(img)-1.
func Validate(img Image) error {
	hit := make([]bool, len(img))
	for i, v := range img {
		if v < 0 || v >= len(img) {
			return fmt.Errorf("Validate: image[%d]=%d outside 0..%d: %w",
				i, v, len(img)-1, ErrNotPermutation)
		}
		if hit[v] {
			return fmt.Errorf("Validate: value %d repeated: %w", v, ErrNotPermutation)
		}
		hit[v] = true
	}
	return nil
}

// Cycles renders img in 1-based cycle form, e.g. "(1,3,2)(4,5)".
// Fixed points are omitted; the identity yields "".
func Cycles(img Image) string {
	var sb strings.Builder
	seen := make([]bool, len(img))
	for start := 0; start < len(img); start++ {
		if seen[start] || img[start] == start {
			seen[start] = true
			continue
		}
		// Walk one cycle starting at its smallest (first unseen) element.
		sb.WriteByte(cycleOpen)
		for cur := start; !seen[cur]; cur = img[cur] {
			if cur != start {
				sb.WriteByte(cycleSep)
			}
			sb.WriteString(strconv.Itoa(cur + 1))
			seen[cur] = true
		}
		sb.WriteByte(cycleClose)
	}
	return sb.String()
}

// ParseCycles parses a 1-based cycle-form string into an Image of the given
// degree. The empty string yields the identity. Elements must lie in
// 1..degree and appear at most once across all cycles.
func ParseCycles(s string, degree int) (Image, error) {
	if degree < 1 {
		return nil, fmt.Errorf("ParseCycles: degree=%d < 1: %w", degree, ErrOutOfDomain)
	}
	img := Identity(degree)
	used := make([]bool, degree)

	rest := strings.TrimSpace(s)
	for len(rest) > 0 {
		if rest[0] != cycleOpen {
			return nil, fmt.Errorf("ParseCycles: expected '(' at %q: %w", rest, ErrBadCycleForm)
		}
		end := strings.IndexByte(rest, cycleClose)
		if end < 0 {
			return nil, fmt.Errorf("ParseCycles: unterminated cycle in %q: %w", rest, ErrBadCycleForm)
		}
		body := rest[1:end]
		rest = strings.TrimSpace(rest[end+1:])

		elems, err := parseCycleBody(body, degree, used)
		if err != nil {
			return nil, err
		}
		// Apply the cycle: each element maps to its successor, last wraps.
		for i, e := range elems {
			img[e] = elems[(i+1)%len(elems)]
		}
	}
	return img, nil
}

// parseCycleBody splits one cycle body "a,b,c" into 0-based elements,
// enforcing domain bounds, disjointness and minimal length 2.
func parseCycleBody(body string, degree int, used []bool) ([]int, error) {
	parts := strings.Split(body, string(cycleSep))
	if len(parts) < 2 {
		return nil, fmt.Errorf("parseCycleBody: cycle %q shorter than 2: %w", body, ErrBadCycleForm)
	}
	elems := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parseCycleBody: element %q: %w", p, ErrBadCycleForm)
		}
		if n < 1 || n > degree {
			return nil, fmt.Errorf("parseCycleBody: element %d outside 1..%d: %w", n, degree, ErrOutOfDomain)
		}
		if used[n-1] {
			return nil, fmt.Errorf("parseCycleBody: element %d repeated: %w", n, ErrDuplicateElement)
		}
		used[n-1] = true
		elems = append(elems, n-1)
	}
	return elems, nil
}
